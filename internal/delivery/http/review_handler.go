package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookeasy/backend/internal/domain"
	"github.com/cookeasy/backend/internal/usecase"
)

type quantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

type replaceRequest struct {
	Product domain.Product `json:"product"`
}

// AnalyzeImage handles POST /api/v1/analysis with a multipart "image" file
func (h *Handler) AnalyzeImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)

	header, err := c.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("image must be at most %d bytes", tooLarge.Limit)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}

	result, err := h.analysis.Analyze(c.Request.Context(), currentUser(c), data, mimeType)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ReviewRecipe handles POST /api/v1/recipes/:id/review
func (h *Handler) ReviewRecipe(c *gin.Context) {
	session, err := h.review.BuildFromRecipe(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ListReview handles GET /api/v1/review?q=
func (h *Handler) ListReview(c *gin.Context) {
	items, err := h.review.List(c.Request.Context(), currentUser(c), c.Query("q"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ToggleReviewItem handles POST /api/v1/review/:itemId/toggle
func (h *Handler) ToggleReviewItem(c *gin.Context) {
	item, err := h.review.ToggleSelection(c.Request.Context(), currentUser(c), c.Param("itemId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ChangeReviewQuantity handles POST /api/v1/review/:itemId/quantity
func (h *Handler) ChangeReviewQuantity(c *gin.Context) {
	var req quantityRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.review.ChangeQuantity(c.Request.Context(), currentUser(c), c.Param("itemId"), req.Delta)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ReplaceReviewProduct handles POST /api/v1/review/:itemId/replace
func (h *Handler) ReplaceReviewProduct(c *gin.Context) {
	var req replaceRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.review.ReplaceProduct(c.Request.Context(), currentUser(c), c.Param("itemId"), req.Product)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateReviewItem handles PUT /api/v1/review/:itemId from the product detail screen
func (h *Handler) UpdateReviewItem(c *gin.Context) {
	var req usecase.ItemUpdate
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.review.UpdateFromDetail(c.Request.Context(), currentUser(c), c.Param("itemId"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// DeleteReviewItem handles DELETE /api/v1/review/:itemId
func (h *Handler) DeleteReviewItem(c *gin.Context) {
	if err := h.review.Delete(c.Request.Context(), currentUser(c), c.Param("itemId")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReviewAlternatives handles GET /api/v1/review/:itemId/alternatives
func (h *Handler) ReviewAlternatives(c *gin.Context) {
	products, err := h.review.Alternatives(c.Request.Context(), currentUser(c), c.Param("itemId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// ContinueReview handles POST /api/v1/cart/from-review
func (h *Handler) ContinueReview(c *gin.Context) {
	session, err := h.review.Continue(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
