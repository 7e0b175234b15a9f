package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookeasy/backend/internal/domain"
	"github.com/cookeasy/backend/internal/usecase"
)

// AdminStats handles GET /api/v1/admin/stats
func (h *Handler) AdminStats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AdminListProducts handles GET /api/v1/admin/products?category=&q=
func (h *Handler) AdminListProducts(c *gin.Context) {
	var query usecase.ProductQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	products, err := h.admin.Products(c.Request.Context(), query)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// AdminCreateProduct handles POST /api/v1/admin/products
func (h *Handler) AdminCreateProduct(c *gin.Context) {
	var product domain.Product
	if !bindJSON(c, &product) {
		return
	}
	created, err := h.admin.CreateProduct(c.Request.Context(), product)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// AdminUpdateProduct handles PUT /api/v1/admin/products/:id
func (h *Handler) AdminUpdateProduct(c *gin.Context) {
	var product domain.Product
	if !bindJSON(c, &product) {
		return
	}
	updated, err := h.admin.UpdateProduct(c.Request.Context(), c.Param("id"), product)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AdminDeleteProduct handles DELETE /api/v1/admin/products/:id
func (h *Handler) AdminDeleteProduct(c *gin.Context) {
	if err := h.admin.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AdminCreateRecipe handles POST /api/v1/admin/recipes
func (h *Handler) AdminCreateRecipe(c *gin.Context) {
	var recipe domain.Recipe
	if !bindJSON(c, &recipe) {
		return
	}
	created, err := h.admin.CreateRecipe(c.Request.Context(), recipe)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// AdminUpdateRecipe handles PUT /api/v1/admin/recipes/:id
func (h *Handler) AdminUpdateRecipe(c *gin.Context) {
	var recipe domain.Recipe
	if !bindJSON(c, &recipe) {
		return
	}
	updated, err := h.admin.UpdateRecipe(c.Request.Context(), c.Param("id"), recipe)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AdminDeleteRecipe handles DELETE /api/v1/admin/recipes/:id
func (h *Handler) AdminDeleteRecipe(c *gin.Context) {
	if err := h.admin.DeleteRecipe(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AdminListOrders handles GET /api/v1/admin/orders
func (h *Handler) AdminListOrders(c *gin.Context) {
	orders, err := h.admin.Orders(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// AdminUpdateOrderStatus handles PATCH /api/v1/admin/orders/:id/status
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	var req usecase.StatusUpdate
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.admin.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
