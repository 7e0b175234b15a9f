package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookeasy/backend/internal/usecase"
)

// GetCart handles GET /api/v1/cart
func (h *Handler) GetCart(c *gin.Context) {
	view, err := h.cart.Get(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// AddToCart handles POST /api/v1/cart/items
func (h *Handler) AddToCart(c *gin.Context) {
	var req usecase.AddToCartRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cart.AddProduct(c.Request.Context(), currentUser(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ChangeCartQuantity handles PATCH /api/v1/cart/items/:productId
func (h *Handler) ChangeCartQuantity(c *gin.Context) {
	var req quantityRequest
	if !bindJSON(c, &req) {
		return
	}
	view, err := h.cart.ChangeQuantity(c.Request.Context(), currentUser(c), c.Param("productId"), req.Delta)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// RemoveFromCart handles DELETE /api/v1/cart/items/:productId
func (h *Handler) RemoveFromCart(c *gin.Context) {
	view, err := h.cart.Remove(c.Request.Context(), currentUser(c), c.Param("productId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Checkout handles POST /api/v1/checkout
func (h *Handler) Checkout(c *gin.Context) {
	var req usecase.PaymentDetails
	if !bindJSON(c, &req) {
		return
	}
	order, err := h.checkout.Checkout(c.Request.Context(), currentUser(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /api/v1/orders
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.profile.Orders(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// Reorder handles POST /api/v1/orders/:id/reorder
func (h *Handler) Reorder(c *gin.Context) {
	view, err := h.cart.Reorder(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
