package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookeasy/backend/internal/usecase"
)

// GetNavigation handles GET /api/v1/navigation
func (h *Handler) GetNavigation(c *gin.Context) {
	session, err := h.navigation.State(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Navigate handles POST /api/v1/navigation
func (h *Handler) Navigate(c *gin.Context) {
	var req usecase.NavigateRequest
	if !bindJSON(c, &req) {
		return
	}
	session, err := h.navigation.Navigate(c.Request.Context(), currentUser(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ContinueShopping handles POST /api/v1/navigation/continue-shopping
func (h *Handler) ContinueShopping(c *gin.Context) {
	session, err := h.navigation.ContinueShopping(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ResetNavigation handles POST /api/v1/navigation/reset
func (h *Handler) ResetNavigation(c *gin.Context) {
	session, err := h.navigation.Reset(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
