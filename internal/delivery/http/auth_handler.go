package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookeasy/backend/internal/usecase"
)

// Login handles POST /api/v1/auth/login
func (h *Handler) Login(c *gin.Context) {
	var creds usecase.Credentials
	if !bindJSON(c, &creds) {
		return
	}
	result, err := h.auth.Login(creds)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Register handles POST /api/v1/auth/register
func (h *Handler) Register(c *gin.Context) {
	var creds usecase.Credentials
	if !bindJSON(c, &creds) {
		return
	}
	result, err := h.auth.Register(creds)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Me handles GET /api/v1/auth/me
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c))
}

// Logout handles POST /api/v1/auth/logout. Tokens are stateless, so this only
// resets the caller's screens.
func (h *Handler) Logout(c *gin.Context) {
	if _, err := h.navigation.Reset(c.Request.Context(), currentUser(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
