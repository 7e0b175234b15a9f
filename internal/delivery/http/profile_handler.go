package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cookeasy/backend/internal/usecase"
)

// GetProfile handles GET /api/v1/profile
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.profile.Get(c.Request.Context(), currentUser(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// AddAddress handles POST /api/v1/profile/addresses
func (h *Handler) AddAddress(c *gin.Context) {
	var req usecase.NewAddress
	if !bindJSON(c, &req) {
		return
	}
	h.respondProfile(c, http.StatusCreated)(h.profile.AddAddress(c.Request.Context(), currentUser(c), req))
}

// SetDefaultAddress handles PUT /api/v1/profile/addresses/:id/default
func (h *Handler) SetDefaultAddress(c *gin.Context) {
	h.respondProfile(c, http.StatusOK)(h.profile.SetDefaultAddress(c.Request.Context(), currentUser(c), c.Param("id")))
}

// DeleteAddress handles DELETE /api/v1/profile/addresses/:id
func (h *Handler) DeleteAddress(c *gin.Context) {
	h.respondProfile(c, http.StatusOK)(h.profile.DeleteAddress(c.Request.Context(), currentUser(c), c.Param("id")))
}

// AddCard handles POST /api/v1/profile/cards
func (h *Handler) AddCard(c *gin.Context) {
	var req usecase.NewCard
	if !bindJSON(c, &req) {
		return
	}
	h.respondProfile(c, http.StatusCreated)(h.profile.AddCard(c.Request.Context(), currentUser(c), req))
}

// SetDefaultCard handles PUT /api/v1/profile/cards/:id/default
func (h *Handler) SetDefaultCard(c *gin.Context) {
	h.respondProfile(c, http.StatusOK)(h.profile.SetDefaultCard(c.Request.Context(), currentUser(c), c.Param("id")))
}

// DeleteCard handles DELETE /api/v1/profile/cards/:id
func (h *Handler) DeleteCard(c *gin.Context) {
	h.respondProfile(c, http.StatusOK)(h.profile.DeleteCard(c.Request.Context(), currentUser(c), c.Param("id")))
}

func (h *Handler) respondProfile(c *gin.Context, status int) func(*usecase.Profile, error) {
	return func(profile *usecase.Profile, err error) {
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(status, profile)
	}
}
