package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/cookeasy/backend/internal/domain"
	"github.com/cookeasy/backend/internal/usecase"
)

const serviceVersion = "1.0.0"

// Services are the use cases the HTTP layer exposes
type Services struct {
	Auth       *usecase.AuthService
	Catalog    *usecase.CatalogService
	Review     *usecase.ReviewService
	Analysis   *usecase.AnalysisService
	Cart       *usecase.CartService
	Checkout   *usecase.CheckoutService
	Navigation *usecase.NavigationService
	Profile    *usecase.ProfileService
	Admin      *usecase.AdminService
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	auth       *usecase.AuthService
	catalog    *usecase.CatalogService
	review     *usecase.ReviewService
	analysis   *usecase.AnalysisService
	cart       *usecase.CartService
	checkout   *usecase.CheckoutService
	navigation *usecase.NavigationService
	profile    *usecase.ProfileService
	admin      *usecase.AdminService
	maxUpload  int64
	logger     zerolog.Logger
}

// NewHandler creates a new HTTP handler. maxUploadBytes caps analysis uploads.
func NewHandler(services Services, maxUploadBytes int64, logger zerolog.Logger) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = 10 << 20
	}
	return &Handler{
		auth:       services.Auth,
		catalog:    services.Catalog,
		review:     services.Review,
		analysis:   services.Analysis,
		cart:       services.Cart,
		checkout:   services.Checkout,
		navigation: services.Navigation,
		profile:    services.Profile,
		admin:      services.Admin,
		maxUpload:  maxUploadBytes,
		logger:     logger.With().Str("component", "http").Logger(),
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "cookeasy-backend",
		"version": serviceVersion,
	})
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPaymentValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrAnalysisFailed):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error": ...}. Validation errors add field
// messages; unexpected errors are hidden.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)

	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		c.JSON(status, gin.H{"error": err.Error(), "fields": validation.Fields})
		return
	}
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// fail logs server-side failures before responding
func (h *Handler) fail(c *gin.Context, err error) {
	if status := statusFor(err); status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Int("status", status).Str("path", c.Request.URL.Path).Msg("request failed")
	}
	respondError(c, err)
}

// bindJSON binds the body into dst and writes a 400 on failure
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidRequest.Error() + ": " + err.Error()})
		return false
	}
	return true
}
