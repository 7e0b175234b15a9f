package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a product, recipe, order or review item does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidTransition is returned when a navigation or order status move is not allowed
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrInvalidCredentials is returned when an email/password pair is not recognised
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned when a session token is missing or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the user lacks the admin role
	ErrForbidden = errors.New("forbidden")

	// ErrAnalysisFailed is returned when the image analysis call fails or returns malformed data
	ErrAnalysisFailed = errors.New("image analysis failed")

	// ErrEmptyCart is returned when checking out with no cart lines
	ErrEmptyCart = errors.New("cart is empty")

	// ErrPaymentValidation is returned when payment form fields fail validation
	ErrPaymentValidation = errors.New("payment details invalid")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when cache service is unavailable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)

// ValidationError carries field-level messages for a rejected form
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %d field(s) invalid", ErrPaymentValidation, len(e.Fields))
}

func (e *ValidationError) Unwrap() error {
	return ErrPaymentValidation
}
