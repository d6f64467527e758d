package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the reservation gateway.
var (
	// ErrInvalidRequest indicates that caller input failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidOffer indicates that a confirm payload could not be unwrapped into a single offer object.
	ErrInvalidOffer = errors.New("invalid offer payload")

	// ErrUnexpectedOfferShape indicates a wrapped offer list whose first element is not an object.
	// It is not a caller input error and surfaces as an unexpected failure.
	ErrUnexpectedOfferShape = errors.New("unexpected offer shape")

	// ErrProviderRejected is the sentinel every ProviderError unwraps to.
	ErrProviderRejected = errors.New("provider rejected request")
)

// Provider status categories.
const (
	CategoryClientError   = "client_error"
	CategoryRateLimited   = "rate_limited"
	CategoryServerError   = "server_error"
	CategoryEmptyResponse = "empty_response"
)

// ProviderError reports that the flight-data provider rejected a request.
// It is recoverable per request and is never retried automatically unless Retryable is set.
type ProviderError struct {
	// StatusCategory classifies the rejection (see Category* constants).
	StatusCategory string

	// StatusCode is the provider's HTTP status code, zero when not applicable.
	StatusCode int

	// Message is the provider's human-readable explanation.
	Message string

	// Retryable marks transient rejections (rate limiting, provider-side faults).
	Retryable bool
}

// NewProviderError builds a ProviderError, deriving the category from the HTTP status.
func NewProviderError(statusCode int, message string) *ProviderError {
	category := CategoryClientError
	retryable := false
	switch {
	case statusCode == 429:
		category = CategoryRateLimited
		retryable = true
	case statusCode >= 500:
		category = CategoryServerError
		retryable = true
	}

	return &ProviderError{
		StatusCategory: category,
		StatusCode:     statusCode,
		Message:        message,
		Retryable:      retryable,
	}
}

// NewEmptyResponseError reports a provider reply that carried no body.
func NewEmptyResponseError(operation string) *ProviderError {
	return &ProviderError{
		StatusCategory: CategoryEmptyResponse,
		Message:        fmt.Sprintf("empty %s response", operation),
	}
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %s (%d): %s", e.StatusCategory, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider %s: %s", e.StatusCategory, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return ErrProviderRejected
}

// AsProviderError extracts a ProviderError from an error chain.
func AsProviderError(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// IsProviderError reports whether err originated from a provider rejection.
func IsProviderError(err error) bool {
	return errors.Is(err, ErrProviderRejected)
}

// IsInvalidRequest reports whether err is a caller input error.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest) || errors.Is(err, ErrInvalidOffer)
}

// WrapInvalidRequest formats a message and wraps it with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// WrapInvalidOffer formats a message and wraps it with ErrInvalidOffer.
func WrapInvalidOffer(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOffer, fmt.Sprintf(format, args...))
}
