// Package response provides standardized HTTP response builders for the reservations API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details carries field errors for validation failures or
	// ProviderDetails for provider failures.
	Details any `json:"details,omitempty"`
}

// ProviderDetails describes an upstream provider failure.
type ProviderDetails struct {
	// Provider is the message reported by the provider
	Provider string `json:"provider"`

	// Category is the provider's status category
	Category string `json:"category"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeValidationError = "validation_error"
	CodeProviderError   = "provider_error"
	CodeTimeout         = "timeout"
	CodeInternalError   = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgInvalidQuery       = "Failed to parse query parameters"
	MsgValidationFailed   = "Request validation failed"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// Raw writes provider JSON as-is with a 200 OK status.
func Raw(c echo.Context, body json.RawMessage) error {
	return c.JSONBlob(http.StatusOK, body)
}
