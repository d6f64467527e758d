package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/flight-search/flight-reservations/internal/domain"
)

// Defaults applied to flight search queries.
const (
	DefaultMaxResults   = 10
	DefaultCurrencyCode = "USD"
)

// LocationsQuery is the query for GET /api/v1/locations.
type LocationsQuery struct {
	// Keyword is the free-text airport or city search term (e.g., "LON")
	Keyword string `query:"keyword" validate:"required,notblank"`

	// Raw returns the provider response unchanged when true
	Raw bool `query:"raw"`
}

// CodesQuery is the query for endpoints taking a comma-separated code list.
type CodesQuery struct {
	// Codes is a comma-separated list of codes (e.g., "JFK,LAX")
	Codes string `query:"codes" validate:"required,notblank"`
}

// SearchFlightsQuery is the query for GET /api/v1/flights.
type SearchFlightsQuery struct {
	Origin       string `query:"origin" validate:"required,notblank"`
	Destination  string `query:"destination" validate:"required,notblank"`
	DepartDate   string `query:"departDate" validate:"required,notblank"`
	Adults       int    `query:"adults" validate:"required,min=1"`
	Children     int    `query:"children" validate:"min=0"`
	Infants      int    `query:"infants" validate:"min=0"`
	ReturnDate   string `query:"returnDate"`
	TravelClass  string `query:"travelClass"`
	CurrencyCode string `query:"currencyCode"`
	MaxResults   int    `query:"maxResults" validate:"min=1"`
	Raw          bool   `query:"raw"`
}

// NewSearchFlightsQuery returns a query with defaults applied; bound parameters override them.
func NewSearchFlightsQuery() SearchFlightsQuery {
	return SearchFlightsQuery{
		MaxResults:   DefaultMaxResults,
		CurrencyCode: DefaultCurrencyCode,
	}
}

// ToDomain converts the query into a provider search.
func (q SearchFlightsQuery) ToDomain() domain.FlightQuery {
	return domain.FlightQuery{
		Origin:        strings.TrimSpace(q.Origin),
		Destination:   strings.TrimSpace(q.Destination),
		DepartureDate: strings.TrimSpace(q.DepartDate),
		Adults:        q.Adults,
		Children:      q.Children,
		Infants:       q.Infants,
		ReturnDate:    q.ReturnDate,
		TravelClass:   q.TravelClass,
		CurrencyCode:  q.CurrencyCode,
		MaxResults:    q.MaxResults,
	}
}

// TravelersRequest is the body for POST /api/v1/travelers.
type TravelersRequest struct {
	Travelers []domain.TravelerInput `json:"travelers" validate:"required,min=1,dive"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// RequestValidator adapts go-playground/validator to echo.Validator.
// Field names in errors are taken from the query or json tag.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a RequestValidator.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. Failures are returned as *ValidationErrors.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := &ValidationErrors{}
	for _, fe := range fieldErrs {
		errs.Add(fieldPath(fe), fieldMessage(fe))
	}
	return errs
}

// fieldPath drops the root struct name, e.g. "travelers[0].firstName".
func fieldPath(fe validator.FieldError) string {
	if _, path, ok := strings.Cut(fe.Namespace(), "."); ok {
		return path
	}
	return fe.Field()
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"query", "json"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", fe.Field())
	case "number":
		return fmt.Sprintf("%s must contain only digits", fe.Field())
	case "uppercase", "alpha":
		return fmt.Sprintf("%s must be an upper-case ISO country code", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
