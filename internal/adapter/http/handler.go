// Package http provides the HTTP handler layer for the reservations API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/flight-reservations/internal/adapter/http/middleware"
	"github.com/flight-search/flight-reservations/internal/adapter/http/response"
	"github.com/flight-search/flight-reservations/internal/domain"
	"github.com/flight-search/flight-reservations/internal/infrastructure/logger"
	"github.com/flight-search/flight-reservations/internal/usecase"
)

// operation names the messages reported when an endpoint fails.
type operation struct {
	// rejected is used when the provider refused the call.
	rejected string
	// failed is used for anything unexpected.
	failed string
}

var (
	opLocations = operation{rejected: "Error fetching locations", failed: "Failed to process locations"}
	opAirports  = operation{rejected: "Error resolving airports", failed: "Failed to process airports"}
	opFlights   = operation{rejected: "Error fetching flights", failed: "Failed to process flights"}
	opAirlines  = operation{rejected: "Error fetching airlines", failed: "Failed to process airlines"}
	opConfirm   = operation{rejected: "Failed to price offer", failed: "Unexpected error"}
	opOrder     = operation{rejected: "Error creating order", failed: "Failed to process order"}
)

// ReservationHandler handles HTTP requests for the reservation endpoints.
type ReservationHandler struct {
	service usecase.ReservationService
	logger  zerolog.Logger
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(service usecase.ReservationService, log zerolog.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		logger:  log,
	}
}

// SearchLocations handles GET /api/v1/locations
//
// @Summary Search airports
// @Description Keyword search over airports. raw=true returns the provider response unchanged.
// @Tags locations
// @Produce json
// @Param keyword query string true "Search keyword" example(LON)
// @Param raw query bool false "Return provider JSON unchanged"
// @Success 200 {array} domain.Location
// @Failure 400 {object} response.ErrorDetail "Validation or provider error"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/locations [get]
func (h *ReservationHandler) SearchLocations(c echo.Context) error {
	var q LocationsQuery
	if ok, err := h.bindQuery(c, &q); !ok {
		return err
	}

	ctx := c.Request().Context()
	if q.Raw {
		body, err := h.service.SearchLocationsRaw(ctx, q.Keyword)
		if err != nil {
			return h.handleError(c, opLocations, err)
		}
		return response.Raw(c, body)
	}

	locations, err := h.service.SearchLocations(ctx, q.Keyword)
	if err != nil {
		return h.handleError(c, opLocations, err)
	}
	return response.OK(c, locations)
}

// ResolveAirports handles GET /api/v1/airports
//
// @Summary Resolve airport codes
// @Description Resolves a comma-separated list of IATA codes. Unknown codes are omitted; order follows the input.
// @Tags locations
// @Produce json
// @Param codes query string true "Comma-separated IATA codes" example(JFK,LAX)
// @Success 200 {object} map[string]domain.Airport
// @Failure 400 {object} response.ErrorDetail "Validation or provider error"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/airports [get]
func (h *ReservationHandler) ResolveAirports(c echo.Context) error {
	var q CodesQuery
	if ok, err := h.bindQuery(c, &q); !ok {
		return err
	}

	airports, err := h.service.ResolveAirports(c.Request().Context(), q.Codes)
	if err != nil {
		return h.handleError(c, opAirports, err)
	}
	return response.OK(c, airports)
}

// SearchFlights handles GET /api/v1/flights
//
// @Summary Search flight offers
// @Description Searches offers and enriches them with airline names. Every offer carries its raw provider JSON for pricing.
// @Tags flights
// @Produce json
// @Param origin query string true "Origin IATA code" example(JFK)
// @Param destination query string true "Destination IATA code" example(LAX)
// @Param departDate query string true "Departure date (YYYY-MM-DD)"
// @Param adults query int true "Adult travelers" minimum(1)
// @Param children query int false "Child travelers"
// @Param infants query int false "Infant travelers"
// @Param returnDate query string false "Return date (YYYY-MM-DD)"
// @Param maxResults query int false "Maximum offers" default(10)
// @Param currencyCode query string false "ISO 4217 currency" default(USD)
// @Param travelClass query string false "ECONOMY, PREMIUM_ECONOMY, BUSINESS or FIRST"
// @Param raw query bool false "Return provider JSON unchanged"
// @Success 200 {array} SwaggerFlightOffer
// @Failure 400 {object} response.ErrorDetail "Validation or provider error"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/flights [get]
func (h *ReservationHandler) SearchFlights(c echo.Context) error {
	q := NewSearchFlightsQuery()
	if ok, err := h.bindQuery(c, &q); !ok {
		return err
	}

	ctx := c.Request().Context()
	if q.Raw {
		body, err := h.service.SearchFlightsRaw(ctx, q.ToDomain())
		if err != nil {
			return h.handleError(c, opFlights, err)
		}
		return response.Raw(c, body)
	}

	offers, err := h.service.SearchFlights(ctx, q.ToDomain())
	if err != nil {
		return h.handleError(c, opFlights, err)
	}
	return response.OK(c, offers)
}

// AirlineNames handles GET /api/v1/airlines
//
// @Summary Airline display names
// @Description Maps carrier codes to business name, else common name, else the code itself.
// @Tags flights
// @Produce json
// @Param codes query string true "Comma-separated carrier codes" example(BA,AA)
// @Success 200 {object} map[string]string
// @Failure 400 {object} response.ErrorDetail "Validation or provider error"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/airlines [get]
func (h *ReservationHandler) AirlineNames(c echo.Context) error {
	var q CodesQuery
	if ok, err := h.bindQuery(c, &q); !ok {
		return err
	}

	names, err := h.service.AirlineNames(c.Request().Context(), q.Codes)
	if err != nil {
		return h.handleError(c, opAirlines, err)
	}
	return response.OK(c, names)
}

// ConfirmPrice handles POST /api/v1/flights/confirm
//
// @Summary Confirm an offer price
// @Description Re-prices an offer returned by the search. Accepts the bare offer, {"data":[offer]} or {"data":offer}.
// @Tags booking
// @Accept json
// @Produce json
// @Param offer body object true "Offer JSON"
// @Success 200 {object} object "Provider pricing response"
// @Failure 400 {object} response.ErrorDetail "Validation or provider error"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/flights/confirm [post]
func (h *ReservationHandler) ConfirmPrice(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.InvalidRequestBody(c)
	}

	priced, err := h.service.ConfirmPrice(c.Request().Context(), payload)
	if err != nil {
		return h.handleError(c, opConfirm, err)
	}
	return response.Raw(c, priced)
}

// BuildTraveler handles POST /api/v1/traveler
//
// @Summary Preview a traveler
// @Description Builds the provider-shaped traveler for an order without submitting anything.
// @Tags booking
// @Accept json
// @Produce json
// @Param id query string false "Traveler id" default(1)
// @Param traveler body domain.TravelerInput true "Traveler fields"
// @Success 200 {object} domain.Traveler
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/traveler [post]
func (h *ReservationHandler) BuildTraveler(c echo.Context) error {
	var input domain.TravelerInput
	if err := c.Bind(&input); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := c.Validate(&input); err != nil {
		return h.handleValidationError(c, err)
	}

	return response.OK(c, h.service.BuildTraveler(input, c.QueryParam("id")))
}

// BuildTravelers handles POST /api/v1/travelers
//
// @Summary Preview travelers
// @Description Builds provider-shaped travelers with ids 1..N in request order.
// @Tags booking
// @Accept json
// @Produce json
// @Param request body TravelersRequest true "Travelers"
// @Success 200 {array} domain.Traveler
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/travelers [post]
func (h *ReservationHandler) BuildTravelers(c echo.Context) error {
	var req TravelersRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := c.Validate(&req); err != nil {
		return h.handleValidationError(c, err)
	}

	return response.OK(c, h.service.BuildTravelers(req.Travelers))
}

// PlaceOrder handles POST /api/v1/bookings/order
//
// @Summary Create a flight order
// @Description Forwards the order JSON unchanged and returns the provider's booking confirmation.
// @Tags booking
// @Accept json
// @Produce json
// @Param order body object true "Order JSON"
// @Success 200 {object} object "Provider booking confirmation"
// @Failure 400 {object} response.ErrorDetail "Validation or provider error"
// @Failure 500 {object} response.ErrorDetail "Unexpected error"
// @Router /api/v1/bookings/order [post]
func (h *ReservationHandler) PlaceOrder(c echo.Context) error {
	order, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.InvalidRequestBody(c)
	}

	confirmation, err := h.service.PlaceOrder(c.Request().Context(), order)
	if err != nil {
		return h.handleError(c, opOrder, err)
	}
	return response.Raw(c, confirmation)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *ReservationHandler) Health(c echo.Context) error {
	return response.Health(c, logger.ServiceName)
}

// bindQuery binds and validates query parameters. When it reports false the
// error response has already been written and err is the write result.
func (h *ReservationHandler) bindQuery(c echo.Context, dst any) (bool, error) {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, dst); err != nil {
		return false, response.InvalidQuery(c)
	}
	if err := c.Validate(dst); err != nil {
		return false, h.handleValidationError(c, err)
	}
	return true, nil
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ReservationHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps service errors to HTTP responses.
func (h *ReservationHandler) handleError(c echo.Context, op operation, err error) error {
	log := middleware.Logger(c, h.logger)

	if pe, ok := domain.AsProviderError(err); ok {
		log.Warn().
			Err(err).
			Str("category", pe.StatusCategory).
			Int("provider_status", pe.StatusCode).
			Msg(op.rejected)
		return response.ProviderError(c, op.rejected, pe.Message, pe.StatusCategory)
	}

	if domain.IsInvalidRequest(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		log.Warn().Err(err).Msg(op.failed)
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	log.Error().Err(err).Msg(op.failed)
	return response.InternalServerErrorWithMessage(c, fmt.Sprintf("%s: %v", op.failed, err))
}
