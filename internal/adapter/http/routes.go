package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers all reservation API routes.
// It installs the request validator when none is set, then attaches the
// handler methods to a versioned API group.
func RegisterRoutes(e *echo.Echo, h *ReservationHandler) {
	if e.Validator == nil {
		e.Validator = NewRequestValidator()
	}

	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1")

	api.GET("/locations", h.SearchLocations)
	api.GET("/airports", h.ResolveAirports)
	api.GET("/airlines", h.AirlineNames)

	flights := api.Group("/flights")
	flights.GET("", h.SearchFlights)
	flights.POST("/confirm", h.ConfirmPrice)

	api.POST("/traveler", h.BuildTraveler)
	api.POST("/travelers", h.BuildTravelers)
	api.POST("/bookings/order", h.PlaceOrder)
}

// RegisterSwagger serves the API documentation UI under /swagger.
func RegisterSwagger(e *echo.Echo) {
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
