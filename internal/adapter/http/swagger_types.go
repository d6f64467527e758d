// Package http provides swagger type definitions for API documentation.
// These types mirror domain types but are defined here to help swag generate proper documentation.
package http

// SwaggerFlightOffer represents a normalized flight offer.
// @Description Flight offer with summary fields and the raw provider offer
type SwaggerFlightOffer struct {
	ID                 string             `json:"id" example:"1"`
	Price              SwaggerPrice       `json:"price"`
	ValidatingAirlines []string           `json:"validatingAirlines" example:"BA"`
	Itineraries        []SwaggerItinerary `json:"itineraries"`

	// RawOffer is the provider offer exactly as received; send it back to confirm the price
	RawOffer map[string]any `json:"rawOffer" swaggertype:"object"`

	AirlineName     string `json:"airlineName" example:"BRITISH AIRWAYS"`
	CarrierCode     string `json:"carrierCode" example:"BA"`
	FlightNumber    string `json:"flightNumber" example:"117"`
	Cabin           string `json:"cabin" example:"ECONOMY"`
	NumberOfStops   int    `json:"numberOfStops" example:"0"`
	Duration        string `json:"duration" example:"PT7H25M"`
	OriginCode      string `json:"originCode" example:"LHR"`
	DestinationCode string `json:"destinationCode" example:"JFK"`
	DepartureTime   string `json:"departureTime" example:"2026-11-02T08:25:00"`
	ArrivalTime     string `json:"arrivalTime" example:"2026-11-02T11:50:00"`
}

// SwaggerPrice represents an offer price.
// @Description Price with the total kept as a decimal string
type SwaggerPrice struct {
	Currency string `json:"currency" example:"USD"`
	Total    string `json:"total" example:"612.40"`
}

// SwaggerItinerary represents one journey of an offer.
// @Description Outbound or return journey
type SwaggerItinerary struct {
	Duration string           `json:"duration" example:"PT7H25M"`
	Segments []SwaggerSegment `json:"segments"`
}

// SwaggerSegment represents one flight leg.
// @Description Single flight leg
type SwaggerSegment struct {
	CarrierCode   string `json:"carrierCode" example:"BA"`
	FlightNumber  string `json:"flightNumber" example:"117"`
	DepartureIata string `json:"departureIata" example:"LHR"`
	DepartureAt   string `json:"departureAt" example:"2026-11-02T08:25:00"`
	ArrivalIata   string `json:"arrivalIata" example:"JFK"`
	ArrivalAt     string `json:"arrivalAt" example:"2026-11-02T11:50:00"`
	Duration      string `json:"duration" example:"PT7H25M"`
	NumberOfStops int    `json:"numberOfStops" example:"0"`
}
