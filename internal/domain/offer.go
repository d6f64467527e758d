package domain

import "encoding/json"

// Price is the offer price. Total stays a decimal string so no rounding happens in transit.
type Price struct {
	Currency *string `json:"currency,omitempty"`
	Total    *string `json:"total,omitempty"`
}

// Segment is one flight leg between two airports.
type Segment struct {
	CarrierCode   *string `json:"carrierCode,omitempty"`
	FlightNumber  *string `json:"flightNumber,omitempty"`
	DepartureIata *string `json:"departureIata,omitempty"`
	DepartureAt   *string `json:"departureAt,omitempty"`
	ArrivalIata   *string `json:"arrivalIata,omitempty"`
	ArrivalAt     *string `json:"arrivalAt,omitempty"`
	Duration      *string `json:"duration,omitempty"`
	NumberOfStops *int    `json:"numberOfStops,omitempty"`
}

// Itinerary is the outbound or return journey. Segments are in flight order.
type Itinerary struct {
	Duration *string   `json:"duration,omitempty"`
	Segments []Segment `json:"segments,omitempty"`
}

// FlightOffer is a normalized search result.
//
// RawOffer is the provider's JSON for this offer exactly as received. Callers send it
// back for pricing, so it must never be rebuilt from the normalized fields. Encoding a
// FlightOffer compacts it and escapes HTML characters, so clients get an equal JSON value.
// The summary fields are projections of the first itinerary for list rendering.
type FlightOffer struct {
	ID                 *string         `json:"id,omitempty"`
	Price              *Price          `json:"price,omitempty"`
	ValidatingAirlines []string        `json:"validatingAirlines,omitempty"`
	Itineraries        []Itinerary     `json:"itineraries,omitempty"`
	RawOffer           json.RawMessage `json:"rawOffer,omitempty"`

	AirlineName     *string `json:"airlineName,omitempty"`
	CarrierCode     *string `json:"carrierCode,omitempty"`
	FlightNumber    *string `json:"flightNumber,omitempty"`
	Cabin           *string `json:"cabin,omitempty"`
	NumberOfStops   *int    `json:"numberOfStops,omitempty"`
	Duration        *string `json:"duration,omitempty"`
	OriginCode      *string `json:"originCode,omitempty"`
	DestinationCode *string `json:"destinationCode,omitempty"`
	DepartureTime   *string `json:"departureTime,omitempty"`
	ArrivalTime     *string `json:"arrivalTime,omitempty"`
}

// FlightQuery carries the parameters of an offer search.
// Optional parameters are filtered by the provider client, not here.
type FlightQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	Adults        int
	Children      int
	Infants       int
	ReturnDate    string
	TravelClass   string
	CurrencyCode  string
	MaxResults    int
}

// ProviderDocument is a provider response body plus its "data" array split into
// per-element raw slices in provider order.
type ProviderDocument struct {
	Body json.RawMessage
	Data []json.RawMessage
}
