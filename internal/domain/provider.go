package domain

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

import (
	"context"
	"encoding/json"
)

// FlightDataProvider is the contract for the external flight-data provider.
// Implementations own credentials and transport; they return raw documents and leave
// normalization to the caller, except for ResolveAirport which picks a single match.
type FlightDataProvider interface {
	// SearchLocations finds airports matching a keyword.
	SearchLocations(ctx context.Context, keyword string) (*ProviderDocument, error)

	// ResolveAirport returns airport metadata for a code, or nil when unknown.
	// Blank codes return nil without contacting the provider.
	ResolveAirport(ctx context.Context, code string) (*Airport, error)

	// SearchFlights searches flight offers.
	SearchFlights(ctx context.Context, query FlightQuery) (*ProviderDocument, error)

	// LookupAirlines fetches airline reference data for the given carrier codes.
	LookupAirlines(ctx context.Context, codes []string) (*ProviderDocument, error)

	// PriceOffer re-prices a previously returned offer. The price may differ from the search.
	PriceOffer(ctx context.Context, offer json.RawMessage) (json.RawMessage, error)

	// PlaceOrder submits a complete order payload.
	PlaceOrder(ctx context.Context, order json.RawMessage) (json.RawMessage, error)
}
