// Package usecase orchestrates provider calls for search, pricing and booking.
// Offers keep their raw provider JSON so pricing and booking need no server-side state.
package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/flight-search/flight-reservations/internal/domain"
	"github.com/flight-search/flight-reservations/internal/normalizer"
)

// emptyDataDocument is returned in raw mode when the provider sends no body.
var emptyDataDocument = json.RawMessage(`{"data":[]}`)

// ReservationService defines the user-facing reservation operations.
type ReservationService interface {
	// SearchLocations returns normalized airports matching keyword.
	SearchLocations(ctx context.Context, keyword string) ([]domain.Location, error)

	// SearchLocationsRaw returns the provider's location response unchanged.
	SearchLocationsRaw(ctx context.Context, keyword string) (json.RawMessage, error)

	// ResolveAirports resolves a comma-separated list of codes.
	ResolveAirports(ctx context.Context, codesCSV string) (*domain.AirportMap, error)

	// SearchFlights returns normalized offers enriched with airline names.
	// Each offer carries its raw provider JSON for later pricing.
	SearchFlights(ctx context.Context, query domain.FlightQuery) ([]domain.FlightOffer, error)

	// SearchFlightsRaw returns the provider's offer search response unchanged.
	SearchFlightsRaw(ctx context.Context, query domain.FlightQuery) (json.RawMessage, error)

	// AirlineNames maps carrier codes to display names.
	AirlineNames(ctx context.Context, codesCSV string) (map[string]string, error)

	// ConfirmPrice re-prices an offer previously returned by SearchFlights.
	ConfirmPrice(ctx context.Context, payload json.RawMessage) (json.RawMessage, error)

	// PlaceOrder submits an order payload unchanged.
	PlaceOrder(ctx context.Context, order json.RawMessage) (json.RawMessage, error)

	// BuildTraveler previews the provider-shaped traveler for input.
	BuildTraveler(input domain.TravelerInput, id string) domain.Traveler

	// BuildTravelers builds travelers with ids "1".."N".
	BuildTravelers(inputs []domain.TravelerInput) []domain.Traveler
}

type reservationService struct {
	provider domain.FlightDataProvider
	airports *AirportResolver
	logger   zerolog.Logger
}

// NewReservationService creates a ReservationService.
func NewReservationService(provider domain.FlightDataProvider, airports *AirportResolver, logger zerolog.Logger) ReservationService {
	return &reservationService{
		provider: provider,
		airports: airports,
		logger:   logger,
	}
}

func (s *reservationService) SearchLocations(ctx context.Context, keyword string) ([]domain.Location, error) {
	doc, err := s.searchLocations(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return normalizer.ToLocations(doc), nil
}

func (s *reservationService) SearchLocationsRaw(ctx context.Context, keyword string) (json.RawMessage, error) {
	doc, err := s.searchLocations(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return rawOrEmpty(doc), nil
}

func (s *reservationService) searchLocations(ctx context.Context, keyword string) (*domain.ProviderDocument, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, domain.WrapInvalidRequest("keyword is required")
	}

	doc, err := s.provider.SearchLocations(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search locations: %w", err)
	}
	return doc, nil
}

func (s *reservationService) ResolveAirports(ctx context.Context, codesCSV string) (*domain.AirportMap, error) {
	airports, err := s.airports.ResolveBatch(ctx, codesCSV)
	if err != nil {
		return nil, fmt.Errorf("resolve airports: %w", err)
	}
	return airports, nil
}

func (s *reservationService) SearchFlights(ctx context.Context, query domain.FlightQuery) ([]domain.FlightOffer, error) {
	start := time.Now()

	doc, err := s.provider.SearchFlights(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search flights: %w", err)
	}
	if doc == nil {
		doc = &domain.ProviderDocument{}
	}

	raws := doc.Data
	names := normalizer.DictionaryCarriers(doc.Body)

	if codes := normalizer.CarrierCodes(raws); len(codes) > 0 {
		airlines, err := s.provider.LookupAirlines(ctx, codes)
		if err != nil {
			return nil, fmt.Errorf("lookup airlines: %w", err)
		}
		maps.Copy(names, normalizer.ToAirlineNames(airlines))
	}

	offers := normalizer.ToFlightOffers(raws, names)

	s.logger.Debug().
		Str("origin", query.Origin).
		Str("destination", query.Destination).
		Int("offers", len(offers)).
		Dur("duration", time.Since(start)).
		Msg("flight search completed")

	return offers, nil
}

func (s *reservationService) SearchFlightsRaw(ctx context.Context, query domain.FlightQuery) (json.RawMessage, error) {
	doc, err := s.provider.SearchFlights(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search flights: %w", err)
	}
	return rawOrEmpty(doc), nil
}

func (s *reservationService) AirlineNames(ctx context.Context, codesCSV string) (map[string]string, error) {
	codes := ParseCodes(codesCSV)
	if len(codes) == 0 {
		return map[string]string{}, nil
	}

	doc, err := s.provider.LookupAirlines(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("lookup airlines: %w", err)
	}
	return normalizer.ToAirlineNames(doc), nil
}

func (s *reservationService) ConfirmPrice(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	doc, err := domain.ParseOfferDocument(payload)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("shape", string(doc.Kind)).Msg("pricing offer")

	priced, err := s.provider.PriceOffer(ctx, doc.Offer)
	if err != nil {
		return nil, fmt.Errorf("price offer: %w", err)
	}
	return priced, nil
}

func (s *reservationService) PlaceOrder(ctx context.Context, order json.RawMessage) (json.RawMessage, error) {
	if !gjson.ValidBytes(order) || !gjson.ParseBytes(order).IsObject() {
		return nil, domain.WrapInvalidRequest("order must be a JSON object")
	}

	confirmation, err := s.provider.PlaceOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	return confirmation, nil
}

func (s *reservationService) BuildTraveler(input domain.TravelerInput, id string) domain.Traveler {
	return domain.NewTraveler(input, id)
}

func (s *reservationService) BuildTravelers(inputs []domain.TravelerInput) []domain.Traveler {
	return domain.NewTravelers(inputs)
}

func rawOrEmpty(doc *domain.ProviderDocument) json.RawMessage {
	if doc == nil || len(doc.Body) == 0 {
		return emptyDataDocument
	}
	return doc.Body
}
