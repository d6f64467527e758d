// Package mock provides test doubles for the reservation gateway.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/flight-search/flight-reservations/internal/domain"
	"github.com/flight-search/flight-reservations/internal/normalizer"
)

// Operation names used for call counting and per-operation errors.
const (
	OpSearchLocations = "search_locations"
	OpResolveAirport  = "resolve_airport"
	OpSearchFlights   = "search_flights"
	OpLookupAirlines  = "lookup_airlines"
	OpPriceOffer      = "price_offer"
	OpPlaceOrder      = "place_order"
)

// Provider is a configurable in-memory implementation of domain.FlightDataProvider.
// Responses are provider-shaped JSON bodies; errors and delays can be set per operation.
type Provider struct {
	mu sync.Mutex

	locations []byte
	airports  map[string]domain.Airport
	flights   []byte
	airlines  []byte
	pricing   []byte
	order     []byte

	errs   map[string]error
	delay  time.Duration
	calls  map[string]int
	priced []json.RawMessage
	orders []json.RawMessage
}

// NewProvider creates a provider that returns empty documents until configured.
func NewProvider() *Provider {
	return &Provider{
		airports: make(map[string]domain.Airport),
		errs:     make(map[string]error),
		calls:    make(map[string]int),
	}
}

// WithLocations sets the body returned by SearchLocations.
func (p *Provider) WithLocations(body []byte) *Provider {
	p.locations = body
	return p
}

// WithAirport registers an airport returned by ResolveAirport.
func (p *Provider) WithAirport(airport domain.Airport) *Provider {
	p.airports[strings.ToUpper(airport.Code)] = airport
	return p
}

// WithFlights sets the body returned by SearchFlights.
func (p *Provider) WithFlights(body []byte) *Provider {
	p.flights = body
	return p
}

// WithAirlines sets the body returned by LookupAirlines.
func (p *Provider) WithAirlines(body []byte) *Provider {
	p.airlines = body
	return p
}

// WithPricing sets the body returned by PriceOffer.
func (p *Provider) WithPricing(body []byte) *Provider {
	p.pricing = body
	return p
}

// WithOrder sets the body returned by PlaceOrder.
func (p *Provider) WithOrder(body []byte) *Provider {
	p.order = body
	return p
}

// WithError makes op fail with err.
func (p *Provider) WithError(op string, err error) *Provider {
	p.errs[op] = err
	return p
}

// WithDelay configures every call to wait the given duration before responding.
// The wait honors context cancellation.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// SearchLocations implements domain.FlightDataProvider.
func (p *Provider) SearchLocations(ctx context.Context, _ string) (*domain.ProviderDocument, error) {
	if err := p.begin(ctx, OpSearchLocations); err != nil {
		return nil, err
	}
	return document(p.locations), nil
}

// ResolveAirport implements domain.FlightDataProvider.
func (p *Provider) ResolveAirport(ctx context.Context, code string) (*domain.Airport, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}
	if err := p.begin(ctx, OpResolveAirport); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	airport, ok := p.airports[strings.ToUpper(code)]
	if !ok {
		return nil, nil
	}
	return &airport, nil
}

// SearchFlights implements domain.FlightDataProvider.
func (p *Provider) SearchFlights(ctx context.Context, _ domain.FlightQuery) (*domain.ProviderDocument, error) {
	if err := p.begin(ctx, OpSearchFlights); err != nil {
		return nil, err
	}
	return document(p.flights), nil
}

// LookupAirlines implements domain.FlightDataProvider.
func (p *Provider) LookupAirlines(ctx context.Context, _ []string) (*domain.ProviderDocument, error) {
	if err := p.begin(ctx, OpLookupAirlines); err != nil {
		return nil, err
	}
	return document(p.airlines), nil
}

// PriceOffer implements domain.FlightDataProvider. The received offer is recorded.
func (p *Provider) PriceOffer(ctx context.Context, offer json.RawMessage) (json.RawMessage, error) {
	if err := p.begin(ctx, OpPriceOffer); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.priced = append(p.priced, offer)
	return json.RawMessage(p.pricing), nil
}

// PlaceOrder implements domain.FlightDataProvider. The received order is recorded.
func (p *Provider) PlaceOrder(ctx context.Context, order json.RawMessage) (json.RawMessage, error) {
	if err := p.begin(ctx, OpPlaceOrder); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.orders = append(p.orders, order)
	if len(p.order) == 0 {
		return nil, domain.NewEmptyResponseError("order")
	}
	return json.RawMessage(p.order), nil
}

// begin counts the call, applies the delay and returns the configured error, if any.
func (p *Provider) begin(ctx context.Context, op string) error {
	p.mu.Lock()
	p.calls[op]++
	err := p.errs[op]
	delay := p.delay
	p.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

// CallCount returns the number of calls made to op.
func (p *Provider) CallCount(op string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[op]
}

// PricedOffers returns the offers received by PriceOffer, in call order.
func (p *Provider) PricedOffers() []json.RawMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]json.RawMessage(nil), p.priced...)
}

// Orders returns the orders received by PlaceOrder, in call order.
func (p *Provider) Orders() []json.RawMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]json.RawMessage(nil), p.orders...)
}

// Reset clears call counts and recorded payloads.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = make(map[string]int)
	p.priced = nil
	p.orders = nil
}

// Ensure Provider implements domain.FlightDataProvider at compile time.
var _ domain.FlightDataProvider = (*Provider)(nil)

func document(body []byte) *domain.ProviderDocument {
	return &domain.ProviderDocument{
		Body: json.RawMessage(body),
		Data: normalizer.SplitData(body),
	}
}

// SampleOffers returns a flight-offers body with count direct offers operated by carrier,
// departing from origin to destination. Prices rise by ten per offer.
func SampleOffers(carrier, origin, destination string, count int) []byte {
	offers := make([]string, count)
	for i := range count {
		offers[i] = fmt.Sprintf(`{"type":"flight-offer","id":"%d",`+
			`"itineraries":[{"duration":"PT2H30M","segments":[{"carrierCode":%q,"number":"%d",`+
			`"departure":{"iataCode":%q,"at":"2026-11-02T%02d:00:00"},`+
			`"arrival":{"iataCode":%q,"at":"2026-11-02T%02d:30:00"},"duration":"PT2H30M","numberOfStops":0}]}],`+
			`"price":{"currency":"USD","total":"%d.00"},"validatingAirlineCodes":[%q],`+
			`"travelerPricings":[{"travelerId":"1","fareDetailsBySegment":[{"segmentId":"1","cabin":"ECONOMY"}]}]}`,
			i+1, carrier, 100+i, origin, 6+i%12, destination, 8+i%12, 200+10*i, carrier)
	}
	return []byte(`{"data":[` + strings.Join(offers, ",") + `]}`)
}
