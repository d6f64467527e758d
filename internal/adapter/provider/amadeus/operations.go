package amadeus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/flight-search/flight-reservations/internal/domain"
	"github.com/flight-search/flight-reservations/internal/normalizer"
)

// Endpoint paths.
const (
	LocationsPath    = "/v1/reference-data/locations"
	FlightOffersPath = "/v2/shopping/flight-offers"
	AirlinesPath     = "/v1/reference-data/airlines"
	PricingPath      = "/v1/shopping/flight-offers/pricing"
	FlightOrdersPath = "/v1/booking/flight-orders"
)

// SubTypeAirport restricts location searches to airports.
const SubTypeAirport = "AIRPORT"

// Compile-time check that Client implements domain.FlightDataProvider.
var _ domain.FlightDataProvider = (*Client)(nil)

// SearchLocations finds airports matching keyword.
func (c *Client) SearchLocations(ctx context.Context, keyword string) (*domain.ProviderDocument, error) {
	body, err := c.do(ctx, call{
		op:         "search_locations",
		method:     http.MethodGet,
		path:       LocationsPath,
		query:      url.Values{"keyword": {keyword}, "subType": {SubTypeAirport}},
		idempotent: true,
	})
	if err != nil {
		return nil, err
	}
	return document(body), nil
}

// ResolveAirport looks up a single airport by code. Blank codes and codes without
// any match return nil.
func (c *Client) ResolveAirport(ctx context.Context, code string) (*domain.Airport, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}

	doc, err := c.SearchLocations(ctx, code)
	if err != nil {
		return nil, err
	}

	raw, ok := normalizer.PickAirport(doc.Data, code)
	if !ok {
		return nil, nil
	}
	airport := normalizer.ToAirport(raw)
	return &airport, nil
}

// SearchFlights searches flight offers.
func (c *Client) SearchFlights(ctx context.Context, query domain.FlightQuery) (*domain.ProviderDocument, error) {
	body, err := c.do(ctx, call{
		op:         "search_flights",
		method:     http.MethodGet,
		path:       FlightOffersPath,
		query:      FlightSearchParams(query),
		idempotent: true,
	})
	if err != nil {
		return nil, err
	}
	return document(body), nil
}

// LookupAirlines fetches airline reference data for codes.
func (c *Client) LookupAirlines(ctx context.Context, codes []string) (*domain.ProviderDocument, error) {
	body, err := c.do(ctx, call{
		op:         "lookup_airlines",
		method:     http.MethodGet,
		path:       AirlinesPath,
		query:      url.Values{"airlineCodes": {strings.Join(codes, ",")}},
		idempotent: true,
	})
	if err != nil {
		return nil, err
	}
	return document(body), nil
}

// PriceOffer confirms the current price of offer. The offer bytes are embedded
// unchanged in the pricing envelope.
func (c *Client) PriceOffer(ctx context.Context, offer json.RawMessage) (json.RawMessage, error) {
	if !gjson.ValidBytes(offer) {
		return nil, domain.WrapInvalidOffer("offer is not valid JSON")
	}
	envelope := make([]byte, 0, len(offer)+len(pricingPrefix)+len(pricingSuffix))
	envelope = append(envelope, pricingPrefix...)
	envelope = append(envelope, offer...)
	envelope = append(envelope, pricingSuffix...)

	body, err := c.do(ctx, call{
		op:     "price_offer",
		method: http.MethodPost,
		path:   PricingPath,
		body:   envelope,
	})
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// PlaceOrder submits order as-is and returns the provider's confirmation.
func (c *Client) PlaceOrder(ctx context.Context, order json.RawMessage) (json.RawMessage, error) {
	body, err := c.do(ctx, call{
		op:     "place_order",
		method: http.MethodPost,
		path:   FlightOrdersPath,
		body:   order,
	})
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, domain.NewEmptyResponseError("order")
	}
	return json.RawMessage(body), nil
}

// The pricing envelope wraps the offer bytes verbatim.
const (
	pricingPrefix = `{"data":{"type":"flight-offers-pricing","flightOffers":[`
	pricingSuffix = `]}}`
)

var currencyPattern = regexp.MustCompile(`(?i)^[A-Z]{3}$`)

// FlightSearchParams builds the offer search query. Optional parameters are only
// sent when they carry a usable value.
func FlightSearchParams(q domain.FlightQuery) url.Values {
	params := url.Values{}
	params.Set("originLocationCode", q.Origin)
	params.Set("destinationLocationCode", q.Destination)
	params.Set("departureDate", q.DepartureDate)
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("max", strconv.Itoa(q.MaxResults))

	if q.Children > 0 {
		params.Set("children", strconv.Itoa(q.Children))
	}
	if q.Infants > 0 {
		params.Set("infants", strconv.Itoa(q.Infants))
	}
	if rd := strings.TrimSpace(q.ReturnDate); rd != "" {
		params.Set("returnDate", rd)
	}
	if tc := strings.TrimSpace(q.TravelClass); tc != "" {
		params.Set("travelClass", strings.ToUpper(strings.ReplaceAll(tc, " ", "_")))
	}
	if currencyPattern.MatchString(q.CurrencyCode) {
		params.Set("currencyCode", strings.ToUpper(q.CurrencyCode))
	}
	return params
}

func document(body []byte) *domain.ProviderDocument {
	return &domain.ProviderDocument{
		Body: json.RawMessage(body),
		Data: normalizer.SplitData(body),
	}
}
