package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/flight-search/flight-reservations/internal/adapter/http/middleware"
	"github.com/flight-search/flight-reservations/internal/adapter/provider/amadeus"
	"github.com/flight-search/flight-reservations/internal/domain"
	"github.com/flight-search/flight-reservations/test/mock"
	"github.com/flight-search/flight-reservations/test/testutil"
)

// airportsByKeyword answers location searches with the fixture entries whose code
// matches the keyword, like the provider does for exact IATA codes.
func airportsByKeyword(t *testing.T) http.HandlerFunc {
	fixture := testutil.LoadTestJSON(t, "locations.json")
	return func(w http.ResponseWriter, r *http.Request) {
		keyword := strings.ToUpper(r.URL.Query().Get("keyword"))
		var matches []string
		for _, loc := range gjson.GetBytes(fixture, "data").Array() {
			if loc.Get("iataCode").String() == keyword {
				matches = append(matches, loc.Raw)
			}
		}
		w.Header().Set("Content-Type", "application/vnd.amadeus+json")
		_, _ = io.WriteString(w, `{"data":[`+strings.Join(matches, ",")+`]}`)
	}
}

func TestHandler_Health(t *testing.T) {
	ts := NewTestServer(mock.NewProvider())

	resp := ts.Get("/health", nil)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok","service":"flight-reservations"}`, string(resp.Body))
	assert.NotEmpty(t, resp.Headers.Get(middleware.RequestIDHeader))
}

func TestHandler_SearchLocations(t *testing.T) {
	fake := mock.NewAmadeusServer(t).
		Respond(amadeus.LocationsPath, http.StatusOK, testutil.LoadTestJSON(t, "locations.json"))
	ts := NewAmadeusTestServer(t, fake)

	resp := ts.Get("/api/v1/locations", url.Values{"keyword": {"new york"}})

	require.Equal(t, http.StatusOK, resp.Code)
	locations := testutil.DecodeJSON[[]domain.Location](t, resp.Body)
	require.Len(t, locations, 2)
	assert.Equal(t, "JFK", *locations[0].IataCode)
	assert.Equal(t, "NEW YORK", *locations[0].City)
	assert.InDelta(t, 40.6398, *locations[0].Latitude, 0.0001)
	assert.Equal(t, "LAX", *locations[1].IataCode)

	reqs := fake.RequestsTo(amadeus.LocationsPath)
	require.Len(t, reqs, 1)
	assert.Equal(t, "new york", reqs[0].Query.Get("keyword"))
	assert.Equal(t, "AIRPORT", reqs[0].Query.Get("subType"))
	assert.Equal(t, 1, fake.TokenCalls())
}

func TestHandler_SearchLocations_Raw(t *testing.T) {
	fixture := testutil.LoadTestJSON(t, "locations.json")
	fake := mock.NewAmadeusServer(t).Respond(amadeus.LocationsPath, http.StatusOK, fixture)
	ts := NewAmadeusTestServer(t, fake)

	resp := ts.Get("/api/v1/locations", url.Values{"keyword": {"JFK"}, "raw": {"true"}})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, strings.TrimSpace(string(fixture)), string(resp.Body))
}

func TestHandler_SearchLocations_EmptyRawBody(t *testing.T) {
	fake := mock.NewAmadeusServer(t).Respond(amadeus.LocationsPath, http.StatusOK, nil)
	ts := NewAmadeusTestServer(t, fake)

	resp := ts.Get("/api/v1/locations", url.Values{"keyword": {"nowhere"}, "raw": {"true"}})

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"data":[]}`, string(resp.Body))
}

func TestHandler_ResolveAirports_OrderAndCaching(t *testing.T) {
	fake := mock.NewAmadeusServer(t).Handle(amadeus.LocationsPath, airportsByKeyword(t))
	ts := NewAmadeusTestServer(t, fake)

	resp := ts.Get("/api/v1/airports", url.Values{"codes": {"lax, jfk , LAX,zzz"}})

	require.Equal(t, http.StatusOK, resp.Code)
	body := string(resp.Body)
	assert.JSONEq(t, `{
		"LAX": {"code":"LAX","cityName":"LOS ANGELES","airportName":"LOS ANGELES INTL","countryCode":"US","timeZoneOffset":"-08:00"},
		"JFK": {"code":"JFK","cityName":"NEW YORK","airportName":"JOHN F KENNEDY INTL","countryCode":"US","timeZoneOffset":"-05:00"}
	}`, body)
	assert.Less(t, strings.Index(body, `"LAX"`), strings.Index(body, `"JFK"`), "keys follow request order")
	assert.Len(t, fake.RequestsTo(amadeus.LocationsPath), 3, "one lookup per distinct code")

	// Known codes are served from the cache; the unknown code is looked up again.
	resp = ts.Get("/api/v1/airports", url.Values{"codes": {"JFK,LAX,ZZZ"}})
	require.Equal(t, http.StatusOK, resp.Code)

	reqs := fake.RequestsTo(amadeus.LocationsPath)
	require.Len(t, reqs, 4)
	assert.Equal(t, "ZZZ", reqs[3].Query.Get("keyword"))
}

func TestHandler_SearchFlights_EndToEnd(t *testing.T) {
	offers := testutil.LoadTestJSON(t, "flight_offers.json")
	fake := mock.NewAmadeusServer(t).
		Respond(amadeus.FlightOffersPath, http.StatusOK, offers).
		Respond(amadeus.AirlinesPath, http.StatusOK, testutil.LoadTestJSON(t, "airlines.json"))
	ts := NewAmadeusTestServer(t, fake)

	resp := ts.Get("/api/v1/flights", FlightQuery())

	require.Equal(t, http.StatusOK, resp.Code)
	got := testutil.DecodeJSON[[]domain.FlightOffer](t, resp.Body)
	require.Len(t, got, 2)

	first := got[0]
	assert.Equal(t, "1", *first.ID)
	assert.Equal(t, "412.30", *first.Price.Total)
	assert.Equal(t, "AMERICAN AIRLINES", *first.AirlineName)
	assert.Equal(t, "ECONOMY", *first.Cabin)
	assert.Equal(t, 0, *first.NumberOfStops)
	assert.JSONEq(t, string(testutil.DataElement(t, offers, 0)), string(first.RawOffer))

	second := got[1]
	assert.Equal(t, "ZULU AIR", *second.AirlineName, "dictionary name used when the lookup has no entry")
	assert.Equal(t, 1, *second.NumberOfStops)
	assert.Equal(t, "JFK", *second.OriginCode)
	assert.Equal(t, "LAX", *second.DestinationCode)
	assert.Equal(t, "2026-11-02T15:00:00", *second.ArrivalTime)
	assert.JSONEq(t, string(testutil.DataElement(t, offers, 1)), string(second.RawOffer))

	search := fake.RequestsTo(amadeus.FlightOffersPath)
	require.Len(t, search, 1)
	q := search[0].Query
	assert.Equal(t, "JFK", q.Get("originLocationCode"))
	assert.Equal(t, "LAX", q.Get("destinationLocationCode"))
	assert.Equal(t, "2026-11-02", q.Get("departureDate"))
	assert.Equal(t, "1", q.Get("adults"))
	assert.Equal(t, "10", q.Get("max"))
	assert.Equal(t, "USD", q.Get("currencyCode"))
	assert.False(t, q.Has("children"))
	assert.False(t, q.Has("infants"))

	airlines := fake.RequestsTo(amadeus.AirlinesPath)
	require.Len(t, airlines, 1)
	assert.Equal(t, "AA,ZZ", airlines[0].Query.Get("airlineCodes"))
}

func TestHandler_SearchFlights_OptionalParams(t *testing.T) {
	tests := []struct {
		name  string
		extra url.Values
		check func(t *testing.T, q url.Values)
	}{
		{
			name:  "children forwarded when positive",
			extra: url.Values{"children": {"2"}, "infants": {"0"}},
			check: func(t *testing.T, q url.Values) {
				assert.Equal(t, "2", q.Get("children"))
				assert.False(t, q.Has("infants"))
			},
		},
		{
			name:  "lower-case currency upper-cased",
			extra: url.Values{"currencyCode": {"eur"}},
			check: func(t *testing.T, q url.Values) {
				assert.Equal(t, "EUR", q.Get("currencyCode"))
			},
		},
		{
			name:  "malformed currency dropped",
			extra: url.Values{"currencyCode": {"usd1"}},
			check: func(t *testing.T, q url.Values) {
				assert.False(t, q.Has("currencyCode"))
			},
		},
		{
			name:  "return date and class",
			extra: url.Values{"returnDate": {"2026-11-09"}, "travelClass": {"premium economy"}, "maxResults": {"3"}},
			check: func(t *testing.T, q url.Values) {
				assert.Equal(t, "2026-11-09", q.Get("returnDate"))
				assert.Equal(t, "PREMIUM_ECONOMY", q.Get("travelClass"))
				assert.Equal(t, "3", q.Get("max"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := mock.NewAmadeusServer(t).Respond(amadeus.FlightOffersPath, http.StatusOK, []byte(`{"data":[]}`))
			ts := NewAmadeusTestServer(t, fake)

			query := FlightQuery()
			for k, v := range tt.extra {
				query[k] = v
			}
			resp := ts.Get("/api/v1/flights", query)

			require.Equal(t, http.StatusOK, resp.Code)
			assert.JSONEq(t, `[]`, string(resp.Body))
			assert.Empty(t, fake.RequestsTo(amadeus.AirlinesPath), "no carriers, no airline lookup")

			reqs := fake.RequestsTo(amadeus.FlightOffersPath)
			require.Len(t, reqs, 1)
			tt.check(t, reqs[0].Query)
		})
	}
}

func TestHandler_SearchFlights_ProviderRejection(t *testing.T) {
	fake := mock.NewAmadeusServer(t).Respond(amadeus.FlightOffersPath, http.StatusBadRequest,
		[]byte(`{"errors":[{"status":400,"code":425,"title":"INVALID DATE","detail":"Date/Time is in the past"}]}`))
	ts := NewAmadeusTestServer(t, fake)

	resp := ts.Get("/api/v1/flights", FlightQuery())

	require.Equal(t, http.StatusBadRequest, resp.Code)
	body, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "provider_error", body.Code)
	assert.Equal(t, "Error fetching flights", body.Message)
	assert.Equal(t, "INVALID DATE: Date/Time is in the past", body.Details["provider"])
	assert.Equal(t, domain.CategoryClientError, body.Details["category"])
}

func TestHandler_InvalidCredentials(t *testing.T) {
	fake := mock.NewAmadeusServer(t)
	client := amadeus.NewClient(amadeus.Config{
		BaseURL:   fake.URL,
		APIKey:    mock.APIKey,
		APISecret: "wrong",
		Timeout:   2 * time.Second,
	}, zerolog.Nop())
	ts := NewTestServer(client)

	resp := ts.Get("/api/v1/locations", url.Values{"keyword": {"LON"}})

	require.Equal(t, http.StatusBadRequest, resp.Code)
	body, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "Error fetching locations", body.Message)
	assert.Equal(t, "Client credentials are invalid", body.Details["provider"])
	assert.Empty(t, fake.Requests(), "no API call without a token")
}

func TestHandler_ConfirmPrice_RoundTrip(t *testing.T) {
	offers := testutil.LoadTestJSON(t, "flight_offers.json")
	pricing := testutil.LoadTestJSON(t, "pricing.json")
	fake := mock.NewAmadeusServer(t).
		Respond(amadeus.FlightOffersPath, http.StatusOK, offers).
		Respond(amadeus.AirlinesPath, http.StatusOK, testutil.LoadTestJSON(t, "airlines.json")).
		Respond(amadeus.PricingPath, http.StatusOK, pricing)
	ts := NewAmadeusTestServer(t, fake)

	search := ts.Get("/api/v1/flights", FlightQuery())
	require.Equal(t, http.StatusOK, search.Code)
	rawOffer := gjson.GetBytes(search.Body, "0.rawOffer").Raw
	require.NotEmpty(t, rawOffer)

	tests := []struct {
		name string
		body string
	}{
		{name: "data array", body: `{"data":[` + rawOffer + `]}`},
		{name: "data object", body: `{"data":` + rawOffer + `}`},
		{name: "bare offer", body: rawOffer},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := ts.Post("/api/v1/flights/confirm", []byte(tt.body))

			require.Equal(t, http.StatusOK, resp.Code)
			assert.JSONEq(t, string(pricing), string(resp.Body))

			reqs := fake.RequestsTo(amadeus.PricingPath)
			require.Len(t, reqs, i+1)
			envelope := reqs[i].Body
			assert.Equal(t, "flight-offers-pricing", gjson.Get(envelope, "data.type").String())
			assert.Equal(t, rawOffer, gjson.Get(envelope, "data.flightOffers.0").Raw, "offer forwarded byte for byte")
			assert.Equal(t, int64(1), gjson.Get(envelope, "data.flightOffers.#").Int())
		})
	}
}

func TestHandler_ConfirmPrice_InvalidOffer(t *testing.T) {
	fake := mock.NewAmadeusServer(t)
	ts := NewAmadeusTestServer(t, fake)

	for _, body := range []string{`[1,2]`, `not json`} {
		resp := ts.Post("/api/v1/flights/confirm", []byte(body))

		assert.Equal(t, http.StatusBadRequest, resp.Code, body)
		errBody, err := resp.ParseError()
		require.NoError(t, err)
		assert.Equal(t, "validation_error", errBody.Code, body)
	}
	assert.Empty(t, fake.Requests())
}

func TestHandler_ConfirmPrice_NonObjectFirstOffer(t *testing.T) {
	fake := mock.NewAmadeusServer(t)
	ts := NewAmadeusTestServer(t, fake)

	resp := ts.Post("/api/v1/flights/confirm", []byte(`{"data":["x",{"id":"1"}]}`))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	errBody, err := resp.ParseError()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(errBody.Message, "Unexpected error: "), errBody.Message)
	assert.Empty(t, fake.Requests())
}

func TestHandler_PlaceOrder(t *testing.T) {
	confirmation := testutil.LoadTestJSON(t, "order.json")
	fake := mock.NewAmadeusServer(t).Respond(amadeus.FlightOrdersPath, http.StatusCreated, confirmation)
	ts := NewAmadeusTestServer(t, fake)

	order := `{"data":{"type":"flight-order","flightOffers":[{"id":"1"}],"travelers":[{"id":"1"}]}}`
	resp := ts.Post("/api/v1/bookings/order", []byte(order))

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, string(confirmation), string(resp.Body))

	reqs := fake.RequestsTo(amadeus.FlightOrdersPath)
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, order, reqs[0].Body)
}

func TestHandler_PlaceOrder_ProviderFailure(t *testing.T) {
	fake := mock.NewAmadeusServer(t).Respond(amadeus.FlightOrdersPath, http.StatusInternalServerError,
		[]byte(`{"errors":[{"status":500,"code":141,"title":"SYSTEM ERROR HAS OCCURRED"}]}`))
	ts := NewAmadeusTestServer(t, fake)

	resp := ts.Post("/api/v1/bookings/order", []byte(`{"data":{}}`))

	require.Equal(t, http.StatusBadRequest, resp.Code)
	body, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "Error creating order", body.Message)
	assert.Equal(t, domain.CategoryServerError, body.Details["category"])
	assert.Len(t, fake.RequestsTo(amadeus.FlightOrdersPath), 1, "orders are never retried")
}

func TestHandler_TravelerPreview(t *testing.T) {
	fake := mock.NewAmadeusServer(t)
	ts := NewAmadeusTestServer(t, fake)

	resp := ts.Post("/api/v1/traveler", map[string]string{
		"firstName":        "Ada",
		"lastName":         "Lovelace",
		"dateOfBirth":      "1990-12-10",
		"phoneCountryCode": "44",
		"phoneNumber":      "7700900123",
	})

	require.Equal(t, http.StatusOK, resp.Code)
	traveler := testutil.DecodeJSON[domain.Traveler](t, resp.Body)
	assert.Equal(t, "1", traveler.ID)
	assert.Equal(t, "Ada", traveler.Name.FirstName)
	assert.Equal(t, "Lovelace", traveler.Name.LastName)
	require.NotNil(t, traveler.Contact)
	require.Len(t, traveler.Contact.Phones, 1)
	assert.Equal(t, "44", traveler.Contact.Phones[0].CountryCallingCode)
	assert.Empty(t, traveler.Documents)
	assert.Empty(t, fake.Requests(), "preview never contacts the provider")
}

func TestHandler_RequestIDPropagated(t *testing.T) {
	ts := NewTestServer(mock.NewProvider())

	resp := ts.Do(Request{Method: http.MethodGet, Path: "/health"})
	generated := resp.Headers.Get(middleware.RequestIDHeader)
	assert.NotEmpty(t, generated)

	again := ts.Do(Request{Method: http.MethodGet, Path: "/health"})
	assert.NotEqual(t, generated, again.Headers.Get(middleware.RequestIDHeader))
}

func TestHandler_UnknownRoute(t *testing.T) {
	ts := NewTestServer(mock.NewProvider())

	resp := ts.Get("/api/v1/flights/search", nil)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body, &body))
}
