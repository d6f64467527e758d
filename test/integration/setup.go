// Package integration provides helpers and integration tests for the reservation gateway.
// Integration tests verify that components work together correctly, including
// HTTP handlers, middleware, use cases, the airport cache and the provider client.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/flight-search/flight-reservations/internal/adapter/http"
	"github.com/flight-search/flight-reservations/internal/adapter/http/middleware"
	"github.com/flight-search/flight-reservations/internal/adapter/provider/amadeus"
	"github.com/flight-search/flight-reservations/internal/domain"
	"github.com/flight-search/flight-reservations/internal/infrastructure/cache"
	"github.com/flight-search/flight-reservations/internal/usecase"
	"github.com/flight-search/flight-reservations/test/mock"
)

// TestServer wraps an Echo instance wired like the production server.
type TestServer struct {
	Echo     *echo.Echo
	Service  usecase.ReservationService
	Resolver *usecase.AirportResolver
}

// NewTestServer builds the full stack over provider with an in-memory airport cache.
func NewTestServer(provider domain.FlightDataProvider) *TestServer {
	return NewTestServerWithCache(provider, cache.NewMemory[domain.Airport]())
}

// NewTestServerWithCache builds the full stack over provider and the given airport cache.
func NewTestServerWithCache(provider domain.FlightDataProvider, airports cache.Cache[domain.Airport]) *TestServer {
	log := zerolog.Nop()

	resolver := usecase.NewAirportResolver(provider, airports, usecase.DefaultBatchConcurrency, log)
	service := usecase.NewReservationService(provider, resolver, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, log)
	httpAdapter.RegisterRoutes(e, httpAdapter.NewReservationHandler(service, log))

	return &TestServer{
		Echo:     e,
		Service:  service,
		Resolver: resolver,
	}
}

// NewAmadeusClient returns a provider client pointed at the fake server.
func NewAmadeusClient(fake *mock.AmadeusServer) *amadeus.Client {
	return amadeus.NewClient(amadeus.Config{
		BaseURL:     fake.URL,
		APIKey:      mock.APIKey,
		APISecret:   mock.APISecret,
		Timeout:     2 * time.Second,
		MaxAttempts: 1,
	}, zerolog.Nop())
}

// NewAmadeusTestServer builds the full stack over a real provider client talking to fake.
func NewAmadeusTestServer(t *testing.T, fake *mock.AmadeusServer) *TestServer {
	t.Helper()
	return NewTestServer(NewAmadeusClient(fake))
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Body is sent as-is when it is []byte, otherwise JSON-encoded.
	Body any
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var body []byte
	switch b := req.Body.(type) {
	case nil:
	case []byte:
		body = b
	case string:
		body = []byte(b)
	default:
		body, _ = json.Marshal(b)
	}

	target := req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	httpReq := httptest.NewRequest(req.Method, target, bytes.NewReader(body))
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Get issues a GET with query parameters.
func (ts *TestServer) Get(path string, query url.Values) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST with a JSON body.
func (ts *TestServer) Post(path string, body any) Response {
	return ts.Do(Request{Method: http.MethodPost, Path: path, Body: body})
}

// ErrorBody is the JSON error envelope returned by the API.
type ErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

// ParseError parses the response body as an error envelope.
func (r *Response) ParseError() (ErrorBody, error) {
	var body ErrorBody
	err := json.Unmarshal(r.Body, &body)
	return body, err
}

// FlightQuery returns valid flight search parameters from JFK to LAX.
func FlightQuery() url.Values {
	return url.Values{
		"origin":      {"JFK"},
		"destination": {"LAX"},
		"departDate":  {"2026-11-02"},
		"adults":      {"1"},
	}
}
