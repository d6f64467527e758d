package mock

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/flight-search/flight-reservations/internal/adapter/provider/amadeus"
)

// Credentials accepted by AmadeusServer.
const (
	APIKey    = "integration-key"
	APISecret = "integration-secret"
)

// RecordedRequest is a provider API call observed by AmadeusServer.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   string
}

// AmadeusServer is an httptest server answering the Amadeus token endpoint and
// the API paths registered with Handle.
type AmadeusServer struct {
	*httptest.Server

	mu         sync.Mutex
	handlers   map[string]http.HandlerFunc
	requests   []RecordedRequest
	tokenCalls atomic.Int32
}

// NewAmadeusServer starts a fake provider that is closed when the test ends.
func NewAmadeusServer(t *testing.T) *AmadeusServer {
	t.Helper()

	s := &AmadeusServer{handlers: make(map[string]http.HandlerFunc)}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

// Handle registers the handler for an API path.
func (s *AmadeusServer) Handle(path string, h http.HandlerFunc) *AmadeusServer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[path] = h
	return s
}

// Respond registers a fixed response for an API path.
func (s *AmadeusServer) Respond(path string, status int, body []byte) *AmadeusServer {
	return s.Handle(path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/vnd.amadeus+json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	})
}

// Requests returns the API calls received so far, excluding token requests.
func (s *AmadeusServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// RequestsTo returns the API calls received for path.
func (s *AmadeusServer) RequestsTo(path string) []RecordedRequest {
	var out []RecordedRequest
	for _, r := range s.Requests() {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// TokenCalls returns how many access tokens were issued.
func (s *AmadeusServer) TokenCalls() int {
	return int(s.tokenCalls.Load())
}

func (s *AmadeusServer) serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == amadeus.TokenPath {
		s.tokenCalls.Add(1)
		_ = r.ParseForm()
		w.Header().Set("Content-Type", "application/json")
		if r.PostForm.Get("client_id") != APIKey || r.PostForm.Get("client_secret") != APISecret {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = io.WriteString(w, `{"error":"invalid_client","error_description":"Client credentials are invalid"}`)
			return
		}
		_, _ = io.WriteString(w, `{"type":"amadeusOAuth2Token","access_token":"integration-token","token_type":"Bearer","expires_in":1799}`)
		return
	}

	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Body:   string(body),
	})
	h, ok := s.handlers[r.URL.Path]
	s.mu.Unlock()

	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"errors":[{"status":404,"code":38196,"title":"Resource not found"}]}`)
		return
	}
	h(w, r)
}
