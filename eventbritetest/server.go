// Package eventbritetest provides an in-process fake of the Eventbrite JSON API
// for testing code that uses the eventbrite client.
package eventbritetest

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/broady/eventbrite"
	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/gorilla/schema"
)

// Auth holds the credentials found on a recorded request.
type Auth struct {
	AppKey  string `schema:"app_key"`
	UserKey string `schema:"user_key"`
}

// Call is one request received by the Server.
type Call struct {
	Method string
	Query  url.Values
	Auth   Auth
}

// Params returns the query parameters of the call without the credentials.
func (c Call) Params() map[string]string {
	out := make(map[string]string, len(c.Query))
	for k := range c.Query {
		if k == "app_key" || k == "user_key" {
			continue
		}
		out[k] = c.Query.Get(k)
	}
	return out
}

// Decode fills dst, a pointer to a struct with schema tags, from the call's query.
func (c Call) Decode(dst any) error {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec.Decode(dst, c.Query)
}

type cannedResponse struct {
	status int
	body   []byte
}

// Server is a TLS test server answering /json/{method}.
// Methods without a registered response get the API's JSON error envelope.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	calls     []Call
	responses map[string]cannedResponse
}

// NewServer starts a Server. Call Close when done.
func NewServer() *Server {
	s := &Server{responses: make(map[string]cannedResponse)}
	r := chi.NewRouter()
	r.Get("/json/{method}", s.serveMethod)
	s.Server = httptest.NewTLSServer(r)
	return s
}

// Handle registers the value returned, JSON encoded, for method.
func (s *Server) Handle(method eventbrite.Method, v any) *Server {
	body, err := json.Marshal(v)
	if err != nil {
		panic("eventbritetest: cannot encode response: " + err.Error())
	}
	return s.HandleRaw(method, http.StatusOK, string(body))
}

// HandleRaw registers a raw status and body for method.
func (s *Server) HandleRaw(method eventbrite.Method, status int, body string) *Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[string(method)] = cannedResponse{status: status, body: []byte(body)}
	return s
}

// NewClient returns a client with the given keys talking to s.
func (s *Server) NewClient(appKey, userKey string) *eventbrite.Client {
	u, err := url.Parse(s.URL)
	if err != nil {
		panic("eventbritetest: bad server URL: " + err.Error())
	}
	return eventbrite.NewClient(appKey, userKey).
		WithHost(u.Host).
		WithHTTPClient(s.Client())
}

// Calls returns the requests received so far, oldest first.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// LastCall returns the most recent request.
func (s *Server) LastCall() (Call, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.calls) == 0 {
		return Call{}, false
	}
	return s.calls[len(s.calls)-1], true
}

func (s *Server) serveMethod(w http.ResponseWriter, r *http.Request) {
	method := chi.URLParam(r, "method")
	call := Call{Method: method, Query: r.URL.Query()}
	// Credentials are optional on the wire, so a decode failure only leaves Auth empty.
	_ = call.Decode(&call.Auth)

	s.mu.Lock()
	s.calls = append(s.calls, call)
	resp, ok := s.responses[method]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusOK)
		body, _ := json.Marshal(map[string]any{
			"error": map[string]any{
				"error_type":    "Method Error",
				"error_message": "no response registered for " + method,
			},
		})
		w.Write(body)
		return
	}
	w.WriteHeader(resp.status)
	w.Write(resp.body)
}

// AssertParams checks that call carried exactly want, credentials excluded.
func AssertParams(t testing.TB, call Call, want map[string]string) {
	t.Helper()
	got := call.Params()
	for k, v := range want {
		gv, ok := got[k]
		if !ok {
			t.Errorf("%s: missing param %s", call.Method, k)
			continue
		}
		if gv != v {
			t.Errorf("%s: param %s = %q, want %q", call.Method, k, gv, v)
		}
	}
	for k, v := range got {
		if _, ok := want[k]; !ok {
			t.Errorf("%s: unexpected param %s=%q", call.Method, k, v)
		}
	}
}

// AssertAuth checks the credentials carried by call.
func AssertAuth(t testing.TB, call Call, appKey, userKey string) {
	t.Helper()
	if call.Auth.AppKey != appKey || call.Auth.UserKey != userKey {
		t.Errorf("%s: auth = %+v, want app_key=%q user_key=%q", call.Method, call.Auth, appKey, userKey)
	}
}
