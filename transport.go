package eventbrite

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// Transport performs GET requests against a full target URL.
type Transport interface {
	Get(ctx context.Context, target string) (*Response, error)
}

// HTTPTransport is the default Transport, backed by an *http.Client.
// It adds no timeouts or retries of its own; configure the *http.Client for that.
type HTTPTransport struct {
	client *http.Client
	logger *slog.Logger
}

// NewHTTPTransport returns a Transport using hc, or a private client with
// http.DefaultTransport's settings when hc is nil.
func NewHTTPTransport(hc *http.Client) *HTTPTransport {
	if hc == nil {
		hc = newHTTPClient()
	}
	return &HTTPTransport{client: hc}
}

// WithLogger sets the logger used for transport diagnostics.
func (t *HTTPTransport) WithLogger(logger *slog.Logger) *HTTPTransport {
	t.logger = logger
	return t
}

// redactError scrubs the URL recorded in a *url.Error in place.
func redactError(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		ue.URL = redactTarget(ue.URL)
	}
	return err
}

func newHTTPClient() *http.Client {
	return &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}
}

// Get implements Transport.
//
// Errors are returned unwrapped, but a *url.Error carries the target with
// its sensitive query parameters redacted.
func (t *HTTPTransport) Get(ctx context.Context, target string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, redactError(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, redactError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if call, ok := CallFromContext(ctx); ok {
		logger := t.logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.DebugContext(ctx, "transport round trip",
			slog.String("method", string(call.Method)),
			slog.Int("status", resp.StatusCode),
			slog.Int("bytes", len(body)))
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// Close releases idle connections held by the underlying client.
func (t *HTTPTransport) Close() error {
	t.client.CloseIdleConnections()
	return nil
}
