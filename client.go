package eventbrite

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

const (
	// DefaultHost is the API host used unless WithHost is called.
	DefaultHost = "www.eventbrite.com"

	apiTemplate = "https://%s/json/%s?%s"
)

var schemaEncoder = schema.NewEncoder()

// sensitiveParams are replaced before a request target is logged.
var sensitiveParams = []string{"app_key", "user_key", "password", "passwd"}

// Credentials identify the application and the user on authenticated calls.
type Credentials struct {
	AppKey  string `schema:"app_key"`
	UserKey string `schema:"user_key"`
}

func (c Credentials) complete() bool {
	return c.AppKey != "" && c.UserKey != ""
}

// Client calls the Eventbrite JSON API.
//
// Configure a Client with the With* methods before its first call. After
// that it is read-only and may be shared; the default transport is safe
// for concurrent use. A custom Transport decides its own concurrency rules.
type Client struct {
	host         string
	creds        Credentials
	transport    Transport
	codec        Codec
	logger       *slog.Logger
	interceptors []Interceptor
}

// NewClient returns a client holding the given keys.
// Either key may be empty, but every authenticated call then panics.
func NewClient(appKey, userKey string) *Client {
	return &Client{
		host:      DefaultHost,
		creds:     Credentials{AppKey: appKey, UserKey: userKey},
		transport: NewHTTPTransport(nil),
		codec:     JSONCodec{},
	}
}

// WithHost overrides the API host (host[:port], no scheme).
func (c *Client) WithHost(host string) *Client {
	c.host = host
	return c
}

// WithTransport replaces the transport used for round trips.
func (c *Client) WithTransport(t Transport) *Client {
	c.transport = t
	return c
}

// WithHTTPClient uses hc through the default HTTP transport.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.transport = NewHTTPTransport(hc).WithLogger(c.logger)
	return c
}

// WithCodec replaces the response decoder.
func (c *Client) WithCodec(codec Codec) *Client {
	c.codec = codec
	return c
}

// WithLogger sets a custom logger for the client.
// If not set, slog.Default() will be used.
func (c *Client) WithLogger(logger *slog.Logger) *Client {
	c.logger = logger
	if t, ok := c.transport.(*HTTPTransport); ok {
		t.WithLogger(logger)
	}
	return c
}

// WithInterceptor adds an interceptor around every call.
// Interceptors run in the order they were added; the first is outermost.
func (c *Client) WithInterceptor(i Interceptor) *Client {
	c.interceptors = append(c.interceptors, i)
	return c
}

// Close releases the transport's resources if it holds any.
func (c *Client) Close() error {
	if closer, ok := c.transport.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (c *Client) log() *slog.Logger {
	if c.logger == nil {
		return slog.Default()
	}
	return c.logger
}

// Execute sends one API call and returns the decoded response unchanged.
//
// args is not modified. When authenticate is set, the client credentials are
// added to the request; calling Execute with authenticate set on a client
// lacking either key is a programming error and panics with an *Error coded
// CodeUnauthenticated before anything is sent. Unknown and unsupported
// methods fail with CodeNotImplemented. Transport and decoding errors are
// returned as they are.
func (c *Client) Execute(ctx context.Context, method Method, args Args, authenticate bool) (any, error) {
	info, ok := catalog[method]
	if !ok {
		return nil, Errorf(CodeNotImplemented, "unknown method %q", method).
			WithDetail("method", string(method))
	}
	if !info.Supported() {
		return nil, Errorf(CodeNotImplemented, "%s is not supported: %s", method, info.Unsupported).
			WithDetail("method", string(method))
	}
	if authenticate {
		c.requireCredentials(method)
	}

	call := &Call{
		Method:       method,
		Args:         args.Clone(),
		Authenticate: authenticate,
	}
	invoke := chainInterceptors(c.interceptors, c.roundTrip)
	return invoke(newContext(ctx, call), call)
}

func (c *Client) requireCredentials(method Method) {
	if !c.creds.complete() {
		panic(Errorf(CodeUnauthenticated, "%s: authenticated call requires both app key and user key", method))
	}
}

// roundTrip is the innermost Invoker.
func (c *Client) roundTrip(ctx context.Context, call *Call) (any, error) {
	params, err := c.params(call)
	if err != nil {
		return nil, err
	}
	target := c.target(call.Method, params)

	logger := c.log()
	logger.DebugContext(ctx, "REQ", slog.String("url", c.target(call.Method, redact(params))))

	resp, err := c.transport.Get(ctx, target)
	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "RES",
		slog.Int("status", resp.StatusCode),
		slog.String("body", string(resp.Body)))

	return c.codec.Unmarshal(resp.Body)
}

// params returns the query parameters for call, credentials included when required.
func (c *Client) params(call *Call) (url.Values, error) {
	params := call.Args.Values()
	if !call.Authenticate {
		return params, nil
	}
	c.requireCredentials(call.Method)
	params.Del("app_key")
	params.Del("user_key")
	if err := schemaEncoder.Encode(c.creds, params); err != nil {
		return nil, fmt.Errorf("encode credentials: %w", err)
	}
	return params, nil
}

func (c *Client) target(method Method, params url.Values) string {
	return fmt.Sprintf(apiTemplate, c.host, url.PathEscape(string(method)), params.Encode())
}

// redactTarget redacts the query of a full target URL. Unparseable input
// loses its whole query.
func redactTarget(target string) string {
	u, err := url.Parse(target)
	if err != nil {
		base, _, _ := strings.Cut(target, "?")
		return base
	}
	u.RawQuery = redact(u.Query()).Encode()
	return u.String()
}

func redact(params url.Values) url.Values {
	out := make(url.Values, len(params))
	for k, v := range params {
		out[k] = v
	}
	for _, k := range sensitiveParams {
		if out.Has(k) {
			out.Set(k, "REDACTED")
		}
	}
	return out
}

// call is the shared path of every business method: process the field
// table, check the cross-field rules, then execute.
func (c *Client) call(ctx context.Context, method Method, fields []Field, rules ...Rule) (any, error) {
	args, err := Process(fields)
	if err != nil {
		return nil, err
	}
	if err := Validate(args, rules...); err != nil {
		return nil, err
	}
	return c.Execute(ctx, method, args, method.Authenticated())
}
