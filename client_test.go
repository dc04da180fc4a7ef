package eventbrite

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/url"
	"reflect"
	"strings"
	"testing"
)

func TestExecute_QueryEncoding(t *testing.T) {
	client, ft := newTestClient(`{"event":{"id":5}}`)

	_, err := client.Execute(context.Background(), MethodEventGet, Args{"id": "5", "title": "My Event"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "https://www.eventbrite.com/json/event_get?id=5&title=My+Event"
	if len(ft.targets) != 1 || ft.targets[0] != want {
		t.Fatalf("expected target %q, got %v", want, ft.targets)
	}

	u, err := url.Parse(ft.targets[0])
	if err != nil {
		t.Fatalf("target does not parse: %v", err)
	}
	got := u.Query()
	if got.Get("id") != "5" || got.Get("title") != "My Event" || len(got) != 2 {
		t.Errorf("query did not round-trip: %v", got)
	}
}

func TestExecute_ReservedCharacters(t *testing.T) {
	client, ft := newTestClient(`{}`)

	args := Args{"description": "a&b=c d/é+"}
	if _, err := client.Execute(context.Background(), MethodEventNew, args, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := url.Parse(ft.targets[0])
	if err != nil {
		t.Fatalf("target does not parse: %v", err)
	}
	if got := u.Query().Get("description"); got != "a&b=c d/é+" {
		t.Errorf("expected value to survive encoding, got %q", got)
	}
}

func TestExecute_InjectsCredentials(t *testing.T) {
	client, ft := newTestClient(`{}`)

	args := Args{"id": "5"}
	if _, err := client.Execute(context.Background(), MethodEventGet, args, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "https://www.eventbrite.com/json/event_get?app_key=APPKEY&id=5&user_key=USERKEY"
	if ft.targets[0] != want {
		t.Errorf("expected target %q, got %q", want, ft.targets[0])
	}
	if !reflect.DeepEqual(args, Args{"id": "5"}) {
		t.Errorf("caller args were modified: %v", args)
	}
}

func TestExecute_CredentialsOverrideArgs(t *testing.T) {
	client, ft := newTestClient(`{}`)

	args := Args{"app_key": "forged", "id": "5"}
	if _, err := client.Execute(context.Background(), MethodEventGet, args, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, _ := url.Parse(ft.targets[0])
	if got := u.Query()["app_key"]; !reflect.DeepEqual(got, []string{"APPKEY"}) {
		t.Errorf("expected client app key only, got %v", got)
	}
	if args["app_key"] != "forged" {
		t.Error("caller args were modified")
	}
}

func TestExecute_UnauthenticatedOmitsCredentials(t *testing.T) {
	client, ft := newTestClient(`{}`)

	if _, err := client.Execute(context.Background(), MethodEventSearch, Args{"keywords": "go"}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(ft.targets[0], "app_key") || strings.Contains(ft.targets[0], "user_key") {
		t.Errorf("expected no credentials, got %q", ft.targets[0])
	}
}

func TestExecute_MissingCredentialsPanics(t *testing.T) {
	tests := []struct {
		name    string
		appKey  string
		userKey string
	}{
		{"no keys", "", ""},
		{"no user key", "APPKEY", ""},
		{"no app key", "", "USERKEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ft := newFakeTransport(`{}`)
			client := NewClient(tt.appKey, tt.userKey).WithTransport(ft)

			expectPanicCode(t, CodeUnauthenticated, func() {
				client.Execute(context.Background(), MethodEventGet, Args{"id": "5"}, true)
			})
			if ft.requests() != 0 {
				t.Errorf("expected no request to be sent, got %d", ft.requests())
			}
		})
	}
}

func TestExecute_MissingCredentialsAllowedWhenUnauthenticated(t *testing.T) {
	ft := newFakeTransport(`{}`)
	client := NewClient("", "").WithTransport(ft)

	if _, err := client.Execute(context.Background(), MethodEventGet, Args{"id": "5"}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ft.requests() != 1 {
		t.Errorf("expected one request, got %d", ft.requests())
	}
}

func TestExecute_NotImplemented(t *testing.T) {
	tests := []struct {
		name   string
		method Method
	}{
		{"unsupported", MethodUserUpdate},
		{"unknown", Method("event_delete")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Credentials are missing too; the method check comes first.
			ft := newFakeTransport(`{}`)
			client := NewClient("", "").WithTransport(ft)

			_, err := client.Execute(context.Background(), tt.method, nil, true)
			e := assertCode(t, err, CodeNotImplemented)
			if e.Details["method"] != string(tt.method) {
				t.Errorf("expected method detail, got %v", e.Details)
			}
			if ft.requests() != 0 {
				t.Errorf("expected no request, got %d", ft.requests())
			}
		})
	}
}

func TestExecute_ReturnsDecodedResponse(t *testing.T) {
	client, _ := newTestClient(`{"error":{"error_type":"Not Found","error_message":"No records were found"}}`)

	result, err := client.Execute(context.Background(), MethodEventGet, Args{"id": "5"}, true)
	if err != nil {
		t.Fatalf("API errors are data, got error %v", err)
	}
	want := map[string]any{
		"error": map[string]any{
			"error_type":    "Not Found",
			"error_message": "No records were found",
		},
	}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("expected %v, got %v", want, result)
	}
}

func TestExecute_TransportErrorPassesThrough(t *testing.T) {
	client, ft := newTestClient(`{}`)
	errDial := errors.New("dial tcp: connection refused")
	ft.err = errDial

	_, err := client.Execute(context.Background(), MethodEventGet, Args{"id": "5"}, true)
	if err != errDial {
		t.Errorf("expected transport error unchanged, got %v", err)
	}
	if CodeOf(err) != "" {
		t.Errorf("transport error must not carry a client code, got %s", CodeOf(err))
	}
}

func TestExecute_DecodeErrorPassesThrough(t *testing.T) {
	client, _ := newTestClient(`<html>Service Unavailable</html>`)

	result, err := client.Execute(context.Background(), MethodEventGet, Args{"id": "5"}, true)
	if err == nil {
		t.Fatalf("expected decode error, got result %v", result)
	}
	var e *Error
	if errors.As(err, &e) {
		t.Errorf("decode error must not be wrapped as *Error, got %v", e)
	}
}

type fixedCodec struct{ calls int }

func (c *fixedCodec) Unmarshal(data []byte) (any, error) {
	c.calls++
	return string(data), nil
}

func (c *fixedCodec) Marshal(v any) ([]byte, error) {
	return []byte(v.(string)), nil
}

func TestExecute_CustomCodec(t *testing.T) {
	client, _ := newTestClient(`raw body`)
	codec := &fixedCodec{}
	client.WithCodec(codec)

	result, err := client.Execute(context.Background(), MethodEventGet, Args{"id": "5"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "raw body" || codec.calls != 1 {
		t.Errorf("expected custom codec result, got %v (%d calls)", result, codec.calls)
	}
}

func TestExecute_WithHost(t *testing.T) {
	client, ft := newTestClient(`{}`)
	client.WithHost("localhost:8443")

	if _, err := client.Execute(context.Background(), MethodUserListTickets, nil, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "https://localhost:8443/json/user_list_tickets?"; ft.targets[0] != want {
		t.Errorf("expected %q, got %q", want, ft.targets[0])
	}
}

func TestExecute_DebugLogsAreRedacted(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	client, _ := newTestClient(`{"user":{"user_id":1}}`)
	client.WithLogger(logger)

	args := Args{"user": "someone@example.com", "password": "hunter2"}
	if _, err := client.Execute(context.Background(), MethodUserListVenues, args, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, secret := range []string{"APPKEY", "USERKEY", "hunter2"} {
		if strings.Contains(out, secret) {
			t.Errorf("log output leaks %q: %s", secret, out)
		}
	}
	for _, want := range []string{"msg=REQ", "msg=RES", "REDACTED", "user_list_venues", "status=200"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log output to contain %q: %s", want, out)
		}
	}
}

func TestExecute_NoDebugLogsAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	client, _ := newTestClient(`{}`)
	client.WithLogger(logger)

	if _, err := client.Execute(context.Background(), MethodEventGet, Args{"id": "5"}, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %s", buf.String())
	}
}

func TestRedact(t *testing.T) {
	params := url.Values{"app_key": {"a"}, "passwd": {"p"}, "id": {"5"}}
	out := redact(params)

	if out.Get("app_key") != "REDACTED" || out.Get("passwd") != "REDACTED" || out.Get("id") != "5" {
		t.Errorf("unexpected redaction: %v", out)
	}
	if out.Has("user_key") {
		t.Error("redact added a parameter that was not present")
	}
	if params.Get("app_key") != "a" {
		t.Error("redact modified its input")
	}
}

func TestRedactTarget(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"credentials and password",
			"https://www.eventbrite.com/json/user_new?app_key=A&email=a%40b.com&passwd=p&user_key=U",
			"https://www.eventbrite.com/json/user_new?app_key=REDACTED&email=a%40b.com&passwd=REDACTED&user_key=REDACTED",
		},
		{"no query", "https://www.eventbrite.com/json/user_list_tickets", "https://www.eventbrite.com/json/user_list_tickets"},
		{"unparseable", "://bad?app_key=A", "://bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := redactTarget(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestClient_Close(t *testing.T) {
	client, ft := newTestClient(`{}`)
	if err := client.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ft.closed {
		t.Error("expected transport to be closed")
	}

	// A transport without Close is fine.
	client.WithTransport(noCloseTransport{})
	if err := client.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

type noCloseTransport struct{}

func (noCloseTransport) Get(ctx context.Context, target string) (*Response, error) {
	return &Response{StatusCode: 200, Body: []byte(`{}`)}, nil
}

func TestCall_RunsProcessThenRules(t *testing.T) {
	client, ft := newTestClient(`{}`)
	ctx := context.Background()

	_, err := client.call(ctx, MethodDiscountNew, []Field{
		{Name: "event_id", Wire: "event_id", Type: Integer, Required: true},
		{Name: "amount_off", Wire: "amount_off", Type: Float, Value: 1.5},
		{Name: "percent_off", Wire: "percent_off", Type: Float, Value: 10.0},
	}, discountAmount)
	assertCode(t, err, CodeMissingRequiredValue)

	_, err = client.call(ctx, MethodDiscountNew, []Field{
		{Name: "event_id", Wire: "event_id", Type: Integer, Value: 1, Required: true},
		{Name: "amount_off", Wire: "amount_off", Type: Float, Value: 1.5},
		{Name: "percent_off", Wire: "percent_off", Type: Float, Value: 10.0},
	}, discountAmount)
	assertCode(t, err, CodeExclusiveGroupViolation)

	if ft.requests() != 0 {
		t.Errorf("expected no request on validation failure, got %d", ft.requests())
	}
}
