package eventbrite

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// fakeTransport records every target it is asked for and answers with a canned response.
type fakeTransport struct {
	mu      sync.Mutex
	targets []string
	calls   []*Call
	status  int
	body    string
	err     error
	closed  bool
}

func newFakeTransport(body string) *fakeTransport {
	return &fakeTransport{status: 200, body: body}
}

func (t *fakeTransport) Get(ctx context.Context, target string) (*Response, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.targets = append(t.targets, target)
	if call, ok := CallFromContext(ctx); ok {
		t.calls = append(t.calls, call)
	}
	if t.err != nil {
		return nil, t.err
	}
	return &Response{StatusCode: t.status, Body: []byte(t.body)}, nil
}

func (t *fakeTransport) Close() error {
	t.closed = true
	return nil
}

func (t *fakeTransport) requests() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.targets)
}

// newTestClient returns a client with credentials that answers every call with body.
func newTestClient(body string) (*Client, *fakeTransport) {
	ft := newFakeTransport(body)
	return NewClient("APPKEY", "USERKEY").WithTransport(ft), ft
}

// assertCode fails the test unless err is an *Error with the given code.
func assertCode(t *testing.T, err error, want ErrorCode) *Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error with code %s, got %T: %v", want, err, err)
	}
	if e.Code != want {
		t.Fatalf("expected code %s, got %s (message: %s)", want, e.Code, e.Message)
	}
	return e
}

// expectPanicCode runs fn and fails the test unless it panics with an *Error of the given code.
func expectPanicCode(t *testing.T, want ErrorCode, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic with code %s", want)
		}
		e, ok := r.(*Error)
		if !ok {
			t.Fatalf("expected *Error panic, got %T: %v", r, r)
		}
		if e.Code != want {
			t.Fatalf("expected panic code %s, got %s", want, e.Code)
		}
	}()
	fn()
}
