package eventbrite

import "context"

type contextKey struct {
	name string
}

var callKey = &contextKey{"call"}

// CallFromContext returns the call in flight, if ctx was derived from one.
func CallFromContext(ctx context.Context) (*Call, bool) {
	call, ok := ctx.Value(callKey).(*Call)
	return call, ok
}

func newContext(ctx context.Context, call *Call) context.Context {
	return context.WithValue(ctx, callKey, call)
}
