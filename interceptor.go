package eventbrite

import (
	"context"
)

// Call is one logical request as seen by interceptors.
type Call struct {
	Method       Method
	Args         Args
	Authenticate bool
}

// Invoker represents the next step in an interceptor chain.
// The innermost Invoker performs the round trip and decodes the response.
type Invoker func(ctx context.Context, call *Call) (any, error)

// Interceptor is a hook that wraps each API call.
//
//	func timing(ctx context.Context, call *eventbrite.Call, next eventbrite.Invoker) (any, error) {
//	    start := time.Now()
//	    res, err := next(ctx, call)
//	    log.Printf("%s took %v", call.Method, time.Since(start))
//	    return res, err
//	}
//
// Interceptors can inspect the call, short-circuit by returning without
// calling next, or inspect the decoded response. call.Args never contains
// the credentials.
type Interceptor func(ctx context.Context, call *Call, next Invoker) (any, error)

// chainInterceptors combines interceptors around final.
// The first interceptor in the slice is the outer-most one (runs first).
func chainInterceptors(interceptors []Interceptor, final Invoker) Invoker {
	chain := final
	for i := len(interceptors) - 1; i >= 0; i-- {
		current := interceptors[i]
		next := chain
		chain = func(ctx context.Context, call *Call) (any, error) {
			return current(ctx, call, next)
		}
	}
	return chain
}
