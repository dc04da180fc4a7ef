package eventbrite

import (
	"context"
	"testing"
)

func TestCallFromContext(t *testing.T) {
	t.Run("with call in context", func(t *testing.T) {
		call := &Call{Method: MethodUserGet, Args: Args{"user_id": "1"}}
		ctx := newContext(context.Background(), call)

		result, ok := CallFromContext(ctx)
		if !ok {
			t.Fatal("expected call to be found")
		}
		if result != call {
			t.Error("expected the same call to be returned from context")
		}
	})

	t.Run("without call in context", func(t *testing.T) {
		result, ok := CallFromContext(context.Background())
		if ok || result != nil {
			t.Error("expected nothing when call not in context")
		}
	})
}
