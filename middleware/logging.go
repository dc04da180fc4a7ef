// Package middleware provides interceptors for the eventbrite client.
package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/broady/eventbrite"
	"github.com/google/uuid"
)

// LoggingInterceptor creates an interceptor that logs API calls using slog.
// It logs the start and end of each call, including duration and error status.
// Every call gets a fresh call_id so the two lines can be correlated.
// Parameter values are not logged.
func LoggingInterceptor(logger *slog.Logger) eventbrite.Interceptor {
	if logger == nil {
		logger = slog.Default()
	}

	return func(ctx context.Context, call *eventbrite.Call, next eventbrite.Invoker) (any, error) {
		start := time.Now()
		callID := uuid.NewString()

		logger.InfoContext(ctx, "call started",
			slog.String("call_id", callID),
			slog.String("method", string(call.Method)),
			slog.Int("params", len(call.Args)),
		)

		res, err := next(ctx, call)
		duration := time.Since(start)

		if err != nil {
			logger.ErrorContext(ctx, "call failed",
				slog.String("call_id", callID),
				slog.String("method", string(call.Method)),
				slog.Duration("duration", duration),
				slog.Any("error", err),
			)
		} else {
			logger.InfoContext(ctx, "call completed",
				slog.String("call_id", callID),
				slog.String("method", string(call.Method)),
				slog.Duration("duration", duration),
			)
		}

		return res, err
	}
}
