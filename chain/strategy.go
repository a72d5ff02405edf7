package chain

import (
	"context"

	"go.uber.org/zap"
)

// attempt is one way of obtaining an optional fact.
type attempt[T any] struct {
	name string
	run  func(ctx context.Context) (T, error)
}

// firstOf runs attempts in order and returns the first success, or fallback
// when every attempt fails. Failures are logged, never returned.
func firstOf[T any](ctx context.Context, logger *zap.Logger, fact string, fallback T, attempts ...attempt[T]) T {
	for _, a := range attempts {
		value, err := a.run(ctx)
		if err == nil {
			return value
		}
		logger.Debug("optional lookup failed",
			zap.String("fact", fact),
			zap.String("attempt", a.name),
			zap.Error(err),
		)
	}
	return fallback
}
