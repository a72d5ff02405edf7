package common

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunParallel runs funcs concurrently and waits for all of them. The first
// error cancels ctx for the others and is returned.
func RunParallel(ctx context.Context, funcs ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fn := range funcs {
		fn := fn
		g.Go(func() error {
			return fn(gctx)
		})
	}
	return g.Wait()
}
