package grid

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Strips splits the columns of b into at most workers contiguous,
// ascending strips of near-equal width. It returns nil when b has no
// cells. workers < 1 is treated as 1.
// Complexity: O(workers).
func Strips(b Bounds, workers int) []Strip {
	w := b.Width()
	if w == 0 || b.Height() == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > w {
		workers = w
	}
	strips := make([]Strip, workers)
	base, rem := w/workers, w%workers
	x := 0
	for i := range strips {
		n := base
		if i < rem {
			n++
		}
		strips[i] = Strip{X0: x, X1: x + n}
		x += n
	}

	return strips
}

// Sweep calls fn once per strip. A single strip runs on the calling
// goroutine; several run concurrently under an errgroup whose context is
// handed to fn, so the first error cancels the others.
//
// fn receives the strip's position in strips; callers accumulate into a
// per-strip buffer at that position and merge in order once Sweep
// returns, which reproduces the sequential column-major order.
//
// Returns the first error from fn, or ctx.Err() if ctx is already done.
func Sweep(ctx context.Context, strips []Strip, fn func(ctx context.Context, i int, s Strip) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(strips) == 1 {
		return fn(ctx, 0, strips[0])
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range strips {
		i, s := i, s
		g.Go(func() error {
			return fn(gctx, i, s)
		})
	}

	return g.Wait()
}
