package canvas

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-raytracer-primitives/pkg/core"
)

// RowFunc fills a single row. y is the row index and row is the mutable
// view returned by Canvas.Row.
type RowFunc func(y int, row []core.Color) error

// FillRows calls fn once per row using up to workers goroutines
// (workers <= 0 uses runtime.NumCPU). Rows are disjoint slices of the
// buffer, so workers never share memory and no locking is needed.
// The first error returned by fn, or ctx's error, stops scheduling
// further rows and is returned.
func (c *Canvas) FillRows(ctx context.Context, workers int, fn RowFunc) error {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for y := 0; y < c.height; y++ {
		if gctx.Err() != nil {
			break
		}
		y := y
		row := c.Row(y)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(y, row)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
