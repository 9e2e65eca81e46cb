// Package concurrency provides a bounded worker pool for fanning out
// independent items, used for multi-model comparison and per-slide
// enhancement calls.
package concurrency

import (
	"context"
	"sync"
)

// Options configures parallel processing.
type Options struct {
	// MaxWorkers caps the number of concurrent workers.
	MaxWorkers int
}

// DefaultOptions returns the default pool sizing.
func DefaultOptions() Options {
	return Options{MaxWorkers: 4}
}

type indexed[R any] struct {
	index  int
	result R
	err    error
}

// ProcessParallel runs itemFunc over every item with bounded
// concurrency. Results are returned in input order; errs[i] holds the
// error for items[i] or nil. Workers stop picking up new items once the
// context is cancelled, but items already started run to completion.
func ProcessParallel[T any, R any](
	ctx context.Context,
	items []T,
	opts Options,
	itemFunc func(ctx context.Context, index int, item T) (R, error),
) ([]R, []error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = DefaultOptions().MaxWorkers
	}
	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	jobs := make(chan int, len(items))
	out := make(chan indexed[R], len(items))

	var wg sync.WaitGroup
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					out <- indexed[R]{index: i, err: ctx.Err()}
				default:
					r, err := itemFunc(ctx, i, items[i])
					out <- indexed[R]{index: i, result: r, err: err}
				}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(out)
	}()

	results := make([]R, len(items))
	errs := make([]error, len(items))
	for res := range out {
		results[res.index] = res.result
		errs[res.index] = res.err
	}
	return results, errs
}

// ForEach runs itemFunc over every item with bounded concurrency,
// discarding results. Returned errors are positional like ProcessParallel.
func ForEach[T any](
	ctx context.Context,
	items []T,
	opts Options,
	itemFunc func(ctx context.Context, index int, item T) error,
) []error {
	_, errs := ProcessParallel(ctx, items, opts, func(ctx context.Context, i int, item T) (struct{}, error) {
		return struct{}{}, itemFunc(ctx, i, item)
	})
	return errs
}
