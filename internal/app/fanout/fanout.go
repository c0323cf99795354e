// Package fanout provides a bounded-concurrency fan-out helper for running
// the same operation over a slice of items, such as converting every entry
// of a batch request.
//
// Run starts a fixed pool of workers that consume items from the input
// slice and write each outcome to the matching index of the result slice,
// so callers can correlate inputs and outputs positionally. A failure on
// one item never affects the others.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item. Exactly one of
// Value or Err is meaningful: when Err is non-nil, Value is the zero value.
type Result[R any] struct {
	Value R
	Err   error
}

// Run applies fn to every item using at most maxWorkers concurrent workers
// and returns one Result per item, in input order.
//
// Items that have not been picked up when ctx is canceled are recorded as
// Result{Err: ctx.Err()} without fn ever being called for them. Items
// already being processed run to completion; fn receives ctx and may honor
// the cancellation itself. Run always blocks until every item has been
// accounted for.
//
// maxWorkers must be >= 1; values above len(items) are clamped. An empty
// items slice returns an empty, non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	// Workers pull indexes from a shared channel. Each index is owned by
	// exactly one worker, so writes to results need no synchronization.
	indexes := make(chan int)

	var wg sync.WaitGroup
	wg.Add(maxWorkers)
	for range maxWorkers {
		go func() {
			defer wg.Done()
			for i := range indexes {
				if err := ctx.Err(); err != nil {
					results[i] = Result[R]{Err: err}
					continue
				}
				value, err := fn(ctx, items[i])
				results[i] = Result[R]{Value: value, Err: err}
			}
		}()
	}

	for i := range items {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}
