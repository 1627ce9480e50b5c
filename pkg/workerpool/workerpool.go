// Package workerpool runs bounded concurrent work over slices.
package workerpool

import (
	"context"
	"sync"
	"sync/atomic"
)

// Process runs process for every item on at most workerCount goroutines.
// The first error cancels the remaining work, invokes onCancel and is returned.
// Once every item is processed, a later cancellation of ctx is not an error.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workerCount = clamp(workerCount, len(items))
	tasks := make(chan T, workerCount)
	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
		done     atomic.Int64
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			if onCancel != nil {
				onCancel()
			}
			cancel()
		})
	}

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, item); err != nil {
						fail(err)
						return
					}
					done.Add(1)
				}
			}
		}()
	}

feed:
	for _, item := range items {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- item:
		}
	}
	close(tasks)
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	if done.Load() == int64(len(items)) {
		return nil
	}
	return ctx.Err()
}

// Map is Process that collects one result per item, in input order.
func Map[T, R any](ctx context.Context, workerCount int, items []T, process func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	indexes := make([]int, len(items))
	for i := range indexes {
		indexes[i] = i
	}

	err := Process(ctx, workerCount, indexes, func(ctx context.Context, i int) error {
		r, err := process(ctx, items[i])
		if err != nil {
			return err
		}
		results[i] = r
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return results, nil
}

func clamp(workerCount, items int) int {
	if workerCount > items {
		workerCount = items
	}
	if workerCount < 1 {
		workerCount = 1
	}
	return workerCount
}
