// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Collect runs process for every item on at most workerCount goroutines and
// returns the results in item order. A slow or failing item never prevents the
// others from being processed; process is expected to honour ctx itself.
func Collect[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) R,
) []R {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results
	}
	if workerCount <= 0 || workerCount > len(items) {
		workerCount = len(items)
	}

	tasks := make(chan int)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range tasks {
				results[idx] = process(ctx, items[idx])
			}
		}()
	}

	for idx := range items {
		tasks <- idx
	}
	close(tasks)
	wg.Wait()

	return results
}
