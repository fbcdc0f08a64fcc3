// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const finalFlushTimeout = 10 * time.Second

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	onError       func([]T, error)
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// Option customises a Batcher.
type Option[T any] func(*Batcher[T])

// WithRate caps the number of flushes per second.
func WithRate[T any](rps int) Option[T] {
	return func(b *Batcher[T]) {
		if rps > 0 {
			b.rl = ratelimit.New(rps)
		}
	}
}

// WithErrorHandler is called with the rejected batch whenever a flush fails.
func WithErrorHandler[T any](fn func([]T, error)) Option[T] {
	return func(b *Batcher[T]) {
		b.onError = fn
	}
}

// New constructs a Batcher. Flushes are unlimited unless WithRate is given.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, flushSize int, flushInterval time.Duration, opts ...Option[T]) *Batcher[T] {
	if flushSize <= 0 {
		flushSize = 1
	}
	b := &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            ratelimit.NewUnlimited(),
		stop:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and stops the background loop. It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return context.Canceled
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		batch := slices.Clone(buf)
		buf = buf[:0]
		if err := b.flushCallback(ctx, batch); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
			if b.onError != nil {
				b.onError(batch, err)
			}
			return
		}
		b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
	}

	finalFlush := func() {
	drain:
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
			default:
				break drain
			}
		}
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), finalFlushTimeout)
		defer cancel()
		flush(flushCtx)
	}

	for {
		select {
		case <-ctx.Done():
			finalFlush()
			return

		case <-b.stop:
			finalFlush()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
