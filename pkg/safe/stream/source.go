package stream

import (
	"context"

	"github.com/cyeganeh01248/safe-result/pkg/safe"
)

type SourceHandlers[T any] struct {
	OnStartCancel func(ctx context.Context, values []T)
	OnEmit        func(ctx context.Context, value T)
	OnBreak       func(ctx context.Context, rest []T)
}

// Source lifts values into a channel of successful Results. The channel
// closes once all values are emitted or ctx is done.
func Source[T any](ctx context.Context, values ...T) <-chan safe.Result[T] {
	return SourceWith(ctx, SourceHandlers[T]{}, values...)
}

// SourceWith is Source with emission callbacks: OnStartCancel when ctx
// is already done before the first emit, OnEmit per delivered value,
// OnBreak with the unsent remainder when ctx cancels mid-stream.
func SourceWith[T any](ctx context.Context, handlers SourceHandlers[T], values ...T) <-chan safe.Result[T] {
	in := make(chan safe.Result[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartCancel != nil {
				handlers.OnStartCancel(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- safe.Ok(v):
				if handlers.OnEmit != nil {
					handlers.OnEmit(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

// Collect drains the channel into a slice, stopping early when ctx is
// done. It works over result channels and collapsed output channels
// alike.
func Collect[T any](ctx context.Context, ch <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-ch:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// First returns the first value delivered on the channel, or defaultV
// when the channel closes first or ctx is done.
func First[T any](ctx context.Context, ch <-chan T, defaultV T) T {
	select {
	case v, ok := <-ch:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}
