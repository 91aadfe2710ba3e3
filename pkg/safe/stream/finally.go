package stream

import (
	"context"
	"errors"

	"github.com/cyeganeh01248/safe-result/pkg/safe"
)

// FinallyHandlers collapse each Result into a plain value. Both
// handlers must be set.
type FinallyHandlers[In, Out any] struct {
	OnOk  func(ctx context.Context, v In) Out
	OnErr func(ctx context.Context, err error) Out
}

// Finally collapses a result channel into a channel of plain values.
func Finally[In, Out any](ctx context.Context, in <-chan safe.Result[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {
	return FinallyWith(ctx, in, handlers, nil)
}

// FinallyWith is Finally with a leftover sink: when ctx cancels before
// the input drains, undelivered results go to onBreak, subject to the
// DrainOnCancel option.
func FinallyWith[In, Out any](ctx context.Context, in <-chan safe.Result[In],
	handlers FinallyHandlers[In, Out],
	onBreak func(ctx context.Context, leftover safe.Result[In])) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				drainLeftovers(ctx, in, onBreak)
				return
			case item, ok := <-in:
				if !ok {
					return
				}

				if ctx.Err() != nil {
					if onBreak != nil && DrainOnCancel(ctx, true) {
						onBreak(ctx, item)
					}
					drainLeftovers(ctx, in, onBreak)
					return
				}

				collapsed := collapse(ctx, item, handlers)

				select {
				case <-ctx.Done():
					if onBreak != nil && DrainOnCancel(ctx, true) {
						onBreak(ctx, item)
					}
					drainLeftovers(ctx, in, onBreak)
					return
				case out <- collapsed:
				}
			}
		}
	}()

	return out
}

func collapse[In, Out any](ctx context.Context, item safe.Result[In],
	handlers FinallyHandlers[In, Out]) Out {

	if v, ok := item.Value(); ok {
		return handlers.OnOk(ctx, v)
	}
	return handlers.OnErr(ctx, item.Err())
}

func drainLeftovers[In any](ctx context.Context, in <-chan safe.Result[In],
	onBreak func(ctx context.Context, leftover safe.Result[In])) {

	if onBreak == nil || !DrainOnCancel(ctx, true) {
		return
	}
	for item := range in {
		onBreak(ctx, item)
	}
}

// CollectErrs drains the channel and joins the faults of every failure
// seen, flattening joined faults along the way. It returns nil when
// everything succeeded.
func CollectErrs[T any](ctx context.Context, in <-chan safe.Result[T]) error {
	var faults []error
	for {
		select {
		case item, ok := <-in:
			if !ok {
				return errors.Join(faults...)
			}
			if item.IsErr() {
				faults = append(faults, safe.Errors(item.Err())...)
			}
		case <-ctx.Done():
			return errors.Join(faults...)
		}
	}
}
