package stream

import (
	"context"
	"sync"

	"github.com/cyeganeh01248/safe-result/pkg/safe"
)

// CancelHandlers route items stranded by cancellation. The loop never
// turns cancellation into failure items on its own; whatever is not
// routed here is dropped.
type CancelHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, in <-chan safe.Result[In], out chan<- safe.Result[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed safe.Result[In], out chan<- safe.Result[Out])
	OnCancelProcessed   func(ctx context.Context, in safe.Result[In], processed safe.Result[Out], out chan<- safe.Result[Out])
}

// Run fans the input channel out over workers goroutines, each applying
// the engine, and closes the output once the input drains. A workers
// value of zero or less falls back to the context worker option.
func Run[In, Out any](ctx context.Context, in <-chan safe.Result[In],
	engine Engine[In, Out], workers int) <-chan safe.Result[Out] {
	return RunWith(ctx, in, engine, CancelHandlers[In, Out]{}, nil, workers)
}

// RunWith is Run with explicit cancellation routing and an optional
// per-delivery callback.
func RunWith[In, Out any](ctx context.Context, in <-chan safe.Result[In],
	engine Engine[In, Out], handlers CancelHandlers[In, Out],
	onOut func(ctx context.Context, out safe.Result[Out]), workers int) <-chan safe.Result[Out] {

	if workers <= 0 {
		workers = Workers(ctx, 1)
	}

	out := make(chan safe.Result[Out])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go work(ctx, in, out, engine, handlers, onOut, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func work[In, Out any](ctx context.Context, in <-chan safe.Result[In], out chan<- safe.Result[Out],
	engine Engine[In, Out], handlers CancelHandlers[In, Out],
	onOut func(ctx context.Context, out safe.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, in, out)
			}
			return
		case item, ok := <-in:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, item, out)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, in, out)
				}
				return
			}

			processed := engine(ctx, item)

			select {
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, item, processed, out)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, in, out)
				}
				return
			case out <- processed:
				if onOut != nil {
					onOut(ctx, processed)
				}
			}
		}
	}
}
