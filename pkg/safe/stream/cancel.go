package stream

import (
	"context"

	"github.com/cyeganeh01248/safe-result/pkg/safe"
)

// DrainToSink builds CancelHandlers that hand items stranded by
// cancellation to sink instead of fabricating failure items. Leftover
// inputs are drained only while the DrainOnCancel option allows it.
// With several workers the sink runs concurrently and must tolerate
// that. Results already processed when cancellation hit are forwarded
// downstream on a best-effort basis and dropped when no consumer
// remains.
func DrainToSink[In, Out any](sink func(ctx context.Context, leftover safe.Result[In])) CancelHandlers[In, Out] {
	return CancelHandlers[In, Out]{
		OnCancel: func(ctx context.Context, in <-chan safe.Result[In], out chan<- safe.Result[Out]) {
			if sink == nil || !DrainOnCancel(ctx, true) {
				return
			}
			for item := range in {
				sink(ctx, item)
			}
		},
		OnCancelUnprocessed: func(ctx context.Context, unprocessed safe.Result[In], out chan<- safe.Result[Out]) {
			if sink == nil || !DrainOnCancel(ctx, true) {
				return
			}
			sink(ctx, unprocessed)
		},
		OnCancelProcessed: func(ctx context.Context, in safe.Result[In], processed safe.Result[Out], out chan<- safe.Result[Out]) {
			select {
			case out <- processed:
			default:
			}
		},
	}
}
