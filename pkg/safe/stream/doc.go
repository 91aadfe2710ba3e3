// Package stream lifts safe.Result over channels for concurrent
// fan-out pipelines with explicit cancellation routing.
//
// A pipeline is built from a source, a number of engine stages run by
// workers, and a collapsing stage:
//
//	in := stream.Source(ctx, urls...)
//	fetched := stream.Run(ctx, in, stream.Try(fetch), 4)
//	lines := stream.Finally(ctx, fetched, handlers)
//
// Common usage:
// - Source/SourceWith: lift values into a result channel
// - Then/Map/Try/Guard/GuardAll/Tee/Pipe: build engine stages
// - Run/RunWith: fan an input channel out over worker goroutines
// - Finally/FinallyWith: collapse results to plain values via handlers
// - Collect/First/CollectErrs: terminal helpers
//
// Cancellation never fabricates failure items: when ctx is done the
// loops stop and stranded items are routed to CancelHandlers (see
// DrainToSink) or dropped, subject to the WithDrainOnCancel option.
package stream
