package stream

import "context"

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
	DrainOptionKey  OptionKey = "drain_options"
)

type WorkerOptions struct {
	MaxCount int
}

type DrainOptions struct {
	DrainOnCancel bool
}

// WithWorkers carries a worker count override on the context. Run picks
// it up when no explicit worker count is given.
func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxCount: maxWorkers})
}

func Workers(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount > 0 {
		return options.MaxCount
	}
	return defaultMaxWorkers
}

// WithDrainOnCancel controls whether cancel handlers hand leftover items
// to their sinks after cancellation.
func WithDrainOnCancel(ctx context.Context, drain bool) context.Context {
	return context.WithValue(ctx, DrainOptionKey, DrainOptions{DrainOnCancel: drain})
}

func DrainOnCancel(ctx context.Context, defaultDrain bool) bool {
	options, ok := ctx.Value(DrainOptionKey).(DrainOptions)
	if ok {
		return options.DrainOnCancel
	}
	return defaultDrain
}
