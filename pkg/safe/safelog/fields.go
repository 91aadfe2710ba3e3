package safelog

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/cyeganeh01248/safe-result/pkg/safe"
)

func Time[S ~string](s S, t time.Time) Field {
	return zap.Time(string(s), t)
}

func Duration[S ~string](s S, t time.Duration) Field {
	return zap.Duration(string(s), t)
}

func Any[S ~string](s S, v any) Field {
	return zap.Any(string(s), v)
}

func Bool[S ~string](s S, v bool) Field {
	return zap.Bool(string(s), v)
}

func Int[S ~string, T constraints.Signed](s S, v T) Field {
	return zap.Int64(string(s), int64(v))
}

func Uint[S ~string, T constraints.Unsigned](s S, v T) Field {
	return zap.Uint64(string(s), uint64(v))
}

func Float[S ~string, T constraints.Float](s S, v T) Field {
	return zap.Float64(string(s), float64(v))
}

func Error(err error) Field {
	return zap.Error(err)
}

func String[U, V ~string](s U, v V) Field {
	return zap.String(string(s), string(v))
}

// Fields renders a result for structured logging: the ok flag, capture
// id and creation time, then the payload for successes or the fault and
// trace for failures.
func Fields[T any](r safe.Result[T]) []Field {
	fields := []Field{
		Bool("ok", r.IsOk()),
		zap.Stringer("result_id", r.Id()),
		Time("created_at", r.CreatedAt()),
	}

	if v, ok := r.Value(); ok {
		return append(fields, Any("value", v))
	}

	return append(fields,
		Error(r.Err()),
		zap.Stringer("trace", r.Trace()),
	)
}

// Report logs the result through the context logger: successes at Info,
// failures at Error.
func Report[T any](ctx context.Context, msg string, r safe.Result[T]) {
	l := FromContext(ctx)
	if r.IsOk() {
		l.Info(msg, Fields(r)...)
		return
	}
	l.Error(msg, Fields(r)...)
}
