package chain

import (
	"context"

	"github.com/cyeganeh01248/safe-result/pkg/safe"
)

// Chain wraps a safe.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx context.Context
	res safe.Result[T]
}

// Start creates a new chain from a safe.Result
func Start[T any](ctx context.Context, res safe.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx: ctx,
		res: res,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, safe.Ok(value))
}

// Result returns the underlying safe.Result
func (c *Chain[T]) Result() safe.Result[T] {
	return c.res
}

// Unwrap returns the payload or propagates the failure to the
// enclosing boundary.
func (c *Chain[T]) Unwrap() T {
	return c.res.Unwrap()
}

// Then chains a function that returns safe.Result[U]. A failed chain
// short-circuits: onOk never runs and the original failure is carried
// through unchanged.
func Then[T, U any](c *Chain[T], onOk func(context.Context, T) safe.Result[U]) *Chain[U] {
	if c.res.IsErr() {
		return &Chain[U]{ctx: c.ctx, res: safe.ErrFrom[T, U](c.res)}
	}
	v, _ := c.res.Value()
	return &Chain[U]{ctx: c.ctx, res: onOk(c.ctx, v)}
}

// ThenTry chains a function that returns (U, error). The call runs
// behind an intercept-all boundary, so returned faults and panicking
// faults both become failures of the step.
func ThenTry[T, U any](c *Chain[T], try func(context.Context, T) (U, error)) *Chain[U] {
	if c.res.IsErr() {
		return &Chain[U]{ctx: c.ctx, res: safe.ErrFrom[T, U](c.res)}
	}
	v, _ := c.res.Value()
	return &Chain[U]{ctx: c.ctx, res: safe.Do(c.ctx, func(ctx context.Context) (U, error) {
		return try(ctx, v)
	})}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onOk func(context.Context, T) U) *Chain[U] {
	if c.res.IsErr() {
		return &Chain[U]{ctx: c.ctx, res: safe.ErrFrom[T, U](c.res)}
	}
	v, _ := c.res.Value()
	return &Chain[U]{ctx: c.ctx, res: safe.Ok(onOk(c.ctx, v))}
}

// Ensure performs a side effect on success without changing the result
func (c *Chain[T]) Ensure(onOk func(context.Context, T)) *Chain[T] {
	if v, ok := c.res.Value(); ok {
		onOk(c.ctx, v)
	}
	return c
}

// OrElse recovers a failed chain with a fallback. A successful chain
// passes through untouched.
func (c *Chain[T]) OrElse(fallback func(context.Context, error) safe.Result[T]) *Chain[T] {
	if c.res.IsOk() {
		return c
	}
	return &Chain[T]{ctx: c.ctx, res: fallback(c.ctx, c.res.Err())}
}

// Or picks this chain if it succeeded, otherwise the alternative.
func (c *Chain[T]) Or(alternative *Chain[T]) *Chain[T] {
	return c.or(alternative)
}

func (c *Chain[T]) or(chains ...*Chain[T]) *Chain[T] {
	if c.res.IsOk() {
		return c
	}
	for _, ch := range chains {
		if ch.res.IsOk() {
			return ch
		}
	}
	return c
}

// And picks the first failed chain, otherwise the required one.
func (c *Chain[T]) And(required *Chain[T]) *Chain[T] {
	return c.and(required)
}

func (c *Chain[T]) and(chains ...*Chain[T]) *Chain[T] {
	if c.res.IsErr() {
		return c
	}
	last := c
	for _, ch := range chains {
		if ch.res.IsErr() {
			return ch
		}
		last = ch
	}
	return last
}

// Finally collapses the chain into a final value using handlers
func Finally[T, U any](c *Chain[T], onOk func(context.Context, T) U, onErr func(context.Context, error) U) U {
	if v, ok := c.res.Value(); ok {
		return onOk(c.ctx, v)
	}
	return onErr(c.ctx, c.res.Err())
}
