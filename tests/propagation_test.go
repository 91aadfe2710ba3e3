package tests

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cyeganeh01248/safe-result/pkg/safe"
	"github.com/cyeganeh01248/safe-result/pkg/safe/stream"
)

var errDivideByZero = errors.New("divide by zero")

// TestExpressionPipelineDirectly runs division expressions through the
// full concurrent pipeline and checks the collapsed outcomes.
func TestExpressionPipelineDirectly(t *testing.T) {
	exprs := []string{
		// well-formed divisions
		"10/2",
		"9/3",
		"100/4",
		"1/8",

		// division by zero, caught per item
		"5/0",
		"42/0",

		// malformed expressions
		"nonsense",
		"7//2",
	}

	results := processExpressions(exprs)

	fmt.Println("Test Results:")
	for i, res := range results {
		fmt.Printf("%d. %s\n", i+1, res)
	}

	quotients := 0
	zeroDivisions := 0
	invalid := 0
	for _, res := range results {
		switch {
		case strings.HasPrefix(res, "quotient:"):
			quotients++
		case res == "division by zero":
			zeroDivisions++
		default:
			invalid++
		}
	}

	assert.Equal(t, len(exprs), len(results))
	assert.Equal(t, 4, quotients)
	assert.Equal(t, 2, zeroDivisions)
	assert.Equal(t, 2, invalid)
}

// TestTwoStepComputePropagation checks that a failure from either step
// carries one capture to the outer boundary and that the two failure
// sites stay distinguishable by trace.
func TestTwoStepComputePropagation(t *testing.T) {
	ctx := context.Background()

	ok := compute(ctx, 10, 5, 2)
	v, valid := ok.Value()
	assert.True(t, valid)
	assert.Equal(t, 1.0, v)

	firstStep := compute(ctx, 10, 0, 2)
	secondStep := compute(ctx, 10, 5, 0)

	assert.ErrorIs(t, firstStep.Err(), errDivideByZero)
	assert.ErrorIs(t, secondStep.Err(), errDivideByZero)
	assert.NotEqual(t, firstStep.Trace().String(), secondStep.Trace().String())

	// rendering the same failure twice is byte-identical
	assert.Equal(t, firstStep.Describe(), firstStep.Describe())
}

func processExpressions(exprs []string) []string {
	ctx := context.Background()

	finallyHandlers := stream.FinallyHandlers[float64, string]{
		OnOk: func(ctx context.Context, v float64) string {
			return fmt.Sprintf("quotient: %g", v)
		},
		OnErr: func(ctx context.Context, err error) string {
			if errors.Is(err, errDivideByZero) {
				return "division by zero"
			}
			return "invalid"
		},
	}

	return stream.Collect(ctx,
		stream.Finally(ctx,
			stream.Run(ctx,
				stream.Source(ctx, exprs...),
				stream.Pipe(
					stream.Try(parseExpression),
					stream.Try(evaluate),
				),
				2),
			finallyHandlers,
		),
	)
}

type division struct {
	a, b float64
}

func parseExpression(_ context.Context, expr string) (division, error) {
	parts := strings.Split(expr, "/")
	if len(parts) != 2 {
		return division{}, fmt.Errorf("malformed expression %q", expr)
	}

	a, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return division{}, err
	}
	b, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return division{}, err
	}
	return division{a: a, b: b}, nil
}

// evaluate runs inside a per-item boundary; the unwrap pulls the inner
// failure through it without a second capture.
func evaluate(ctx context.Context, d division) (float64, error) {
	return safeDivide(ctx, d.a, d.b).Unwrap(), nil
}

func divide(_ context.Context, a, b float64) (float64, error) {
	if b == 0 {
		return 0, errDivideByZero
	}
	return a / b, nil
}

func safeDivide(ctx context.Context, a, b float64) safe.Result[float64] {
	return safe.Do(ctx, func(ctx context.Context) (float64, error) {
		return divide(ctx, a, b)
	})
}

func compute(ctx context.Context, x, y, z float64) safe.Result[float64] {
	return safe.Do(ctx, func(ctx context.Context) (float64, error) {
		v := safeDivide(ctx, x, y).Unwrap()
		w := safeDivide(ctx, v, z).Unwrap()
		return w, nil
	})
}
