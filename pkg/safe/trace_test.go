package safe

import (
	"errors"
	"strings"
	"testing"
)

func deepErr(n int) Result[int] {
	if n == 0 {
		return Err[int](errors.New("deep"))
	}
	return deepErr(n - 1)
}

func TestErr_TraceStartsAtCaller(t *testing.T) {
	t.Parallel()

	r := Err[int](errors.New("boom"))
	tr := r.Trace()
	if len(tr) == 0 {
		t.Fatalf("expected frames")
	}
	if !strings.Contains(tr[0].Function, "TestErr_TraceStartsAtCaller") {
		t.Fatalf("expected first frame at the Err call site, got: %s", tr[0].Function)
	}
	if tr[0].Line <= 0 || tr[0].File == "" {
		t.Fatalf("expected resolved file and line, got: %s:%d", tr[0].File, tr[0].Line)
	}
}

func TestTrace_IsASnapshot(t *testing.T) {
	t.Parallel()

	r := Err[int](errors.New("boom"))

	tr := r.Trace()
	tr[0].Line = -1

	if r.Trace()[0].Line == -1 {
		t.Fatalf("expected Trace to hand out copies, not the stored snapshot")
	}
}

func TestTrace_RenderingDeterministic(t *testing.T) {
	t.Parallel()

	tr := Err[int](errors.New("boom")).Trace()
	if tr.String() != tr.String() {
		t.Fatalf("expected byte-identical renderings")
	}

	var empty Trace
	if empty.String() != "" {
		t.Fatalf("expected empty trace to render empty, got %q", empty.String())
	}
}

func TestTrace_DepthCapped(t *testing.T) {
	t.Parallel()

	tr := deepErr(maxTraceDepth * 2).Trace()
	if len(tr) != maxTraceDepth {
		t.Fatalf("expected capture capped at %d frames, got %d", maxTraceDepth, len(tr))
	}
	for _, f := range tr {
		if !strings.Contains(f.Function, "deepErr") {
			t.Fatalf("expected only recursion frames inside the cap, got: %s", f.Function)
		}
	}
}

func TestFrame_String(t *testing.T) {
	t.Parallel()

	f := Frame{Function: "pkg.fn", File: "pkg/fn.go", Line: 42}
	if got := f.String(); got != "pkg.fn\n\tpkg/fn.go:42" {
		t.Fatalf("unexpected frame rendering: %q", got)
	}
}
