package safe

import (
	"fmt"
	"runtime"
	"strings"
)

// maxTraceDepth caps how many frames one capture records.
const maxTraceDepth = 32

// Frame is one resolved call site of a captured stack.
type Frame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

func (f Frame) String() string {
	return fmt.Sprintf("%s\n\t%s:%d", f.Function, f.File, f.Line)
}

// Trace is a stack snapshot taken when a failure was captured. Frames are
// resolved eagerly at capture time; rendering the same Trace twice yields
// byte-identical output.
type Trace []Frame

func (t Trace) String() string {
	if len(t) == 0 {
		return ""
	}

	var b strings.Builder
	for _, f := range t {
		b.WriteString(f.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// capture records the current call stack. With skip 0 the first frame is
// the caller of capture; each extra skip drops one more enclosing frame.
func capture(skip int) Trace {
	pcs := make([]uintptr, maxTraceDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	t := make(Trace, 0, n)
	for {
		fr, more := frames.Next()
		t = append(t, Frame{Function: fr.Function, File: fr.File, Line: fr.Line})
		if !more {
			break
		}
	}
	return t
}
