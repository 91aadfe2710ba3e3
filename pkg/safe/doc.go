// Package safe provides a value-based alternative to panicking for fallible
// operations: a two-variant Result[T] that is either Ok with a payload or a
// failure carrying the original fault and a stack trace captured exactly
// once, at the point where the fault was first normalized.
//
// Highlights:
// - Ok/Err/From: construct results; Err records a trace at the call site
// - Do/DoWith: run an operation and normalize its faults into a Result,
//   catching everything or only an enumerated set (Is/As/Class catchers);
//   unmatched faults pass through unchanged
// - Unwrap: short-circuit out of a function on failure; the enclosing
//   boundary turns the propagated failure back into the same Result,
//   nothing re-wrapped, nothing re-captured
// - ErrIs/ErrAs: narrow a failure to a sentinel or a concrete fault type
// - ErrFrom/Flatten/Equal: move failures across payload types, collapse
//   nesting, compare by content
// - Describe/String/MarshalJSON: stable human and structured renderings
//
// Cancellation stays on the ordinary error channel of DoWith and of the
// future package; only the catch-all Do treats it as data.
package safe
