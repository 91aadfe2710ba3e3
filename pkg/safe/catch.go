package safe

import "errors"

// Catcher decides whether an enumerated boundary intercepts a fault. A
// catch set is fixed when the boundary call is made and consulted by tag
// membership only; no Catcher inspects fault contents beyond its tag.
type Catcher interface {
	// Catches reports whether the boundary should intercept err.
	Catches(err error) bool
}

// Membership is the class subset used for catching by error class. The
// Class type of github.com/zeebo/errs satisfies it.
type Membership interface {
	// Has reports whether err belongs to the class.
	Has(err error) bool
}

// Is builds a Catcher matching any of the given sentinel faults, in the
// errors.Is sense.
func Is(targets ...error) Catcher {
	return isCatcher{targets: targets}
}

type isCatcher struct {
	targets []error
}

func (c isCatcher) Catches(err error) bool {
	for _, t := range c.targets {
		if t != nil && errors.Is(err, t) {
			return true
		}
	}
	return false
}

// As builds a Catcher matching faults of type E, in the errors.As sense:
//
//	safe.DoWith(ctx, op, safe.As[*ParseError]())
func As[E error]() Catcher {
	return asCatcher[E]{}
}

type asCatcher[E error] struct{}

func (asCatcher[E]) Catches(err error) bool {
	var target E
	return errors.As(err, &target)
}

// Class builds a Catcher from a class membership test:
//
//	var parse = errs.Class("parse")
//	safe.DoWith(ctx, op, safe.Class(&parse))
func Class(m Membership) Catcher {
	return classCatcher{m: m}
}

type classCatcher struct {
	m Membership
}

func (c classCatcher) Catches(err error) bool {
	return c.m != nil && c.m.Has(err)
}

func matchesAny(err error, catch []Catcher) bool {
	for _, c := range catch {
		if c != nil && c.Catches(err) {
			return true
		}
	}
	return false
}
