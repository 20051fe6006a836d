package scan

import "errors"

// PeekResult reports where a pattern would end, without the cursor having
// moved. The zero value is a not-found result.
// All offsets are relative to the cursor position at the time of the peek.
//
type PeekResult struct {

	// Found reports whether the pattern was located.
	//
	Found bool

	// End is the offset one past the end of the found region, trailing
	// sentinel included.
	//
	End int

	// StartLen is the length of the leading sentinel consumed before the
	// body, 0 if none.
	//
	StartLen int

	// EndLen is the length of the trailing sentinel.
	//
	EndLen int
}

// Peekable is the non-consuming search capability: report where a pattern
// would end without moving the cursor.
// Implementations must be read-only on the cursor.
//
type Peekable[T any] interface {
	Peek(c *Cursor[T]) (PeekResult, error)
}

// PeekableFn adapts an ordinary function into a Peekable.
//
type PeekableFn[T any] func(*Cursor[T]) (PeekResult, error)

// Peek implements Peekable.
//
func (f PeekableFn[T]) Peek(c *Cursor[T]) (PeekResult, error) {
	return f(c)
}

// Peeking couples a find with the unadvanced remaining slice it was found
// in. It never mutates the cursor; callers advance explicitly, typically
// with Cursor.Bump(p.End).
//
type Peeking[T any] struct {
	PeekResult

	// Remaining is the cursor's remaining slice at the time of the peek.
	//
	Remaining []T
}

// Body returns the found region between the sentinels.
// Only valid on a found result.
//
func (p Peeking[T]) Body() []T {
	return p.Remaining[p.StartLen : p.End-p.EndLen]
}

// Region returns the found region through the trailing sentinel.
// Only valid on a found result.
//
func (p Peeking[T]) Region() []T {
	return p.Remaining[:p.End]
}

// PeekVisitor promotes a visitor into a Peekable.
// The visitor runs against a throwaway cursor over the remaining slice; on
// success the find spans exactly the consumed prefix, with End = consumed
// and StartLen = EndLen = 0. A miss, or end-of-input, is a not-found result.
//
// Promotion is deliberately explicit: a visitor never silently becomes a
// Peekable and participates in a Peeker.
//
func PeekVisitor[T, V any](v Visitor[T, V]) PeekableFn[T] {
	return func(c *Cursor[T]) (PeekResult, error) {
		inner := New(c.Remaining())
		_, ok, err := v.Accept(inner)
		if errors.Is(err, ErrEndOfInput) {
			return PeekResult{}, nil
		}
		if err != nil {
			return PeekResult{}, err
		}
		if !ok {
			return PeekResult{}, nil
		}
		return PeekResult{Found: true, End: inner.Pos()}, nil
	}
}

// Peek requires p to find a match, elevating a not-found result to
// ErrUnexpectedToken and coupling the find with the remaining slice.
//
func Peek[T any](p Peekable[T], c *Cursor[T]) (Peeking[T], error) {
	r, err := p.Peek(c)
	if err != nil {
		return Peeking[T]{}, err
	}
	if !r.Found {
		return Peeking[T]{}, ErrUnexpectedToken
	}
	return Peeking[T]{PeekResult: r, Remaining: c.Remaining()}, nil
}
