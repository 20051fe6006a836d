package scan

import "errors"

// Acceptor accumulates visitor alternatives over a common result type,
// first to accept wins. Structurally identical to Recognizer, but candidates
// are visitors rather than matchers; use Map to wrap heterogeneous visitor
// values into the common type.
//
// Tie-breaking is strictly by registration order.
//
type Acceptor[T, R any] struct {
	cursor *Cursor[T]
	result *R
	err    error
}

// NewAcceptor starts an acceptor-of-alternatives over the cursor.
//
func NewAcceptor[T, R any](c *Cursor[T]) *Acceptor[T, R] {
	return &Acceptor[T, R]{cursor: c}
}

// TryOr attempts the visitor, unless a previous candidate already accepted,
// in which case the call is a no-op.
// The cursor is rolled back to the entry position on a miss, even if the
// visitor neglected to. End-of-input counts as a miss; any other error
// latches and surfaces at Finish.
//
func (a *Acceptor[T, R]) TryOr(v Visitor[T, R]) *Acceptor[T, R] {
	if a.result != nil || a.err != nil {
		return a
	}
	m := a.cursor.Marker()
	value, ok, err := v.Accept(a.cursor)
	switch {
	case errors.Is(err, ErrEndOfInput):
		m.Apply()
	case err != nil:
		a.err = err
	case ok:
		a.result = &value
	default:
		m.Apply()
	}
	return a
}

// Finish returns the first candidate value that was accepted, if any.
// The cursor reflects that candidate's advance; on all-miss it is untouched.
//
func (a *Acceptor[T, R]) Finish() (R, bool, error) {
	var zero R
	if a.err != nil {
		return zero, false, a.err
	}
	if a.result == nil {
		return zero, false, nil
	}
	return *a.result, true, nil
}
