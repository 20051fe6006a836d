package scan

import "errors"

// Recognizer accumulates consuming alternatives over a cursor, first match
// wins. Each candidate is both the matcher and the stored value: the first
// candidate to recognize is what Finish returns.
//
// Register more-specific patterns first ( "hello" before "hell" ):
// tie-breaking is strictly by registration order.
//
type Recognizer[T any, M Matcher[T]] struct {
	cursor *Cursor[T]
	result *M
	err    error
}

// NewRecognizer starts a recognizer-of-alternatives over the cursor.
//
func NewRecognizer[T any, M Matcher[T]](c *Cursor[T]) *Recognizer[T, M] {
	return &Recognizer[T, M]{cursor: c}
}

// TryOr attempts candidate, unless a previous candidate already hit, in
// which case the call is a no-op.
// On a hit the cursor is left advanced past the match; on a miss it is
// untouched. End-of-input from a candidate leaves the cursor untouched and
// counts as a miss; any other error latches and surfaces at Finish.
//
func (r *Recognizer[T, M]) TryOr(candidate M) *Recognizer[T, M] {
	if r.result != nil || r.err != nil {
		return r
	}
	hit, err := TryRecognize(candidate, r.cursor)
	switch {
	case errors.Is(err, ErrEndOfInput):
		// Size pre-check or bump failed, cursor untouched, safe to try the next candidate
	case err != nil:
		r.err = err
	case hit:
		r.result = &candidate
	}
	return r
}

// Finish returns the first candidate that hit, if any.
// The cursor reflects that candidate's advance; on all-miss it is untouched.
//
func (r *Recognizer[T, M]) Finish() (M, bool, error) {
	var zero M
	if r.err != nil {
		return zero, false, r.err
	}
	if r.result == nil {
		return zero, false, nil
	}
	return *r.result, true, nil
}
