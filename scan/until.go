package scan

import "errors"

// Until returns a Peekable locating the first position at which the visitor
// accepts, scanning forward one element at a time.
//
// The find's End includes the terminator, and EndLen is the length the
// visitor consumed, so the body excludes the terminator. Not-found is
// returned when the end of input is reached without the visitor accepting.
//
func Until[T, V any](v Visitor[T, V]) PeekableFn[T] {
	return func(c *Cursor[T]) (PeekResult, error) {
		inner := New(c.Remaining())
		for !inner.IsEmpty() {
			start := inner.Pos()
			_, ok, err := v.Accept(inner)
			if err != nil && !errors.Is(err, ErrEndOfInput) {
				return PeekResult{}, err
			}
			if ok && err == nil {
				return PeekResult{Found: true, End: inner.Pos(), EndLen: inner.Pos() - start}, nil
			}
			// No terminator here, scan forward.
			// The jump also repairs the inner cursor after an end-of-input failure.
			//
			if err := inner.Jump(start + 1); err != nil {
				return PeekResult{}, err
			}
		}
		return PeekResult{}, nil
	}
}
