package scan

// Peeker accumulates peekable alternatives over a cursor, shortest find
// wins. Unlike the consuming combinators, registration order does not
// decide the winner: the find with the smallest body length ( End - EndLen )
// is kept, with the earlier registration winning ties. The user of a peeker
// typically wants the nearest terminator, regardless of which terminator
// kind it is.
//
type Peeker[T any] struct {
	cursor *Cursor[T]
	best   PeekResult
	err    error
}

// NewPeeker starts a peeker-of-alternatives over the cursor.
//
func NewPeeker[T any](c *Cursor[T]) *Peeker[T] {
	return &Peeker[T]{cursor: c}
}

// TryOr invokes candidate on the ( unadvanced ) cursor, keeping its find if
// it is strictly shorter than the best so far.
// Errors latch and surface at Finish.
//
func (p *Peeker[T]) TryOr(candidate Peekable[T]) *Peeker[T] {
	if p.err != nil {
		return p
	}
	r, err := candidate.Peek(p.cursor)
	if err != nil {
		p.err = err
		return p
	}
	if !r.Found {
		return p
	}
	if !p.best.Found || r.End-r.EndLen < p.best.End-p.best.EndLen {
		p.best = r
	}
	return p
}

// Finish returns the shortest find over all registered candidates, if any.
// The cursor is never moved.
//
func (p *Peeker[T]) Finish() (Peeking[T], bool, error) {
	if p.err != nil {
		return Peeking[T]{}, false, p.err
	}
	if !p.best.Found {
		return Peeking[T]{}, false, nil
	}
	return Peeking[T]{PeekResult: p.best, Remaining: p.cursor.Remaining()}, true, nil
}
