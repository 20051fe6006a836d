package scan

// Last returns a Peekable reporting the final find the wrapped peekable
// would produce, repeatedly applying it and advancing past each match.
//
// Offsets in the result are absolute, relative to the original cursor
// position, so the body of a found result spans from the original position
// up to the last terminator. Not-found is returned if no match was ever
// observed. The cursor is never moved.
//
func Last[T any](p Peekable[T]) PeekableFn[T] {
	return func(c *Cursor[T]) (PeekResult, error) {
		var best PeekResult
		remaining := c.Remaining()
		offset := 0
		for offset <= len(remaining) {
			r, err := p.Peek(New(remaining[offset:]))
			if err != nil {
				return PeekResult{}, err
			}
			if !r.Found {
				break
			}
			best = PeekResult{Found: true, End: offset + r.End, StartLen: r.StartLen, EndLen: r.EndLen}
			// Advance past the match, forcing progress on a zero-width find
			//
			if r.End > 0 {
				offset += r.End
			} else {
				offset++
			}
		}
		return best, nil
	}
}
