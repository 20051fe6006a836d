package scan

// Balanced returns a Peekable scanning a delimited group with balanced
// nesting: the element at the cursor must equal opener, and the find ends at
// the closer that returns the nesting depth to zero.
//
// esc escapes the element that follows it, leaving the depth untouched, so
// callers can embed literal delimiters in the body. The body of a found
// result is the contents strictly between the opener and its matching
// closer ( StartLen = EndLen = 1 ), with escape sequences preserved
// verbatim. Not-found is returned when the element at the cursor is not the
// opener, or when the input ends before the group closes.
//
// The scan is a single pass with one integer depth counter; it never
// allocates.
//
func Balanced[T comparable](opener, closer, esc T) PeekableFn[T] {
	return func(c *Cursor[T]) (PeekResult, error) {
		remaining := c.Remaining()
		if len(remaining) == 0 || remaining[0] != opener {
			return PeekResult{}, nil
		}
		depth := 1
		for i := 1; i < len(remaining); {
			switch {
			case remaining[i] == esc && i+1 < len(remaining):
				i += 2
			case remaining[i] == opener:
				depth++
				i++
			case remaining[i] == closer:
				depth--
				i++
				if depth == 0 {
					return PeekResult{Found: true, End: i, StartLen: 1, EndLen: 1}, nil
				}
			default:
				i++
			}
		}
		return PeekResult{}, nil
	}
}

// Quoted returns a Peekable scanning a quoted group: same shape as
// Balanced, but without nesting, as the opening and closing element are the
// same. The first unescaped closing quote terminates the group.
//
// esc escapes the element that follows it. The body is strictly between the
// quotes, with escape sequences preserved verbatim, not unescaped.
// Not-found is returned when the element at the cursor is not the quote, or
// when the input ends before an unescaped closing quote.
//
func Quoted[T comparable](quote, esc T) PeekableFn[T] {
	return func(c *Cursor[T]) (PeekResult, error) {
		remaining := c.Remaining()
		if len(remaining) == 0 || remaining[0] != quote {
			return PeekResult{}, nil
		}
		for i := 1; i < len(remaining); {
			switch {
			case remaining[i] == esc && i+1 < len(remaining):
				i += 2
			case remaining[i] == quote:
				return PeekResult{Found: true, End: i + 1, StartLen: 1, EndLen: 1}, nil
			default:
				i++
			}
		}
		return PeekResult{}, nil
	}
}
