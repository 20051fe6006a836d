package scan

// TryRecognize attempts to consume a prefix matched by m.
// The outcome is three-valued:
//
//  - hit   : (true, nil), cursor advanced by exactly the matched length
//  - miss  : (false, nil), cursor untouched
//  - error : (false, err), cursor position unspecified, callers should abort
//
// A fixed-size matcher ( Size() > 0 ) with fewer elements remaining than its
// size fails with ErrEndOfInput before Match is invoked; the cursor is left
// untouched in that case.
//
func TryRecognize[T any](m Matcher[T], c *Cursor[T]) (bool, error) {
	remaining := c.Remaining()
	if size := m.Size(); size > 0 && size > len(remaining) {
		return false, ErrEndOfInput
	}
	matched, consumed := m.Match(remaining)
	if !matched {
		return false, nil
	}
	if err := c.Bump(consumed); err != nil {
		return false, err
	}
	return true, nil
}

// TryRecognizeSlice attempts to consume a prefix matched by m, yielding the
// consumed slice view on a hit. The view borrows the underlying input.
// Same protocol and outcomes as TryRecognize.
//
func TryRecognizeSlice[T any](m Matcher[T], c *Cursor[T]) ([]T, bool, error) {
	remaining := c.Remaining()
	before := c.Pos()
	hit, err := TryRecognize(m, c)
	if err != nil || !hit {
		return nil, hit, err
	}
	return remaining[:c.Pos()-before], true, nil
}

// Recognize requires m to match at the cursor, elevating a miss to
// ErrUnexpectedToken. Simplifies linear parsers that have no alternative to
// fall back to.
//
func Recognize[T any](m Matcher[T], c *Cursor[T]) error {
	hit, err := TryRecognize(m, c)
	if err != nil {
		return err
	}
	if !hit {
		return ErrUnexpectedToken
	}
	return nil
}

// RecognizeSlice requires m to match at the cursor, elevating a miss to
// ErrUnexpectedToken and yielding the consumed slice view on a hit.
//
func RecognizeSlice[T any](m Matcher[T], c *Cursor[T]) ([]T, error) {
	slice, hit, err := TryRecognizeSlice(m, c)
	if err != nil {
		return nil, err
	}
	if !hit {
		return nil, ErrUnexpectedToken
	}
	return slice, nil
}
