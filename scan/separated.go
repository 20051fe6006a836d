package scan

import "errors"

// SeparatedList accepts a sequence of element values interleaved with
// separator values: element ( separator element )*.
//
// The list terminates on the first separator miss, rolling the cursor back
// to just after the last element. An element is required after every
// accepted separator: a trailing separator in the input makes the next
// element attempt fail with ErrUnexpectedToken rather than being silently
// trimmed. Callers that want to tolerate a trailing separator should first
// pass the cursor through TrimTrailing.
//
type SeparatedList[T, V, S any] struct {

	// Elem accepts one element of the list.
	//
	Elem Visitor[T, V]

	// Sep accepts the separator between elements. The separator value is
	// discarded.
	//
	Sep Visitor[T, S]
}

// Accept implements Visitor. A miss on the leading element yields an empty
// list with the cursor untouched.
//
func (l SeparatedList[T, V, S]) Accept(c *Cursor[T]) ([]V, bool, error) {
	var values []V
	m := c.Marker()
	value, ok, err := l.Elem.Accept(c)
	if errors.Is(err, ErrEndOfInput) {
		m.Apply()
		return values, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	if !ok {
		m.Apply()
		return values, true, nil
	}
	for {
		values = append(values, value)
		sep := c.Marker()
		if _, ok, err = l.Sep.Accept(c); err != nil || !ok {
			sep.Apply()
			return values, true, nil
		}
		value, ok, err = l.Elem.Accept(c)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, ErrUnexpectedToken
		}
	}
}

// TrimTrailing returns a cursor over a data view that ends just before the
// final separator, when nothing follows that separator; otherwise an
// equivalent cursor over the unmodified remaining slice. The original
// cursor is left untouched.
//
// sep locates separators; give it first-occurrence semantics ( a catalogue
// token, or Until over a separator visitor ). Empty input yields an empty
// cursor, as does input consisting solely of separators.
//
func TrimTrailing[T any](c *Cursor[T], sep Peekable[T]) (*Cursor[T], error) {
	remaining := c.Remaining()
	r, err := Last(sep).Peek(c)
	if err != nil {
		return nil, err
	}
	if r.Found && r.End == len(remaining) {
		return New(remaining[:r.End-r.EndLen]), nil
	}
	return New(remaining), nil
}
