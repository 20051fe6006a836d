package scan

// Visitor is the composite-consumer capability: accept the cursor and
// produce a value, or signal a miss or an error.
//
// A visitor may advance the cursor arbitrarily on success, and must leave it
// untouched when it misses. The idiomatic way to honor that contract is to
// snapshot the position with Cursor.Marker() on entry and Apply() it on the
// miss path. Visitors compose: a visitor's body typically calls recognizers
// and other visitors.
//
type Visitor[T, V any] interface {
	Accept(c *Cursor[T]) (V, bool, error)
}

// VisitorFn adapts an ordinary function into a Visitor.
//
type VisitorFn[T, V any] func(*Cursor[T]) (V, bool, error)

// Accept implements Visitor.
//
func (f VisitorFn[T, V]) Accept(c *Cursor[T]) (V, bool, error) {
	return f(c)
}

// Map adapts a visitor into one producing a common result type, for
// registration with an Acceptor.
//
func Map[T, V, R any](v Visitor[T, V], wrap func(V) R) VisitorFn[T, R] {
	return func(c *Cursor[T]) (R, bool, error) {
		var zero R
		value, ok, err := v.Accept(c)
		if err != nil || !ok {
			return zero, ok, err
		}
		return wrap(value), true, nil
	}
}

// VisitMatcher promotes a matcher into a visitor: recognize the matcher at
// the cursor and yield the matcher itself as the value.
//
func VisitMatcher[T any, M Matcher[T]](m M) VisitorFn[T, M] {
	return func(c *Cursor[T]) (M, bool, error) {
		var zero M
		hit, err := TryRecognize(m, c)
		if err != nil || !hit {
			return zero, false, err
		}
		return m, true, nil
	}
}
