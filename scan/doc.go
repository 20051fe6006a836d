/*
Package scan implements the base components of a recursive-descent parsing core over a flat, random-access
input slice of homogeneous elements, bytes being the archetypal case.

Some Features of this Core:

 * Generic over the element type
 * Strong cursor contracts: advance on hit, untouched on miss
 * Non-consuming lookahead with structured find results
 * First-wins consuming alternatives, shortest-wins peeking alternatives


The Cursor

All operations run against a Cursor, a position over an immutable slice:

	c := scan.New([]byte("7 * ( 1 + 2 )"))

The cursor moves with Bump (forward), Rewind (backward) and Jump (absolute); out-of-range motion fails
with ErrEndOfInput and leaves the position unchanged. Remaining() views the input from the current
position, Data() views all of it. Both borrow the input: keep the input alive for as long as you use
any returned view.

To snapshot and restore a position, use a marker:

	m := c.Marker()
	...
	m.Apply() // back where we started


Miss vs Error

Operations that attempt a match report a three-valued outcome ( value, ok, err ): a hit, a miss
( ok == false, err == nil ), or an error. Combinators recover from a miss locally by restoring the
cursor; they never recover from an error. This separation is the cornerstone of composability: an
alternative combinator tries another branch on a miss, never on an error.

The assertive free helpers ( Recognize, RecognizeSlice, Peek ) elevate a miss to ErrUnexpectedToken
for linear parsers that have no alternative to fall back to.


Matching and Recognizing

A Matcher is a predicate on a slice prefix, reporting whether it matches and how many elements it
would consume. Matchers are recognized against a cursor with TryRecognize / TryRecognizeSlice: on a
hit the cursor advances by exactly the consumed length, on a miss it is untouched.

	digit := scan.Seq[byte]('4', '2')
	hit, err := scan.TryRecognize(digit, c)


Visiting

A Visitor composes recognizers and other visitors into a value-producing consumer:

	type Visitor[T, V any] interface {
		Accept(c *Cursor[T]) (V, bool, error)
	}

VisitorFn adapts plain functions, VisitMatcher promotes a matcher into the visitor that recognizes it
and yields it, and Map rewraps a visitor's value into a common result type for use with an Acceptor.


Alternatives

Three builders try registered candidates against one cursor:

	// First match wins, candidates are matchers
	//
	tok, ok, err := scan.NewRecognizer[byte, token.Token](c).
		TryOr(token.Plus).
		TryOr(token.Minus).
		Finish()

	// First to accept wins, candidates are visitors
	//
	expr, ok, err := scan.NewAcceptor[byte, Expr](c).
		TryOr(scan.Map(numberVisitor, wrapNumber)).
		TryOr(scan.Map(groupVisitor, wrapGroup)).
		Finish()

	// Shortest find wins, candidates are peekables
	//
	found, ok, err := scan.NewPeeker(c).
		TryOr(scan.Until[byte, token.Token](token.Plus)).
		TryOr(scan.Until[byte, token.Token](token.Star)).
		Finish()

The consuming builders ( Recognizer, Acceptor ) pick the first candidate to hit, in registration
order, and become no-ops afterwards. The Peeker instead picks the candidate with the shortest body,
regardless of registration order: the nearest terminator wins. These policies are intentionally
different and must not be unified.


Peeking

A Peekable reports where a pattern would end without moving the cursor. A find carries End ( one past
the trailing sentinel ), StartLen ( leading sentinel length ) and EndLen ( trailing sentinel length );
Peeking couples the find with the remaining slice and exposes the body between the sentinels.

Peek modifiers compose peekables:

 * Until(visitor) finds the first position where the visitor accepts
 * Last(peekable) finds the final occurrence, with offsets absolute to the cursor
 * Balanced(opener, closer, esc) scans a nested delimiter group, escape-aware
 * Quoted(quote, esc) scans a quote-delimited group without nesting

A visitor only participates in peeking through the explicit PeekVisitor promotion; there is no
implicit promotion.


Separated Lists

SeparatedList accepts element ( separator element )* and collects the element values. A trailing
separator is an error, not silently trimmed; run the cursor through TrimTrailing first to tolerate
one.

*/
package scan
