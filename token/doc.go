/*
Package token provides the batteries-included byte vocabulary for the scanning core: a closed
enumeration of single-byte and short-sequence tokens (brackets, quotes, punctuation, arithmetic
operators, whitespace, and newline forms including "\r\n").

Every Token implements the core capabilities over bytes:

 * scan.Matcher  - Match / Size
 * scan.Visitor  - Accept, recognizing the token and yielding it
 * scan.Peekable - Peek, locating the first occurrence of the token

The package also provides ready-made balanced-group and quoted-group peekables ( ParenGroup,
BracketGroup, BraceGroup, SingleQuoted, DoubleQuoted ), all using the backslash as the escape
element.

A quick taste, recognizing an operator:

	c := scan.New([]byte("+42"))
	op, ok, err := scan.NewRecognizer[byte, token.Token](c).
		TryOr(token.Plus).
		TryOr(token.Minus).
		Finish()
	// op == token.Plus, c.Pos() == 1

*/
package token
