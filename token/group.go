package token

import "github.com/tekwizely/go-scanning/scan"

// Pre-built delimited-group peekables over the byte vocabulary.
// The backslash is the escape element throughout: it shields the element
// that follows it, so bodies can embed literal delimiters. Escape sequences
// are preserved verbatim in the peeked body.
//
var (
	// ParenGroup scans a balanced ( ... ) group.
	//
	ParenGroup = scan.Balanced[byte]('(', ')', '\\')

	// BracketGroup scans a balanced [ ... ] group.
	//
	BracketGroup = scan.Balanced[byte]('[', ']', '\\')

	// BraceGroup scans a balanced { ... } group.
	//
	BraceGroup = scan.Balanced[byte]('{', '}', '\\')

	// SingleQuoted scans a ' ... ' group, without nesting.
	//
	SingleQuoted = scan.Quoted[byte]('\'', '\\')

	// DoubleQuoted scans a " ... " group, without nesting.
	//
	DoubleQuoted = scan.Quoted[byte]('"', '\\')
)
