package token

import (
	"bytes"

	"github.com/tekwizely/go-scanning/scan"
)

// Token enumerates the pre-built byte vocabulary.
//
// Every token implements the core capabilities over bytes: scan.Matcher
// ( Match / Size ), scan.Visitor ( Accept, yielding the token itself ) and
// scan.Peekable ( Peek, with first-occurrence search semantics ).
//
type Token int

const (
	// OpenParen matches '('
	//
	OpenParen Token = iota
	// CloseParen matches ')'
	//
	CloseParen
	// OpenBracket matches '['
	//
	OpenBracket
	// CloseBracket matches ']'
	//
	CloseBracket
	// OpenBrace matches '{'
	//
	OpenBrace
	// CloseBrace matches '}'
	//
	CloseBrace
	// LessThan matches '<'
	//
	LessThan
	// GreaterThan matches '>'
	//
	GreaterThan
	// SingleQuote matches '\''
	//
	SingleQuote
	// DoubleQuote matches '"'
	//
	DoubleQuote
	// BackQuote matches '`'
	//
	BackQuote
	// Plus matches '+'
	//
	Plus
	// Minus matches '-'
	//
	Minus
	// Star matches '*'
	//
	Star
	// Slash matches '/'
	//
	Slash
	// Percent matches '%'
	//
	Percent
	// Caret matches '^'
	//
	Caret
	// Equal matches '='
	//
	Equal
	// Comma matches ','
	//
	Comma
	// Dot matches '.'
	//
	Dot
	// Colon matches ':'
	//
	Colon
	// SemiColon matches ';'
	//
	SemiColon
	// Pipe matches '|'
	//
	Pipe
	// Ampersand matches '&'
	//
	Ampersand
	// Bang matches '!'
	//
	Bang
	// Question matches '?'
	//
	Question
	// Tilde matches '~'
	//
	Tilde
	// At matches '@'
	//
	At
	// Hash matches '#'
	//
	Hash
	// Dollar matches '$'
	//
	Dollar
	// Underscore matches '_'
	//
	Underscore
	// Backslash matches '\\'
	//
	Backslash
	// Space matches ' '
	//
	Space
	// Tab matches '\t'
	//
	Tab
	// CarriageReturn matches '\r'
	//
	CarriageReturn
	// NewLine matches '\n'
	//
	NewLine
	// CrLf matches the two-byte "\r\n" sequence.
	// Register it before CarriageReturn when both are alternatives.
	//
	CrLf
	// tEnd is an internal marker
	//
	tEnd
)

// seqs maps each token to the byte sequence it matches.
//
var seqs = [tEnd][]byte{
	OpenParen:      {'('},
	CloseParen:     {')'},
	OpenBracket:    {'['},
	CloseBracket:   {']'},
	OpenBrace:      {'{'},
	CloseBrace:     {'}'},
	LessThan:       {'<'},
	GreaterThan:    {'>'},
	SingleQuote:    {'\''},
	DoubleQuote:    {'"'},
	BackQuote:      {'`'},
	Plus:           {'+'},
	Minus:          {'-'},
	Star:           {'*'},
	Slash:          {'/'},
	Percent:        {'%'},
	Caret:          {'^'},
	Equal:          {'='},
	Comma:          {','},
	Dot:            {'.'},
	Colon:          {':'},
	SemiColon:      {';'},
	Pipe:           {'|'},
	Ampersand:      {'&'},
	Bang:           {'!'},
	Question:       {'?'},
	Tilde:          {'~'},
	At:             {'@'},
	Hash:           {'#'},
	Dollar:         {'$'},
	Underscore:     {'_'},
	Backslash:      {'\\'},
	Space:          {' '},
	Tab:            {'\t'},
	CarriageReturn: {'\r'},
	NewLine:        {'\n'},
	CrLf:           {'\r', '\n'},
}

// Bytes returns the byte sequence the token matches.
// Callers must not modify the returned slice.
//
func (t Token) Bytes() []byte {
	return seqs[t]
}

// String returns the matched sequence as text.
//
func (t Token) String() string {
	return string(seqs[t])
}

// Match implements scan.Matcher.
// Returns (false, 0) when the prefix is shorter than the token sequence.
//
func (t Token) Match(prefix []byte) (bool, int) {
	seq := seqs[t]
	if len(prefix) < len(seq) {
		return false, 0
	}
	for i, b := range seq {
		if prefix[i] != b {
			return false, 0
		}
	}
	return true, len(seq)
}

// Size implements scan.Matcher. Token sequences are fixed-size.
//
func (t Token) Size() int {
	return len(seqs[t])
}

// Accept implements scan.Visitor: recognize the token at the cursor and
// yield the token itself.
//
func (t Token) Accept(c *scan.Cursor[byte]) (Token, bool, error) {
	hit, err := scan.TryRecognize[byte](t, c)
	return t, hit, err
}

// Peek implements scan.Peekable with first-occurrence search semantics: the
// find ends at the first occurrence of the token sequence in the remaining
// slice, and the sequence forms the trailing sentinel. This is what makes a
// token usable as a terminator, directly or through Last.
//
func (t Token) Peek(c *scan.Cursor[byte]) (scan.PeekResult, error) {
	seq := seqs[t]
	if i := bytes.Index(c.Remaining(), seq); i >= 0 {
		return scan.PeekResult{Found: true, End: i + len(seq), EndLen: len(seq)}, nil
	}
	return scan.PeekResult{}, nil
}

// Sequence returns a matcher for an ad-hoc byte sequence that is not part
// of the catalogue.
//
func Sequence(seq ...byte) scan.Matcher[byte] {
	return scan.Seq(seq...)
}
