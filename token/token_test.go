package token

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tekwizely/go-scanning/scan"
)

func TestTokenMatch(t *testing.T) {
	matched, consumed := Plus.Match([]byte("+42"))
	assert.True(t, matched)
	assert.Equal(t, 1, consumed)

	matched, _ = Plus.Match([]byte("42"))
	assert.False(t, matched)

	// Short input is a miss, never a read past the prefix
	//
	matched, consumed = CrLf.Match([]byte("\r"))
	assert.False(t, matched)
	assert.Equal(t, 0, consumed)

	matched, consumed = CrLf.Match([]byte("\r\n\r\n"))
	assert.True(t, matched)
	assert.Equal(t, 2, consumed)

	matched, _ = Plus.Match(nil)
	assert.False(t, matched)
}

func TestTokenSize(t *testing.T) {
	assert.Equal(t, 1, Plus.Size())
	assert.Equal(t, 2, CrLf.Size())
}

func TestTokenBytesAndString(t *testing.T) {
	assert.Equal(t, []byte("("), OpenParen.Bytes())
	assert.Equal(t, "(", OpenParen.String())
	assert.Equal(t, "\r\n", CrLf.String())
}

func TestTokenAccept(t *testing.T) {
	c := scan.New([]byte("*rest"))
	tok, ok, err := Star.Accept(c)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Star, tok)
	assert.Equal(t, 1, c.Pos())

	_, ok, err = Star.Accept(c)
	require.NoError(t, err)
	require.False(t, ok)
	assert.Equal(t, 1, c.Pos(), "cursor untouched on miss")
}

func TestTokenPeekFirstOccurrence(t *testing.T) {
	c := scan.New([]byte("abc;def;"))
	r, err := SemiColon.Peek(c)
	require.NoError(t, err)
	assert.Equal(t, scan.PeekResult{Found: true, End: 4, EndLen: 1}, r)
	assert.Equal(t, 0, c.Pos())

	r, err = Dot.Peek(c)
	require.NoError(t, err)
	assert.False(t, r.Found)
}

// Scenario: recognizing "+" against Plus-or-Minus alternatives.
//
func TestRecognizeOperator(t *testing.T) {
	c := scan.New([]byte("+"))
	tok, ok, err := scan.NewRecognizer[byte, Token](c).
		TryOr(Plus).
		TryOr(Minus).
		Finish()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Plus, tok)
	assert.Equal(t, 1, c.Pos())
}

// Scenario: "x" misses both alternatives, cursor stays at 0.
//
func TestRecognizeOperatorMiss(t *testing.T) {
	c := scan.New([]byte("x"))
	_, ok, err := scan.NewRecognizer[byte, Token](c).
		TryOr(Plus).
		TryOr(Minus).
		Finish()
	require.NoError(t, err)
	require.False(t, ok)
	assert.Equal(t, 0, c.Pos())
}

func TestRecognizeCrLfBeforeCarriageReturn(t *testing.T) {
	c := scan.New([]byte("\r\ntail"))
	tok, ok, err := scan.NewRecognizer[byte, Token](c).
		TryOr(CrLf).
		TryOr(CarriageReturn).
		TryOr(NewLine).
		Finish()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, CrLf, tok)
	assert.Equal(t, 2, c.Pos())
}

// Scenario: last closing paren of "8 / ( 7 * ( 1 + 2 ) )" after bumping
// past "8 / (".
//
func TestLastCloseParen(t *testing.T) {
	c := scan.New([]byte("8 / ( 7 * ( 1 + 2 ) )"))
	require.NoError(t, c.Bump(5))
	p, err := scan.Peek(scan.Last[byte](CloseParen), c)
	require.NoError(t, err)
	assert.Equal(t, " 7 * ( 1 + 2 ) ", string(p.Body()))
	assert.Equal(t, 5, c.Pos(), "cursor unchanged")
}

// Scenario: nearest terminator wins regardless of registration order.
//
func TestPeekerNearestTerminator(t *testing.T) {
	c := scan.New([]byte("7 * ( 1 + 2 )"))
	p, ok, err := scan.NewPeeker(c).
		TryOr(scan.Until[byte, Token](Plus)).
		TryOr(scan.Until[byte, Token](Star)).
		Finish()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "7 ", string(p.Body()))

	c = scan.New([]byte("1 + 2 * 7"))
	p, ok, err = scan.NewPeeker(c).
		TryOr(scan.Until[byte, Token](Plus)).
		TryOr(scan.Until[byte, Token](Star)).
		Finish()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "1 ", string(p.Body()))
}

// numberDigits is a data-dependent matcher for a leading digit run.
//
type numberDigits struct{}

func (numberDigits) Match(prefix []byte) (bool, int) {
	n := 0
	for n < len(prefix) && prefix[n] >= '0' && prefix[n] <= '9' {
		n++
	}
	return n > 0, n
}

func (numberDigits) Size() int { return 0 }

// acceptInt visits a leading digit run as an int.
//
var acceptInt = scan.VisitorFn[byte, int](func(c *scan.Cursor[byte]) (int, bool, error) {
	slice, hit, err := scan.TryRecognizeSlice[byte](numberDigits{}, c)
	if err != nil || !hit {
		return 0, false, err
	}
	n, err := strconv.Atoi(string(slice))
	if err != nil {
		return 0, false, scan.WrapParseInt(err)
	}
	return n, true, nil
})

// Scenario: tilde-separated numbers, with and without a trailing separator.
//
func TestSeparatedNumbers(t *testing.T) {
	list := scan.SeparatedList[byte, int, scan.Matcher[byte]]{
		Elem: acceptInt,
		Sep:  scan.VisitMatcher(Sequence('~', '~', '~')),
	}
	sepPeek := scan.Until(scan.VisitMatcher(Sequence('~', '~', '~')))

	values, ok, err := list.Accept(scan.New([]byte("1~~~2~~~3~~~4")))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4}, values)

	// Trailing separator straight through the list is an error
	//
	_, _, err = list.Accept(scan.New([]byte("1~~~2~~~3~~~4~~~")))
	require.ErrorIs(t, err, scan.ErrUnexpectedToken)

	// The trimming helper makes the same input acceptable
	//
	trimmed, err := scan.TrimTrailing(scan.New([]byte("1~~~2~~~3~~~4~~~")), sepPeek)
	require.NoError(t, err)
	values, ok, err = list.Accept(trimmed)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4}, values)
}
