package lib

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireTok(t *testing.T, actual Token, kind Kind, text string, col int) {
	require.Equal(t, kind, actual.Kind(), "token kind")
	require.Equal(t, text, actual.Text(), "token text")
	require.Equal(t, col, actual.location().col, "token col")
}

func TestLexerOneNumber(t *testing.T) {
	tokens, err := Tokenize("42")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	requireTok(t, tokens[0], KindNumber, "42", 1)
	require.Equal(t, 42.0, tokens[0].(Number).Value)
}

func TestLexerExpression(t *testing.T) {
	tokens, err := Tokenize("6 / 2 * 3")
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	requireTok(t, tokens[0], KindNumber, "6", 1)
	requireTok(t, tokens[1], KindOperator, "/", 3)
	requireTok(t, tokens[2], KindNumber, "2", 5)
	requireTok(t, tokens[3], KindOperator, "*", 7)
	requireTok(t, tokens[4], KindNumber, "3", 9)
}

func TestLexerArbitraryWhitespace(t *testing.T) {
	tokens, err := Tokenize("  ( 2\t+ 3 )  ")
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	requireTok(t, tokens[0], KindLeftParen, "(", 3)
	requireTok(t, tokens[1], KindNumber, "2", 5)
	requireTok(t, tokens[2], KindOperator, "+", 7)
	requireTok(t, tokens[3], KindNumber, "3", 9)
	requireTok(t, tokens[4], KindRightParen, ")", 11)
}

func TestLexerPrecedence(t *testing.T) {
	tokens, err := Tokenize("* / % + -")
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	expected := []int{3, 3, 3, 2, 2}
	for i, tok := range tokens {
		op, ok := tok.(Operator)
		require.True(t, ok)
		require.Equal(t, expected[i], op.Precedence, "precedence of %c", op.Symbol)
	}
}

func TestLexerNumberForms(t *testing.T) {
	tests := []struct {
		word  string
		value float64
	}{
		{"2.50", 2.5},
		{"-5", -5},
		{"+7", 7},
		{".5", 0.5},
		{"1e3", 1000},
		{"2.5E-2", 0.025},
	}

	for _, tt := range tests {
		tokens, err := Tokenize(tt.word)
		require.NoError(t, err, tt.word)
		require.Len(t, tokens, 1)
		requireTok(t, tokens[0], KindNumber, tt.word, 1)
		require.Equal(t, tt.value, tokens[0].(Number).Value, tt.word)
	}
}

func TestLexerMinusAloneIsOperator(t *testing.T) {
	tokens, err := Tokenize("3 - -2")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	requireTok(t, tokens[1], KindOperator, "-", 3)
	requireTok(t, tokens[2], KindNumber, "-2", 5)
}

func TestLexerEmpty(t *testing.T) {
	tokens, err := Tokenize(" \t ")
	require.NoError(t, err)
	require.Len(t, tokens, 0)
}

func TestLexerUnknownToken(t *testing.T) {
	_, err := Tokenize("2 ^ 3")
	require.Error(t, err)

	var unknown *UnknownTokenError
	require.True(t, errors.As(err, &unknown))
	require.Equal(t, "^", unknown.Word)
	require.Equal(t, 3, unknown.Location.col)
	require.Equal(t, `col 3: unknown token "^"`, err.Error())
}

func TestLexerMalformedNumber(t *testing.T) {
	for _, word := range []string{"3abc", "1.2.3", "4)", "-.5x"} {
		_, err := Tokenize("1 + " + word)
		require.Error(t, err, word)

		var malformed *MalformedNumberError
		require.True(t, errors.As(err, &malformed), word)
		require.Equal(t, word, malformed.Word)
		require.Equal(t, 5, malformed.Location.col)
	}
}

func TestLexerNumberOutOfRange(t *testing.T) {
	_, err := Tokenize("1e400")
	require.Error(t, err)

	var malformed *MalformedNumberError
	require.True(t, errors.As(err, &malformed))
	require.True(t, errors.Is(err, strconv.ErrRange))
}
