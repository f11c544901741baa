package lib

import (
	"errors"
	"strconv"
)

// Tokenize splits one line of text into tokens, one per whitespace delimited
// word, in input order.
func Tokenize(line string) ([]Token, error) {
	tokens := []Token{}
	err := lex(line, func(t Token) {
		tokens = append(tokens, t)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func lex(line string, emit func(Token)) error {
	l := newLexer(line, emit)
	return l.scan()
}

type lexer struct {
	src              []rune
	length           int
	currentCharIndex int
	currentLocation  charLocation
	tokenStartIndex  int
	tokenLocation    charLocation
	emitCallback     func(Token)
}

func newLexer(line string, emit func(Token)) *lexer {
	src := []rune(line)
	return &lexer{
		src:              src,
		length:           len(src),
		currentCharIndex: 0,
		currentLocation:  charLocation{line: 1, col: 1},
		tokenStartIndex:  0,
		tokenLocation:    charLocation{line: 1, col: 1},
		emitCallback:     emit,
	}
}

func (l *lexer) advance() (rune, bool) {
	if l.currentCharIndex >= l.length {
		l.currentCharIndex++
		return 0, false
	}
	ch := l.src[l.currentCharIndex]
	l.currentCharIndex++
	if ch == '\n' {
		l.currentLocation.line++
		l.currentLocation.col = 1
	} else {
		l.currentLocation.col++
	}
	return ch, true
}

func (l *lexer) scan() error {
	for {
		more, err := l.next()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

func (l *lexer) next() (bool, error) {
	ch, ok := l.advance()
	if !ok {
		return false, l.endWord()
	}

	switch ch {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true, l.endWord()
	default:
		// keep going with this word
		return true, nil
	}
}

func (l *lexer) isFirstCharOfToken() bool {
	return l.currentCharIndex-1 == l.tokenStartIndex
}

func (l *lexer) endWord() error {
	defer l.resetToken()
	if l.isFirstCharOfToken() {
		return nil
	}
	word := string(l.src[l.tokenStartIndex : l.currentCharIndex-1])
	tok, err := classify(word, l.tokenLocation)
	if err != nil {
		return err
	}
	l.emitCallback(tok)
	return nil
}

func (l *lexer) resetToken() {
	l.tokenLocation = l.currentLocation
	l.tokenStartIndex = l.currentCharIndex
}

func classify(word string, loc charLocation) (Token, error) {
	value, err := strconv.ParseFloat(word, 64)
	if err == nil {
		return Number{Value: value, text: word, loc: loc}, nil
	}
	if errors.Is(err, strconv.ErrRange) || hasNumericPrefix(word) {
		return nil, &MalformedNumberError{Word: word, Location: loc, Err: err}
	}

	switch word {
	case "(":
		return LeftParen{loc: loc}, nil
	case ")":
		return RightParen{loc: loc}, nil
	}

	op, ok := lookupOperator(word)
	if !ok {
		return nil, &UnknownTokenError{Word: word, Location: loc}
	}
	op.loc = loc
	return op, nil
}

// hasNumericPrefix reports whether a C style numeric parse would accept some
// leading part of word.
func hasNumericPrefix(word string) bool {
	i := 0
	if i < len(word) && (word[i] == '+' || word[i] == '-') {
		i++
	}
	if i < len(word) && word[i] == '.' {
		i++
	}
	return i < len(word) && isDigit(word[i])
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
