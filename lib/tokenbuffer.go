package lib

// tokenBuffer is a FIFO queue of tokens. The converter reads the tokenizer's
// output from one and writes its postfix output into another, which the
// evaluator then drains.
type tokenBuffer struct {
	toks []Token
	head int
}

func newTokenBuffer(toks ...Token) *tokenBuffer {
	return &tokenBuffer{toks: toks}
}

func (tb *tokenBuffer) Next() (Token, bool) {
	tok, done := tb.Peek()
	if !done {
		tb.head++
	}
	return tok, done
}

func (tb *tokenBuffer) Peek() (Token, bool) {
	if tb.head >= len(tb.toks) {
		return nil, true
	}
	return tb.toks[tb.head], false
}

func (tb *tokenBuffer) Write(tok Token) {
	tb.toks = append(tb.toks, tok)
}

func (tb *tokenBuffer) Len() int {
	return len(tb.toks) - tb.head
}

// Tokens returns the tokens not yet read, in order.
func (tb *tokenBuffer) Tokens() []Token {
	out := make([]Token, tb.Len())
	copy(out, tb.toks[tb.head:])
	return out
}
