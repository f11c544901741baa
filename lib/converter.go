package lib

// converter turns an infix token stream into postfix order using the
// shunting-yard algorithm.
type converter struct {
	reader    tokenReader
	output    *tokenBuffer
	operators []Token
	precision int
}

// ToPostfix reorders infix tokens into postfix (RPN) order. Number tokens are
// normalized to DefaultPrecision significant digits on the way through.
func ToPostfix(tokens []Token) ([]Token, error) {
	out, err := toPostfix(newTokenBuffer(tokens...), DefaultPrecision)
	if err != nil {
		return nil, err
	}
	return out.Tokens(), nil
}

func toPostfix(reader tokenReader, precision int) (*tokenBuffer, error) {
	c := converter{
		reader:    reader,
		output:    newTokenBuffer(),
		operators: []Token{},
		precision: precision,
	}
	if err := c.scan(); err != nil {
		return nil, err
	}
	return c.output, nil
}

func (c *converter) scan() error {
	for {
		tok, done := c.reader.Next()
		if done {
			break
		}

		switch t := tok.(type) {
		case Number:
			c.output.Write(t.normalize(c.precision))
		case Operator:
			c.pushOperator(t)
		case LeftParen:
			c.push(t)
		case RightParen:
			if err := c.closeParen(t); err != nil {
				return err
			}
		default:
			return &UnknownTokenError{Word: tok.Text(), Location: tok.location()}
		}
	}

	for {
		top, ok := c.pop()
		if !ok {
			return nil
		}
		if top.Kind() == KindLeftParen {
			return &UnmatchedParenError{Paren: top}
		}
		c.output.Write(top)
	}
}

// pushOperator pops every stacked operator that binds at least as tightly as
// o1, so equal precedence groups left to right.
func (c *converter) pushOperator(o1 Operator) {
	for {
		top, ok := c.peek()
		if !ok {
			break
		}
		o2, isOp := top.(Operator)
		if !isOp || o1.Precedence > o2.Precedence {
			break
		}
		c.pop()
		c.output.Write(o2)
	}
	c.push(o1)
}

func (c *converter) closeParen(rp RightParen) error {
	for {
		top, ok := c.pop()
		if !ok {
			return &UnmatchedParenError{Paren: rp}
		}
		if top.Kind() == KindLeftParen {
			return nil
		}
		c.output.Write(top)
	}
}

func (c *converter) push(tok Token) {
	c.operators = append(c.operators, tok)
}

func (c *converter) peek() (Token, bool) {
	if len(c.operators) == 0 {
		return nil, false
	}
	return c.operators[len(c.operators)-1], true
}

func (c *converter) pop() (Token, bool) {
	top, ok := c.peek()
	if ok {
		c.operators = c.operators[:len(c.operators)-1]
	}
	return top, ok
}
