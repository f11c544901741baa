package lib

import "fmt"

type Kind int

const (
	KindUnknown Kind = iota
	KindNumber
	KindLeftParen
	KindRightParen
	KindOperator
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindLeftParen:
		return "left paren"
	case KindRightParen:
		return "right paren"
	case KindOperator:
		return "operator"
	default:
		return "unknown"
	}
}

type charLocation struct {
	line int
	col  int
}

func (c charLocation) String() string {
	return fmt.Sprintf("col %d", c.col)
}

// Token is one whitespace delimited word of an expression. The set of
// implementations is closed: Number, LeftParen, RightParen and Operator.
type Token interface {
	Kind() Kind
	Text() string
	location() charLocation
}

type Number struct {
	Value float64
	text  string
	loc   charLocation
}

type LeftParen struct {
	loc charLocation
}

type RightParen struct {
	loc charLocation
}

type Operator struct {
	Symbol     rune
	Precedence int
	loc        charLocation
}

func (n Number) Kind() Kind     { return KindNumber }
func (LeftParen) Kind() Kind    { return KindLeftParen }
func (RightParen) Kind() Kind   { return KindRightParen }
func (o Operator) Kind() Kind   { return KindOperator }
func (n Number) Text() string   { return n.text }
func (LeftParen) Text() string  { return "(" }
func (RightParen) Text() string { return ")" }
func (o Operator) Text() string { return string(o.Symbol) }

func (n Number) location() charLocation     { return n.loc }
func (p LeftParen) location() charLocation  { return p.loc }
func (p RightParen) location() charLocation { return p.loc }
func (o Operator) location() charLocation   { return o.loc }

// Operator precedences. Higher binds tighter.
const (
	precedenceAdditive       = 2
	precedenceMultiplicative = 3
)

func lookupOperator(word string) (Operator, bool) {
	switch word {
	case "*", "/", "%":
		return Operator{Symbol: rune(word[0]), Precedence: precedenceMultiplicative}, true
	case "+", "-":
		return Operator{Symbol: rune(word[0]), Precedence: precedenceAdditive}, true
	}
	return Operator{}, false
}
