package lib

import "strings"

// Result is a successfully evaluated line.
type Result struct {
	Postfix []Token
	Value   float64

	resultPrecision int
}

// String renders the postfix tokens, each followed by a space, then "= " and
// the value, e.g. "6 2 / 3 * = 9".
func (r Result) String() string {
	var sb strings.Builder
	for _, tok := range r.Postfix {
		sb.WriteString(tok.Text())
		sb.WriteByte(' ')
	}
	sb.WriteString("= ")
	sb.WriteString(FormatResult(r.Value, r.resultPrecision))
	return sb.String()
}

// PostfixString renders only the postfix tokens, space separated.
func (r Result) PostfixString() string {
	parts := make([]string, 0, len(r.Postfix))
	for _, tok := range r.Postfix {
		parts = append(parts, tok.Text())
	}
	return strings.Join(parts, " ")
}

// Calculator evaluates expression lines with fixed formatting settings.
type Calculator struct {
	// Precision is the number of significant digits numbers are normalized to.
	Precision int
	// ResultPrecision is the number of significant digits printed for results;
	// negative means shortest round trip.
	ResultPrecision int
}

func NewCalculator() Calculator {
	return Calculator{Precision: DefaultPrecision, ResultPrecision: DefaultResultPrecision}
}

// Calculate evaluates a line with the default settings.
func Calculate(line string) (Result, error) {
	return NewCalculator().Calculate(line)
}

func (c Calculator) Calculate(line string) (Result, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return Result{}, err
	}
	if len(tokens) == 0 {
		return Result{}, ErrEmptyExpression
	}

	precision := c.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}
	postfix, err := toPostfix(newTokenBuffer(tokens...), precision)
	if err != nil {
		return Result{}, err
	}
	resultPrecision := c.ResultPrecision
	if resultPrecision == 0 {
		resultPrecision = DefaultResultPrecision
	}
	result := Result{Postfix: postfix.Tokens(), resultPrecision: resultPrecision}

	result.Value, err = evaluate(postfix)
	if err != nil {
		return Result{}, err
	}
	return result, nil
}
