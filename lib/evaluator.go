package lib

import "fortio.org/safecast"

// EvaluatePostfix reduces a postfix token sequence to a single value.
func EvaluatePostfix(postfix []Token) (float64, error) {
	return evaluate(newTokenBuffer(postfix...))
}

func evaluate(reader tokenReader) (float64, error) {
	operands := []float64{}

	for {
		tok, done := reader.Next()
		if done {
			break
		}

		switch t := tok.(type) {
		case Number:
			operands = append(operands, t.Value)
		case Operator:
			n := len(operands)
			if n < 2 {
				return 0, &StackUnderflowError{Operator: t}
			}
			left, right := operands[n-2], operands[n-1]
			result, err := apply(t, left, right)
			if err != nil {
				return 0, err
			}
			operands = append(operands[:n-2], result)
		default:
			return 0, &UnknownTokenError{Word: tok.Text(), Location: tok.location()}
		}
	}

	switch len(operands) {
	case 0:
		return 0, ErrEmptyExpression
	case 1:
		return operands[0], nil
	default:
		return 0, &ExcessOperandsError{Count: len(operands)}
	}
}

func apply(op Operator, left float64, right float64) (float64, error) {
	switch op.Symbol {
	case '*':
		return left * right, nil
	case '/':
		return left / right, nil
	case '+':
		return left + right, nil
	case '-':
		return left - right, nil
	case '%':
		return modulo(op, left, right)
	}
	return 0, &UnknownTokenError{Word: op.Text(), Location: op.loc}
}

// modulo truncates both operands toward zero and takes the integer remainder,
// so 7.9 % 2 is 1 rather than 1.9.
func modulo(op Operator, left float64, right float64) (float64, error) {
	l, err := truncate(op, left)
	if err != nil {
		return 0, err
	}
	r, err := truncate(op, right)
	if err != nil {
		return 0, err
	}
	if r == 0 {
		return 0, &ModuloByZeroError{Operator: op}
	}
	return float64(l % r), nil
}

func truncate(op Operator, v float64) (int64, error) {
	i, err := safecast.Truncate[int64](v)
	if err != nil {
		return 0, &ModuloRangeError{Operator: op, Value: v, Err: err}
	}
	return i, nil
}
