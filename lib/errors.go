package lib

import (
	"errors"
	"fmt"
)

// ErrEmptyExpression is returned for a line that contains no tokens at all.
var ErrEmptyExpression = errors.New("empty expression")

type UnknownTokenError struct {
	Word     string
	Location charLocation
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("%s: unknown token %q", e.Location, e.Word)
}

type MalformedNumberError struct {
	Word     string
	Location charLocation
	Err      error
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("%s: malformed number %q", e.Location, e.Word)
}

func (e *MalformedNumberError) Unwrap() error {
	return e.Err
}

// UnmatchedParenError is returned for a ")" with no open "(" before it and
// for a "(" that is never closed.
type UnmatchedParenError struct {
	Paren Token
}

func (e *UnmatchedParenError) Error() string {
	if e.Paren.Kind() == KindLeftParen {
		return fmt.Sprintf("%s: unclosed \"(\"", e.Paren.location())
	}
	return fmt.Sprintf("%s: \")\" without matching \"(\"", e.Paren.location())
}

type StackUnderflowError struct {
	Operator Operator
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("%s: operator %q needs two operands", e.Operator.loc, e.Operator.Symbol)
}

// ExcessOperandsError is returned when evaluation ends with more than one
// value left, e.g. "2 3".
type ExcessOperandsError struct {
	Count int
}

func (e *ExcessOperandsError) Error() string {
	return fmt.Sprintf("%d operands left without an operator", e.Count)
}

type ModuloByZeroError struct {
	Operator Operator
}

func (e *ModuloByZeroError) Error() string {
	return fmt.Sprintf("%s: integer modulo by zero", e.Operator.loc)
}

type ModuloRangeError struct {
	Operator Operator
	Value    float64
	Err      error
}

func (e *ModuloRangeError) Error() string {
	return fmt.Sprintf("%s: modulo operand %g does not fit an integer", e.Operator.loc, e.Value)
}

func (e *ModuloRangeError) Unwrap() error {
	return e.Err
}

// LineError ties a failure to the 1-based input line it came from.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
