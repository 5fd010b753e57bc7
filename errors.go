package gocalc

import (
	"errors"
	"fmt"
)

var (
	// ErrLex is the class of errors raised while scanning.
	ErrLex = errors.New("lex error")

	// ErrParse is the class of errors raised while parsing.
	ErrParse = errors.New("parse error")

	// ErrEval is the class of errors raised while evaluating.
	ErrEval = errors.New("eval error")
)

// UnexpectedCharacterError reports a character the scanner cannot classify.
type UnexpectedCharacterError struct {
	Char rune
	Pos  int
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("Unexpected character '%c' at position %d", e.Char, e.Pos)
}

func (e *UnexpectedCharacterError) Unwrap() error { return ErrLex }

func (e *UnexpectedCharacterError) Position() int { return e.Pos }

// UnexpectedTokenError reports a token outside the set the grammar accepts
// at that point. Expected is always the complete set.
type UnexpectedTokenError struct {
	Token    Token
	Pos      int
	Expected Kinds
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("Unexpected %v at position %d (expecting one of %v)", e.Token, e.Pos, e.Expected)
}

func (e *UnexpectedTokenError) Unwrap() error { return ErrParse }

func (e *UnexpectedTokenError) Position() int { return e.Token.Pos }

// InvalidIntegerError reports an integer literal that does not fit in int64.
type InvalidIntegerError struct {
	Token Token
	Err   error
}

func (e *InvalidIntegerError) Error() string {
	return fmt.Sprintf("Integer literal '%s' at position %d out of range", e.Token.Lit, e.Token.Pos)
}

func (e *InvalidIntegerError) Unwrap() []error { return []error{ErrParse, e.Err} }

func (e *InvalidIntegerError) Position() int { return e.Token.Pos }

// NestingError reports input nested deeper than Options.MaxDepth.
type NestingError struct {
	Token Token
	Limit int
}

func (e *NestingError) Error() string {
	return fmt.Sprintf("Nesting deeper than %d at position %d", e.Limit, e.Token.Pos)
}

func (e *NestingError) Unwrap() error { return ErrParse }

func (e *NestingError) Position() int { return e.Token.Pos }

// DivisionByZeroError is returned by Eval when the right operand of '/'
// evaluates to zero. Op is the '/' token.
type DivisionByZeroError struct {
	Op Token
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("Division by zero at position %d", e.Op.Pos)
}

func (e *DivisionByZeroError) Unwrap() error { return ErrEval }

func (e *DivisionByZeroError) Position() int { return e.Op.Pos }
