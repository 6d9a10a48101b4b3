package expr

import (
	"errors"
	"fmt"
)

// ErrEmptyExpression signals empty or whitespace-only input. Callers treat
// "no expression yet" differently from a malformed one, so this is a
// distinct sentinel rather than a generic parse failure.
var ErrEmptyExpression = errors.New("empty expression")

// ParseError represents a syntax error in expression text.
type ParseError struct {
	Message string `json:"message"`
	Pos     int    `json:"pos"`
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Message)
}

// EvalError represents a semantic failure during evaluation, such as an
// unknown function name or a wrong argument count. Numeric edge cases are
// not EvalErrors; they resolve to the invalid sentinel instead.
type EvalError struct {
	Message string `json:"message"`
}

func (e *EvalError) Error() string {
	return "evaluation error: " + e.Message
}

func evalErrorf(format string, args ...any) *EvalError {
	return &EvalError{Message: fmt.Sprintf(format, args...)}
}
