package parse

import (
	"errors"
	"fmt"

	"github.com/rpbox-app/savedvars/token"
)

var (
	ErrSyntax           = token.ErrSyntax
	ErrUnexpectedEOF    = token.ErrUnexpectedEOF
	ErrUnexpectedToken  = errors.New("unexpected token")
	ErrVariableNotFound = errors.New("variable not found")
)

// UnexpectedTokenError is a token that does not fit the grammar where it
// occurs.
type UnexpectedTokenError struct {
	Expected string
	Actual   string
	Line     int
}

func (e *UnexpectedTokenError) Unwrap() error {
	return ErrUnexpectedToken
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("%s (line %d): expected %s, got %s", ErrUnexpectedToken.Error(), e.Line, e.Expected, e.Actual)
}

func newUnexpected(expected string, actual token.Token) *UnexpectedTokenError {
	return &UnexpectedTokenError{
		Expected: expected,
		Actual:   actual.Info(),
		Line:     actual.Line,
	}
}
