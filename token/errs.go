package token

import (
	"errors"
	"fmt"
)

var (
	ErrSyntax        = errors.New("syntax error")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// SyntaxError is a malformed token stream at a given line.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (line %d): %s", ErrSyntax.Error(), e.Line, e.Msg)
}

func NewSyntaxErr(line int, format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
