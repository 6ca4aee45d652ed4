package savedvars

import (
	"errors"
	"strings"

	"github.com/rpbox-app/savedvars/guard"
	"github.com/rpbox-app/savedvars/ir"
	"github.com/rpbox-app/savedvars/parse"
	"github.com/rpbox-app/savedvars/token"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrIO           = errors.New("i/o error")

	ErrSyntax           = token.ErrSyntax
	ErrUnexpectedEOF    = token.ErrUnexpectedEOF
	ErrUnexpectedToken  = parse.ErrUnexpectedToken
	ErrVariableNotFound = parse.ErrVariableNotFound
	ErrTargetRunning    = guard.ErrTargetRunning
	ErrBackupFailed     = guard.ErrBackupFailed
	ErrWriteFailed      = guard.ErrWriteFailed
	ErrDataFormat       = ir.ErrDataFormat
)

type (
	SyntaxError          = token.SyntaxError
	UnexpectedTokenError = parse.UnexpectedTokenError
)

// BatchError reports a WriteAll that stopped at Path. Files in Committed
// were already written and keep their new content.
type BatchError struct {
	Committed []string
	Path      string
	Err       error
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

func (e *BatchError) Error() string {
	msg := "batch stopped at " + e.Path + ": " + e.Err.Error()
	if len(e.Committed) == 0 {
		return msg
	}
	return msg + " (already written: " + strings.Join(e.Committed, ", ") + ")"
}
