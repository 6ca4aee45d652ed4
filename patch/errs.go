package patch

import (
	"errors"

	"github.com/rpbox-app/savedvars/token"
)

var (
	ErrMalformed     = errors.New("malformed assignment")
	ErrSyntax        = token.ErrSyntax
	ErrUnexpectedEOF = token.ErrUnexpectedEOF
)
