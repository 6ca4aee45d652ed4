package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TEOF TokenType = iota
	TString
	TNumber
	TTrue
	TFalse
	TNil
	TIdentifier
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TEquals
	TComma
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TEOF:        "EOF",
		TString:     "String",
		TNumber:     "Number",
		TTrue:       "true",
		TFalse:      "false",
		TNil:        "nil",
		TIdentifier: "Identifier",
		TLCurl:      "'{'",
		TRCurl:      "'}'",
		TLSquare:    "'['",
		TRSquare:    "']'",
		TEquals:     "'='",
		TComma:      "','",
	}[t]
	if ok {
		return s
	}
	return "<unknown token>"
}

// Token is one lexical unit. Text holds the decoded string payload for
// TString, the name for TIdentifier and the raw source text for TNumber.
type Token struct {
	Type   TokenType
	Text   string
	Number float64
	Line   int
	Offset int
}

// Info describes the token for error messages.
func (t *Token) Info() string {
	switch t.Type {
	case TString:
		return fmt.Sprintf("String %s", strconv.Quote(t.Text))
	case TNumber:
		return fmt.Sprintf("Number %s", t.Text)
	case TIdentifier:
		return fmt.Sprintf("Identifier %s", t.Text)
	default:
		return t.Type.String()
	}
}

func (t *Token) String() string {
	return fmt.Sprintf("%s at line %d", t.Info(), t.Line)
}
