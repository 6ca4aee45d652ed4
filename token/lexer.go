package token

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

const bom = "\uFEFF"

// Lexer turns literal text into tokens, one per call to Next.
type Lexer struct {
	src  string
	i    int
	line int
}

func NewLexer(src string) *Lexer {
	lx := &Lexer{src: src, line: 1}
	if strings.HasPrefix(src, bom) {
		lx.i = len(bom)
	}
	return lx
}

// Line is the current line, counting from 1.
func (lx *Lexer) Line() int {
	return lx.line
}

// Offset is the byte offset of the cursor in the source.
func (lx *Lexer) Offset() int {
	return lx.i
}

func (lx *Lexer) Next() (Token, error) {
	if err := lx.skip(); err != nil {
		return Token{Type: TEOF, Line: lx.line, Offset: lx.i}, err
	}
	tok := Token{Line: lx.line, Offset: lx.i}
	if lx.i >= len(lx.src) {
		tok.Type = TEOF
		return tok, nil
	}
	c := lx.src[lx.i]
	switch c {
	case '{':
		return lx.punct(tok, TLCurl)
	case '}':
		return lx.punct(tok, TRCurl)
	case '[':
		return lx.punct(tok, TLSquare)
	case ']':
		return lx.punct(tok, TRSquare)
	case '=':
		return lx.punct(tok, TEquals)
	case ',':
		return lx.punct(tok, TComma)
	case '"', '\'':
		return lx.readString(tok)
	}
	if c == '-' || c == '.' || asciiDigit(c) {
		return lx.readNumber(tok)
	}
	r, _ := utf8.DecodeRuneInString(lx.src[lx.i:])
	if IsIdentStart(r) {
		return lx.readIdentifier(tok)
	}
	return tok, NewSyntaxErr(lx.line, "unexpected character %q", r)
}

func (lx *Lexer) skip() error {
	for lx.i < len(lx.src) {
		switch lx.src[lx.i] {
		case ' ', '\t', '\r':
			lx.i++
		case '\n':
			lx.line++
			lx.i++
		case '-':
			if !strings.HasPrefix(lx.src[lx.i:], "--") {
				return nil
			}
			start := lx.line
			end, lines, err := CommentEnd(lx.src, lx.i)
			lx.i = end
			lx.line += lines
			if err != nil {
				return NewSyntaxErr(start, "%s", err)
			}
		default:
			return nil
		}
	}
	return nil
}

func (lx *Lexer) punct(tok Token, tt TokenType) (Token, error) {
	tok.Type = tt
	tok.Text = lx.src[lx.i : lx.i+1]
	lx.i++
	return tok, nil
}

func (lx *Lexer) readString(tok Token) (Token, error) {
	end, lines, err := StringEnd(lx.src, lx.i)
	if err != nil {
		lx.i = end
		lx.line += lines
		return tok, NewSyntaxErr(tok.Line, "%s", err)
	}
	tok.Type = TString
	tok.Text = unescape(lx.src[lx.i+1 : end-1])
	lx.i = end
	lx.line += lines
	return tok, nil
}

func (lx *Lexer) readNumber(tok Token) (Token, error) {
	j := lx.i
	n := len(lx.src)
	if lx.src[j] == '-' {
		j++
	}
	j = lx.digits(j)
	if j < n && lx.src[j] == '.' {
		j = lx.digits(j + 1)
	}
	if j < n && (lx.src[j] == 'e' || lx.src[j] == 'E') {
		j++
		if j < n && (lx.src[j] == '+' || lx.src[j] == '-') {
			j++
		}
		j = lx.digits(j)
	}
	text := lx.src[lx.i:j]
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var nErr *strconv.NumError
		if !errors.As(err, &nErr) || nErr.Err != strconv.ErrRange {
			return tok, NewSyntaxErr(lx.line, "invalid number %q", text)
		}
	}
	lx.i = j
	tok.Type = TNumber
	tok.Text = text
	tok.Number = f
	return tok, nil
}

func (lx *Lexer) digits(j int) int {
	for j < len(lx.src) && asciiDigit(lx.src[j]) {
		j++
	}
	return j
}

func (lx *Lexer) readIdentifier(tok Token) (Token, error) {
	j := lx.i
	for j < len(lx.src) {
		r, sz := utf8.DecodeRuneInString(lx.src[j:])
		if !IsIdentPart(r) {
			break
		}
		j += sz
	}
	tok.Text = lx.src[lx.i:j]
	lx.i = j
	switch tok.Text {
	case "true":
		tok.Type = TTrue
	case "false":
		tok.Type = TFalse
	case "nil":
		tok.Type = TNil
	default:
		tok.Type = TIdentifier
	}
	return tok, nil
}

// Tokenize lexes all of src. The final token is always TEOF.
func Tokenize(src string) ([]Token, error) {
	lx := NewLexer(src)
	var res []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			return nil, err
		}
		res = append(res, tok)
		if tok.Type == TEOF {
			return res, nil
		}
	}
}
