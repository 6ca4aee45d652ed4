package patch

import (
	"fmt"
	"unicode/utf8"

	"github.com/rpbox-app/savedvars/debug"
	"github.com/rpbox-app/savedvars/token"
)

// Span is the extent of a top level assignment "name = value". Offsets are
// byte offsets into the source; End is exclusive.
type Span struct {
	Start      int
	Eq         int
	ValueStart int
	End        int
	Line       int
}

type scanner struct {
	src  string
	i    int
	line int
}

// Locate finds the first top level assignment to name in src.
func Locate(src []byte, name string) (Span, bool, error) {
	sc := &scanner{src: string(src), line: 1}
	depth := 0
	n := len(sc.src)
	for sc.i < n {
		c := sc.src[sc.i]
		switch {
		case c == '\n':
			sc.line++
			sc.i++
		case c == '-' && sc.i+1 < n && sc.src[sc.i+1] == '-':
			if err := sc.comment(); err != nil {
				return Span{}, false, err
			}
		case c == '"' || c == '\'':
			if err := sc.str(); err != nil {
				return Span{}, false, err
			}
		case c == '{':
			depth++
			sc.i++
		case c == '}':
			if depth == 0 {
				return Span{}, false, token.NewSyntaxErr(sc.line, "unbalanced '}'")
			}
			depth--
			sc.i++
		case '0' <= c && c <= '9':
			sc.run(func(r rune) bool { return token.IsIdentPart(r) || r == '.' })
		default:
			r, sz := utf8.DecodeRuneInString(sc.src[sc.i:])
			if !token.IsIdentStart(r) {
				sc.i += sz
				continue
			}
			start, line := sc.i, sc.line
			ident := sc.run(token.IsIdentPart)
			if depth != 0 || ident != name {
				continue
			}
			eq, err := sc.skipSpace()
			if err != nil {
				return Span{}, false, err
			}
			if eq >= n || sc.src[eq] != '=' {
				continue
			}
			sp := Span{Start: start, Eq: eq, Line: line}
			sc.i = eq + 1
			if err := sc.value(&sp); err != nil {
				return Span{}, false, err
			}
			if debug.Patch() {
				debug.Logf("patch: %s at line %d [%d:%d]\n", name, sp.Line, sp.Start, sp.End)
			}
			return sp, true, nil
		}
	}
	return Span{}, false, nil
}

func (sc *scanner) run(f func(rune) bool) string {
	start := sc.i
	for sc.i < len(sc.src) {
		r, sz := utf8.DecodeRuneInString(sc.src[sc.i:])
		if !f(r) {
			break
		}
		sc.i += sz
	}
	return sc.src[start:sc.i]
}

func (sc *scanner) comment() error {
	end, lines, err := token.CommentEnd(sc.src, sc.i)
	if err != nil {
		return token.NewSyntaxErr(sc.line, "%s", err)
	}
	sc.i = end
	sc.line += lines
	return nil
}

func (sc *scanner) str() error {
	end, lines, err := token.StringEnd(sc.src, sc.i)
	if err != nil {
		return token.NewSyntaxErr(sc.line, "%s", err)
	}
	sc.i = end
	sc.line += lines
	return nil
}

// skipSpace returns the offset of the next byte that is neither whitespace
// nor part of a comment, without moving the cursor.
func (sc *scanner) skipSpace() (int, error) {
	save, saveLine := sc.i, sc.line
	defer func() { sc.i, sc.line = save, saveLine }()
	if err := sc.space(); err != nil {
		return 0, err
	}
	return sc.i, nil
}

func (sc *scanner) space() error {
	for sc.i < len(sc.src) {
		switch sc.src[sc.i] {
		case ' ', '\t', '\r':
			sc.i++
		case '\n':
			sc.line++
			sc.i++
		case '-':
			if sc.i+1 >= len(sc.src) || sc.src[sc.i+1] != '-' {
				return nil
			}
			if err := sc.comment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

// value fills in the value bounds of sp starting at the cursor, which is
// just past '='.
func (sc *scanner) value(sp *Span) error {
	if err := sc.space(); err != nil {
		return err
	}
	if sc.i >= len(sc.src) {
		return fmt.Errorf("%w: missing value at line %d", ErrMalformed, sc.line)
	}
	sp.ValueStart = sc.i
	if sc.src[sc.i] != '{' {
		lx := token.NewLexer(sc.src[sc.i:])
		tok, err := lx.Next()
		if err != nil {
			return err
		}
		switch tok.Type {
		case token.TString, token.TNumber, token.TTrue, token.TFalse, token.TNil:
			sp.End = sc.i + lx.Offset()
			return nil
		}
		return fmt.Errorf("%w: expected value at line %d, got %s", ErrMalformed, sc.line, tok.Info())
	}
	open := sc.line
	depth := 0
	for sc.i < len(sc.src) {
		c := sc.src[sc.i]
		switch {
		case c == '\n':
			sc.line++
			sc.i++
		case c == '-' && sc.i+1 < len(sc.src) && sc.src[sc.i+1] == '-':
			if err := sc.comment(); err != nil {
				return err
			}
		case c == '"' || c == '\'':
			if err := sc.str(); err != nil {
				return err
			}
		case c == '{':
			depth++
			sc.i++
		case c == '}':
			depth--
			sc.i++
			if depth == 0 {
				sp.End = sc.i
				return nil
			}
		default:
			sc.i++
		}
	}
	return fmt.Errorf("%w: table opened at line %d", ErrUnexpectedEOF, open)
}
