package parse

import (
	"fmt"
	"strings"

	"github.com/rpbox-app/savedvars/debug"
	"github.com/rpbox-app/savedvars/ir"
	"github.com/rpbox-app/savedvars/token"
)

// Parse returns the value assigned to the top level variable name in d.
// Invalid UTF-8 in d is replaced with U+FFFD.
func Parse(d []byte, name string, opts ...ParseOption) (*ir.Value, error) {
	return ParseString(decode(d), name, opts...)
}

func decode(d []byte) string {
	return strings.ToValidUTF8(string(d), "\uFFFD")
}

func ParseString(src, name string, opts ...ParseOption) (*ir.Value, error) {
	pOpts := newOpts(opts)
	p, err := newParser(src, pOpts)
	if err != nil {
		return nil, pOpts.wrap(err)
	}
	res, err := p.find(name)
	return res, pOpts.wrap(err)
}

// Literal parses d as exactly one literal with nothing but comments and
// whitespace around it.
func Literal(d []byte, opts ...ParseOption) (*ir.Value, error) {
	pOpts := newOpts(opts)
	p, err := newParser(decode(d), pOpts)
	if err != nil {
		return nil, pOpts.wrap(err)
	}
	res, err := p.parseValue()
	if err != nil {
		return nil, pOpts.wrap(err)
	}
	if p.tok.Type != token.TEOF {
		return nil, pOpts.wrap(newUnexpected(token.TEOF.String(), p.tok))
	}
	return res, nil
}

// Names lists the top level assignment names of d in file order. A name
// assigned more than once is listed once.
func Names(d []byte, opts ...ParseOption) ([]string, error) {
	pOpts := newOpts(opts)
	p, err := newParser(decode(d), pOpts)
	if err != nil {
		return nil, pOpts.wrap(err)
	}
	var res []string
	seen := map[string]bool{}
	for p.tok.Type != token.TEOF {
		tok := p.tok
		if tok.Type != token.TIdentifier {
			if err := p.advance(); err != nil {
				return nil, pOpts.wrap(err)
			}
			continue
		}
		if err := p.advance(); err != nil {
			return nil, pOpts.wrap(err)
		}
		if p.tok.Type != token.TEquals {
			continue
		}
		if !seen[tok.Text] {
			seen[tok.Text] = true
			res = append(res, tok.Text)
		}
		if err := p.advance(); err != nil {
			return nil, pOpts.wrap(err)
		}
		if err := p.skipValue(); err != nil {
			return nil, pOpts.wrap(err)
		}
	}
	return res, nil
}

type parser struct {
	lx    *token.Lexer
	tok   token.Token
	opts  *parseOpts
	depth int
}

func newParser(src string, opts *parseOpts) (*parser, error) {
	p := &parser{lx: token.NewLexer(src), opts: opts}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.lx.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

func (p *parser) expect(tt token.TokenType) error {
	if p.tok.Type != tt {
		return newUnexpected(tt.String(), p.tok)
	}
	return p.advance()
}

func (p *parser) find(name string) (*ir.Value, error) {
	for {
		switch p.tok.Type {
		case token.TEOF:
			return nil, fmt.Errorf("%w: %s", ErrVariableNotFound, name)
		case token.TIdentifier:
			if p.tok.Text == name {
				if debug.Parse() {
					debug.Logf("parse: %s found at line %d\n", name, p.tok.Line)
				}
				if err := p.advance(); err != nil {
					return nil, err
				}
				if err := p.expect(token.TEquals); err != nil {
					return nil, err
				}
				return p.parseValue()
			}
			if err := p.skipAssignment(); err != nil {
				return nil, err
			}
		default:
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
}

// skipAssignment steps over "ident = value" without building the value. A
// lone identifier is stepped over by itself.
func (p *parser) skipAssignment() error {
	if debug.Parse() {
		debug.Logf("parse: skip %s at line %d\n", p.tok.Text, p.tok.Line)
	}
	if err := p.advance(); err != nil {
		return err
	}
	if p.tok.Type != token.TEquals {
		return nil
	}
	if err := p.advance(); err != nil {
		return err
	}
	return p.skipValue()
}

func (p *parser) skipValue() error {
	if p.tok.Type != token.TLCurl {
		if p.tok.Type == token.TEOF {
			return nil
		}
		return p.advance()
	}
	open := p.tok.Line
	depth := 0
	for {
		switch p.tok.Type {
		case token.TLCurl:
			depth++
		case token.TRCurl:
			depth--
		case token.TEOF:
			return fmt.Errorf("%w: table opened at line %d", ErrUnexpectedEOF, open)
		}
		if err := p.advance(); err != nil {
			return err
		}
		if depth == 0 {
			return nil
		}
	}
}

func (p *parser) parseValue() (*ir.Value, error) {
	tok := p.tok
	var res *ir.Value
	switch tok.Type {
	case token.TString:
		res = ir.FromString(tok.Text)
	case token.TNumber:
		res = ir.FromNumber(tok.Number)
	case token.TTrue:
		res = ir.FromBool(true)
	case token.TFalse:
		res = ir.FromBool(false)
	case token.TNil:
		res = ir.Null()
	case token.TLCurl:
		return p.parseTable()
	case token.TEOF:
		return nil, fmt.Errorf("%w: expected value at line %d", ErrUnexpectedEOF, tok.Line)
	default:
		return nil, token.NewSyntaxErr(tok.Line, "expected value, got %s", tok.Info())
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return res, nil
}

type entry struct {
	key   string
	keyed bool
	val   *ir.Value
}

func (p *parser) parseTable() (*ir.Value, error) {
	open := p.tok.Line
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.opts.maxDepth {
		return nil, token.NewSyntaxErr(open, "table nesting exceeds %d", p.opts.maxDepth)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var (
		keyed      []entry
		positional []*ir.Value
	)
	for {
		switch p.tok.Type {
		case token.TRCurl:
			if err := p.advance(); err != nil {
				return nil, err
			}
			return buildTable(keyed, positional), nil
		case token.TEOF:
			return nil, fmt.Errorf("%w: table opened at line %d", ErrUnexpectedEOF, open)
		}
		e, err := p.parseEntry()
		if err != nil {
			return nil, err
		}
		if e.keyed {
			keyed = append(keyed, e)
		} else {
			positional = append(positional, e.val)
		}
		switch p.tok.Type {
		case token.TComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case token.TRCurl:
		case token.TEOF:
			return nil, fmt.Errorf("%w: table opened at line %d", ErrUnexpectedEOF, open)
		default:
			return nil, newUnexpected("',' or '}'", p.tok)
		}
	}
}

func buildTable(keyed []entry, positional []*ir.Value) *ir.Value {
	if len(keyed) == 0 && len(positional) > 0 {
		return ir.FromSlice(positional)
	}
	res := ir.NewObject()
	for i := range keyed {
		res.Set(keyed[i].key, keyed[i].val)
	}
	for i, v := range positional {
		res.Set(ir.NumberKey(float64(i+1)), v)
	}
	return res
}

func (p *parser) parseEntry() (entry, error) {
	switch p.tok.Type {
	case token.TLSquare:
		if err := p.advance(); err != nil {
			return entry{}, err
		}
		var key string
		switch p.tok.Type {
		case token.TString:
			key = p.tok.Text
		case token.TNumber:
			key = ir.NumberKey(p.tok.Number)
		default:
			return entry{}, token.NewSyntaxErr(p.tok.Line, "table key must be a string or number, got %s", p.tok.Info())
		}
		if err := p.advance(); err != nil {
			return entry{}, err
		}
		if err := p.expect(token.TRSquare); err != nil {
			return entry{}, err
		}
		if err := p.expect(token.TEquals); err != nil {
			return entry{}, err
		}
		v, err := p.parseValue()
		if err != nil {
			return entry{}, err
		}
		return entry{key: key, keyed: true, val: v}, nil
	case token.TIdentifier:
		text := p.tok.Text
		if err := p.advance(); err != nil {
			return entry{}, err
		}
		if p.tok.Type != token.TEquals {
			return entry{val: ir.FromString(text)}, nil
		}
		if err := p.advance(); err != nil {
			return entry{}, err
		}
		v, err := p.parseValue()
		if err != nil {
			return entry{}, err
		}
		return entry{key: text, keyed: true, val: v}, nil
	}
	v, err := p.parseValue()
	if err != nil {
		return entry{}, err
	}
	return entry{val: v}, nil
}
