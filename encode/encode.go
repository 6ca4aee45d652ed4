package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/rpbox-app/savedvars/format"
	"github.com/rpbox-app/savedvars/ir"
)

type EncState struct {
	depth, indent int
	numericKeys   bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes v to w. Lua output is exactly what package parse reads back
// as v.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(v, w, es)
	case format.YAMLFormat:
		return encodeYAML(v, w)
	}
	return encode(v, w, es)
}

func encode(v *ir.Value, w io.Writer, es *EncState) error {
	if v == nil {
		return writeString(w, colorize(es, ir.NullType, ValueColor, "nil"))
	}
	switch v.Type {
	case ir.NullType:
		return writeString(w, colorize(es, v.Type, ValueColor, "nil"))
	case ir.BoolType:
		return writeString(w, colorize(es, v.Type, ValueColor, strconv.FormatBool(v.Bool)))
	case ir.NumberType:
		s, err := FormatNumber(v.Number)
		if err != nil {
			return err
		}
		return writeString(w, colorize(es, v.Type, ValueColor, s))
	case ir.StringType:
		return writeString(w, colorize(es, v.Type, ValueColor, Quote(v.String)))
	case ir.ArrayType, ir.ObjectType:
		return encodeTable(v, w, es)
	default:
		return fmt.Errorf("%w: unknown type %s", ErrEncoding, v.Type)
	}
}

func encodeTable(v *ir.Value, w io.Writer, es *EncState) error {
	if len(v.Values) == 0 {
		return writeString(w, colorize(es, v.Type, SepColor, "{}"))
	}
	if err := writeString(w, colorize(es, v.Type, SepColor, "{")+"\n"); err != nil {
		return err
	}
	inner := strings.Repeat(" ", es.indent*(es.depth+1))
	es.depth++
	for i, c := range v.Values {
		if err := writeString(w, inner); err != nil {
			return err
		}
		if v.Type == ir.ObjectType {
			key := colorize(es, ir.ObjectType, FieldColor, es.key(v.Fields[i]))
			if err := writeString(w, key+" "+colorize(es, ir.ObjectType, SepColor, "=")+" "); err != nil {
				return err
			}
		}
		if err := encode(c, w, es); err != nil {
			return err
		}
		if err := writeString(w, colorize(es, v.Type, SepColor, ",")+"\n"); err != nil {
			return err
		}
	}
	es.depth--
	outer := strings.Repeat(" ", es.indent*es.depth)
	return writeString(w, outer+colorize(es, v.Type, SepColor, "}"))
}

func (es *EncState) key(k string) string {
	if IsBareKey(k) {
		return k
	}
	if es.numericKeys && isIndex(k) {
		return "[" + k + "]"
	}
	return "[" + Quote(k) + "]"
}

func colorize(es *EncState, t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// FormatNumber renders f so that the lexer reads back the same float64.
// Magnitudes in [1e-6, 1e21) and zero use plain decimal notation, others use
// an exponent.
func FormatNumber(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: number %v has no literal form", ErrEncoding, f)
	}
	a := math.Abs(f)
	if f == 0 || (a >= 1e-6 && a < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
	return strconv.FormatFloat(f, 'g', -1, 64), nil
}

// Quote double quotes s, escaping backslash, double quote, newline, carriage
// return and tab. All other bytes are written as is.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

var reserved = map[string]bool{
	"and": true, "break": true, "do": true, "else": true, "elseif": true,
	"end": true, "false": true, "for": true, "function": true, "goto": true,
	"if": true, "in": true, "local": true, "nil": true, "not": true,
	"or": true, "repeat": true, "return": true, "then": true, "true": true,
	"until": true, "while": true,
}

// IsBareKey reports whether k can be written as an unquoted field name.
func IsBareKey(k string) bool {
	if k == "" || reserved[k] {
		return false
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func isIndex(k string) bool {
	if k == "" || len(k) > 15 || (k[0] == '0' && len(k) > 1) {
		return false
	}
	for i := 0; i < len(k); i++ {
		if k[i] < '0' || k[i] > '9' {
			return false
		}
	}
	return true
}

func encodeJSON(v *ir.Value, w io.Writer, es *EncState) error {
	d, err := v.MarshalJSON()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	buf := bytes.NewBuffer(nil)
	prefix := strings.Repeat(" ", es.indent*es.depth)
	if err := json.Indent(buf, d, prefix, strings.Repeat(" ", es.indent)); err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = buf.WriteTo(w)
	return err
}

func encodeYAML(v *ir.Value, w io.Writer) error {
	y, err := toYAML(v)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(y)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return writeString(w, strings.TrimSuffix(string(d), "\n"))
}

// toYAML converts v to values go-yaml encodes in order. Integral numbers
// become int64 so they print without a fraction.
func toYAML(v *ir.Value) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch v.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return v.Bool, nil
	case ir.NumberType:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return nil, fmt.Errorf("%w: number %v", ErrEncoding, v.Number)
		}
		if v.Number == math.Trunc(v.Number) && math.Abs(v.Number) < 1<<53 {
			return int64(v.Number), nil
		}
		return v.Number, nil
	case ir.StringType:
		return v.String, nil
	case ir.ArrayType:
		res := make([]any, len(v.Values))
		for i, c := range v.Values {
			y, err := toYAML(c)
			if err != nil {
				return nil, err
			}
			res[i] = y
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(v.Values))
		for i, c := range v.Values {
			y, err := toYAML(c)
			if err != nil {
				return nil, err
			}
			res[i] = yaml.MapItem{Key: v.Fields[i], Value: y}
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: unknown type %s", ErrEncoding, v.Type)
}
