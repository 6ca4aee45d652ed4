package encode

import "github.com/rpbox-app/savedvars/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Depth sets the indentation depth of the enclosing context. The first line
// is never indented.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

// Indent sets the number of spaces per depth, 2 by default.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// NumericKeys writes object keys that are canonical non-negative integers
// as "[n]" rather than "["n"]".
func NumericKeys(v bool) EncodeOption {
	return func(es *EncState) { es.numericKeys = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
