package eval

import (
	"maps"
	"os"
	"slices"

	"github.com/expr-lang/expr"

	"github.com/rpbox-app/savedvars/encode"
	"github.com/rpbox-app/savedvars/ir"
)

var builtin = map[string]bool{
	"getpath":    true,
	"sortedkeys": true,
	"checksum":   true,
	"literal":    true,
	"getenv":     true,
}

func exprOpts(doc *ir.Value) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := GetPath(doc, params[0].(string))
			if err != nil {
				return nil, err
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("sortedkeys", func(params ...any) (any, error) {
			m, ok := params[0].(map[string]any)
			if !ok {
				return []string{}, nil
			}
			return slices.Sorted(maps.Keys(m)), nil
		},
			new(func(any) []string)),
		expr.Function("checksum", func(params ...any) (any, error) {
			v, err := ir.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			return v.Checksum()
		},
			new(func(any) string)),
		expr.Function("literal", func(params ...any) (any, error) {
			v, err := ir.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			return encode.String(v)
		},
			new(func(any) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
