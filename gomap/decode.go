// Package gomap moves values between the [ir.Value] model and caller Go
// types. Go values are bridged through their JSON form, so struct fields
// follow encoding/json tags.
package gomap

import (
	"encoding/json"
	"fmt"

	"github.com/rpbox-app/savedvars/ir"
	"github.com/rpbox-app/savedvars/parse"
)

// ValueFromer is implemented by types that decode themselves from a Value.
type ValueFromer interface {
	FromValue(*ir.Value) error
}

// ValueToer is implemented by types that encode themselves as a Value.
type ValueToer interface {
	ToValue() (*ir.Value, error)
}

// Load decodes the top level variable name of the literal text d into p.
func Load(d []byte, name string, p any, opts ...parse.ParseOption) error {
	v, err := parse.Parse(d, name, opts...)
	if err != nil {
		return err
	}
	return Decode(v, p)
}

// Decode stores v in the value pointed to by p.
func Decode(v *ir.Value, p any) error {
	if x, ok := p.(ValueFromer); ok {
		return x.FromValue(v)
	}
	d, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	if err := json.Unmarshal(d, p); err != nil {
		return fmt.Errorf("%w: decoding %s into %T: %w", ir.ErrDataFormat, v.Type, p, err)
	}
	return nil
}

// Encode converts x to a Value. Struct fields keep their declaration order.
func Encode(x any) (*ir.Value, error) {
	if t, ok := x.(ValueToer); ok {
		return t.ToValue()
	}
	if _, ok := x.(json.Marshaler); !ok {
		switch x.(type) {
		case nil, bool, string, float64, int, int64, []any, map[string]any:
			return ir.FromAny(x)
		}
	}
	d, err := json.Marshal(x)
	if err != nil {
		return nil, fmt.Errorf("%w: encoding %T: %w", ir.ErrDataFormat, x, err)
	}
	return ir.ParseJSON(d)
}
