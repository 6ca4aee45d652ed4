package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"slices"
	"strconv"
)

// MarshalJSON renders v as JSON, keeping object keys in order.
func (v *Value) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v *Value) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}
	switch v.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(v.Bool))
	case NumberType:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return fmt.Errorf("%w: number %v", ErrJSON, v.Number)
		}
		d, err := json.Marshal(v.Number)
		if err != nil {
			return err
		}
		buf.Write(d)
	case StringType:
		writeJSONString(buf, v.String)
	case ArrayType:
		buf.WriteByte('[')
		for i, c := range v.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, c); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, k := range v.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeJSONString(buf, k)
			buf.WriteByte(':')
			if err := writeJSON(buf, v.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: type %s", ErrJSON, v.Type)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	// Encode of a string cannot fail.
	_ = enc.Encode(s)
	buf.Truncate(buf.Len() - 1)
}

// UnmarshalJSON decodes JSON into v, keeping object keys in document order.
func (v *Value) UnmarshalJSON(d []byte) error {
	res, err := ParseJSON(d)
	if err != nil {
		return err
	}
	*v = *res
	return nil
}

// ParseJSON decodes exactly one JSON document.
func ParseJSON(d []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after JSON document", ErrJSON)
	}
	return res, nil
}

func decodeJSON(dec *json.Decoder) (*Value, error) {
	t, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := t.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %s", ErrJSON, x)
		}
		return FromNumber(f), nil
	case json.Delim:
		switch x {
		case '[':
			res := NewArray()
			for dec.More() {
				c, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Values = append(res.Values, c)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		case '{':
			res := NewObject()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				k, ok := kt.(string)
				if !ok {
					return nil, fmt.Errorf("%w: object key %v", ErrJSON, kt)
				}
				c, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Set(k, c)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return res, nil
		}
	}
	return nil, fmt.Errorf("%w: token %v", ErrJSON, t)
}

// ToAny converts v to the generic Go form used by encoding/json.
func ToAny(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case BoolType:
		return v.Bool
	case NumberType:
		return v.Number
	case StringType:
		return v.String
	case ArrayType:
		res := make([]any, len(v.Values))
		for i, c := range v.Values {
			res[i] = ToAny(c)
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(v.Fields))
		for i, k := range v.Fields {
			res[k] = ToAny(v.Values[i])
		}
		return res
	default:
		return nil
	}
}

// FromAny converts a generic Go value to a Value. Maps produce Objects with
// sorted keys. Values of other types go through encoding/json.
func FromAny(x any) (*Value, error) {
	switch y := x.(type) {
	case nil:
		return Null(), nil
	case *Value:
		return y.Clone(), nil
	case bool:
		return FromBool(y), nil
	case string:
		return FromString(y), nil
	case float64:
		return FromNumber(y), nil
	case float32:
		return FromNumber(float64(y)), nil
	case int:
		return FromInt(int64(y)), nil
	case int32:
		return FromInt(int64(y)), nil
	case int64:
		return FromInt(y), nil
	case uint:
		return FromNumber(float64(y)), nil
	case uint32:
		return FromNumber(float64(y)), nil
	case uint64:
		return FromNumber(float64(y)), nil
	case json.Number:
		f, err := y.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %s", ErrJSON, y)
		}
		return FromNumber(f), nil
	case []any:
		res := NewArray()
		for _, c := range y {
			cv, err := FromAny(c)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, cv)
		}
		return res, nil
	case map[string]any:
		res := NewObject()
		for _, k := range slices.Sorted(maps.Keys(y)) {
			cv, err := FromAny(y[k])
			if err != nil {
				return nil, err
			}
			res.Set(k, cv)
		}
		return res, nil
	}
	d, err := json.Marshal(x)
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %w", ErrJSON, x, err)
	}
	return ParseJSON(d)
}
