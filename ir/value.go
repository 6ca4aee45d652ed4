package ir

import (
	"maps"
	"slices"
	"strconv"
)

// Value is a tagged union; which fields are meaningful depends on Type.
// Objects keep their keys in Fields, parallel to Values.
type Value struct {
	Type Type

	Bool   bool
	Number float64
	String string

	Fields []string
	Values []*Value
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromNumber(f float64) *Value {
	return &Value{Type: NumberType, Number: f}
}

func FromInt(i int64) *Value {
	return FromNumber(float64(i))
}

func FromString(v string) *Value {
	return &Value{Type: StringType, String: v}
}

func NewArray() *Value {
	return &Value{Type: ArrayType}
}

func NewObject() *Value {
	return &Value{Type: ObjectType}
}

func FromSlice(vs []*Value) *Value {
	res := NewArray()
	res.Values = make([]*Value, len(vs))
	copy(res.Values, vs)
	return res
}

// FromMap builds an Object with its keys in sorted order.
func FromMap(m map[string]*Value) *Value {
	res := NewObject()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, k)
		res.Values = append(res.Values, m[k])
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Value
}

// FromKeyVals builds an Object in the given order. A repeated key keeps its
// first position and its last value.
func FromKeyVals(kvs []KeyVal) *Value {
	res := NewObject()
	for i := range kvs {
		res.Set(kvs[i].Key, kvs[i].Val)
	}
	return res
}

// NumberKey is the decimal form used for numeric table keys.
func NumberKey(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (v *Value) Len() int {
	switch v.Type {
	case ArrayType, ObjectType:
		return len(v.Values)
	case StringType:
		return len(v.String)
	default:
		return 0
	}
}

func (v *Value) Index(i int) *Value {
	if v.Type != ArrayType || i < 0 || i >= len(v.Values) {
		return nil
	}
	return v.Values[i]
}

func (v *Value) Keys() []string {
	if v.Type != ObjectType {
		return nil
	}
	return slices.Clone(v.Fields)
}

func (v *Value) Get(key string) *Value {
	if v.Type != ObjectType {
		return nil
	}
	i := slices.Index(v.Fields, key)
	if i < 0 {
		return nil
	}
	return v.Values[i]
}

// Set replaces the value of an existing key in place or appends a new key.
// It panics if v is not an Object.
func (v *Value) Set(key string, val *Value) {
	if v.Type != ObjectType {
		panic("ir: Set on " + v.Type.String())
	}
	if i := slices.Index(v.Fields, key); i >= 0 {
		v.Values[i] = val
		return
	}
	v.Fields = append(v.Fields, key)
	v.Values = append(v.Values, val)
}

func (v *Value) Delete(key string) bool {
	if v.Type != ObjectType {
		return false
	}
	i := slices.Index(v.Fields, key)
	if i < 0 {
		return false
	}
	v.Fields = slices.Delete(v.Fields, i, i+1)
	v.Values = slices.Delete(v.Values, i, i+1)
	return true
}

func (v *Value) Append(vals ...*Value) {
	if v.Type != ArrayType {
		panic("ir: Append on " + v.Type.String())
	}
	v.Values = append(v.Values, vals...)
}

func (v *Value) Clone() *Value {
	res := &Value{
		Type:   v.Type,
		Bool:   v.Bool,
		Number: v.Number,
		String: v.String,
	}
	if v.Fields != nil {
		res.Fields = slices.Clone(v.Fields)
	}
	if v.Values != nil {
		res.Values = make([]*Value, len(v.Values))
		for i, c := range v.Values {
			res.Values[i] = c.Clone()
		}
	}
	return res
}

// Visit walks v depth first, calling f before (isPost false) and after
// (isPost true) the children. Children are visited only when the pre call
// returns true. key is the object key or array index of v in its parent.
func (v *Value) Visit(f func(key string, v *Value, isPost bool) (bool, error)) error {
	return v.visit("", f)
}

func (v *Value) visit(key string, f func(string, *Value, bool) (bool, error)) error {
	dive, err := f(key, v, false)
	if err != nil {
		return err
	}
	if dive {
		for i, c := range v.Values {
			k := strconv.Itoa(i + 1)
			if v.Type == ObjectType {
				k = v.Fields[i]
			}
			if err := c.visit(k, f); err != nil {
				return err
			}
		}
	}
	_, err = f(key, v, true)
	return err
}
