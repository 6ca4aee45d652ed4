package ir

import (
	"errors"
	"fmt"
)

var (
	ErrDataFormat = errors.New("data format error")
	ErrJSON       = errors.New("unsupported JSON value")
)

// AsObject returns v if it is an Object and an ErrDataFormat error otherwise.
func AsObject(v *Value) (*Value, error) {
	if v == nil || v.Type != ObjectType {
		return nil, fmt.Errorf("%w: expected Object, got %s", ErrDataFormat, typeOf(v))
	}
	return v, nil
}

func typeOf(v *Value) string {
	if v == nil {
		return "nothing"
	}
	return v.Type.String()
}
