package encode

import (
	"bytes"

	"github.com/rpbox-app/savedvars/ir"
)

// String returns the encoding of v.
func String(v *ir.Value, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(v *ir.Value, opts ...EncodeOption) string {
	s, err := String(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
