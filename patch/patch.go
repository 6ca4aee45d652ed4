package patch

import (
	"bytes"

	"github.com/rpbox-app/savedvars/debug"
	"github.com/rpbox-app/savedvars/encode"
	"github.com/rpbox-app/savedvars/format"
	"github.com/rpbox-app/savedvars/ir"
)

// Assignment is a top level variable and its new value.
type Assignment struct {
	Name  string
	Value *ir.Value
}

// Patch returns src with the value of the first top level assignment to name
// replaced by v. If name is not assigned in src, "name = v" is appended on
// its own line. Bytes outside the replaced value are kept as they are.
func Patch(src []byte, name string, v *ir.Value, opts ...encode.EncodeOption) ([]byte, error) {
	enc, err := encodeValue(v, opts)
	if err != nil {
		return nil, err
	}
	sp, found, err := Locate(src, name)
	if err != nil {
		return nil, err
	}
	if !found {
		if debug.Patch() {
			debug.Logf("patch: %s not found, appending\n", name)
		}
		return appendAssignment(src, name, enc), nil
	}
	rest := src[sp.End:]
	res := make([]byte, 0, sp.Eq+len(enc)+len(rest)+3)
	res = append(res, src[:sp.Eq]...)
	res = append(res, "= "...)
	res = append(res, enc...)
	if len(rest) == 0 {
		res = append(res, '\n')
	}
	return append(res, rest...), nil
}

// PatchAll applies Patch for each assignment in order.
func PatchAll(src []byte, as []Assignment, opts ...encode.EncodeOption) ([]byte, error) {
	res := src
	for _, a := range as {
		var err error
		res, err = Patch(res, a.Name, a.Value, opts...)
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Skeleton returns the body of a new file holding "name = v" followed by an
// empty table for each sibling that differs from name.
func Skeleton(name string, v *ir.Value, siblings []string, opts ...encode.EncodeOption) ([]byte, error) {
	enc, err := encodeValue(v, opts)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	buf.WriteString(name + " = " + enc + "\n")
	for _, s := range siblings {
		if s == name {
			continue
		}
		buf.WriteString(s + " = {}\n")
	}
	return buf.Bytes(), nil
}

func encodeValue(v *ir.Value, opts []encode.EncodeOption) (string, error) {
	opts = append(opts[:len(opts):len(opts)], encode.EncodeFormat(format.LuaFormat), encode.EncodeColors(nil))
	return encode.String(v, opts...)
}

func appendAssignment(src []byte, name, enc string) []byte {
	res := make([]byte, 0, len(src)+len(name)+len(enc)+5)
	res = append(res, src...)
	if len(src) > 0 && src[len(src)-1] != '\n' {
		res = append(res, '\n')
	}
	res = append(res, name+" = "+enc+"\n"...)
	return res
}
