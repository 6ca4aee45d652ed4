package eval

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rpbox-app/savedvars/ir"
)

var ErrPathNotFound = errors.New("path not found")

// GetPath follows a dot separated path of object keys and 1-based array
// indices from v. The empty path is v itself.
func GetPath(v *ir.Value, path string) (*ir.Value, error) {
	if path == "" {
		return v, nil
	}
	cur := v
	for _, seg := range strings.Split(path, ".") {
		switch cur.Type {
		case ir.ObjectType:
			next := cur.Get(seg)
			if next == nil {
				return nil, fmt.Errorf("%w: %q has no key %q", ErrPathNotFound, path, seg)
			}
			cur = next
		case ir.ArrayType:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 1 || i > len(cur.Values) {
				return nil, fmt.Errorf("%w: %q has no index %q", ErrPathNotFound, path, seg)
			}
			cur = cur.Values[i-1]
		default:
			return nil, fmt.Errorf("%w: %q reaches %s at %q", ErrPathNotFound, path, cur.Type, seg)
		}
	}
	return cur, nil
}
