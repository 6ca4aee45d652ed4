// Package mergeop applies RFC 6902 JSON patches and RFC 7386 merge patches to
// values read from SavedVariables files.
//
// Values pass through their JSON form, so object keys come back in the order
// github.com/evanphx/json-patch writes them.
package mergeop

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/rpbox-app/savedvars/debug"
	"github.com/rpbox-app/savedvars/ir"
)

var ErrPatch = errors.New("patch error")

// Op transforms a value.
type Op interface {
	Name() string
	Apply(doc *ir.Value) (*ir.Value, error)
}

type name string

func (n name) Name() string   { return string(n) }
func (n name) String() string { return string(n) }

const (
	jPatchName     name = "json-patch"
	mergePatchName name = "merge-patch"
)

type jPatchOp struct {
	name
	ops jsonpatch.Patch
}

// JSONPatch decodes an RFC 6902 patch document.
func JSONPatch(d []byte) (Op, error) {
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatch, jPatchName, err)
	}
	return &jPatchOp{name: jPatchName, ops: ops}, nil
}

func (jp *jPatchOp) Apply(doc *ir.Value) (*ir.Value, error) {
	if debug.Patch() {
		debug.Logf("%s: %d operations\n", jp.name, len(jp.ops))
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := jp.ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatch, jp.name, err)
	}
	return ir.ParseJSON(out)
}

type mergePatchOp struct {
	name
	patch []byte
}

// MergePatch wraps an RFC 7386 merge patch document.
func MergePatch(d []byte) (Op, error) {
	if _, err := ir.ParseJSON(d); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatch, mergePatchName, err)
	}
	return &mergePatchOp{name: mergePatchName, patch: d}, nil
}

func (mp *mergePatchOp) Apply(doc *ir.Value) (*ir.Value, error) {
	if debug.Patch() {
		debug.Logf("%s: %s\n", mp.name, mp.patch)
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, mp.patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrPatch, mp.name, err)
	}
	return ir.ParseJSON(out)
}

// Diff returns the merge patch turning from into to.
func Diff(from, to *ir.Value) ([]byte, error) {
	a, err := from.MarshalJSON()
	if err != nil {
		return nil, err
	}
	b, err := to.MarshalJSON()
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}
