// Package ir provides the generic value model for SavedVariables data.
//
// # Overview
//
// A [Value] is a recursive tagged union holding one of
//
//   - NullType: nil
//   - BoolType: true or false
//   - NumberType: a float64
//   - StringType: UTF-8 text
//   - ArrayType: an ordered list of values
//   - ObjectType: string keys mapped to values
//
// Objects keep their keys in Fields, parallel to Values, so that output built
// from a parsed table is stable. Keys are unique; numeric table keys are
// stored in decimal form (see [NumberKey]).
//
// A Value tree is plainly owned: it has no parent pointers, no cycles and no
// shared subtrees. Parsing always builds a fresh tree and nothing in this
// module mutates a tree it did not build.
//
// # Creating Values
//
//	v := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: "name", Val: ir.FromString("Flaria")},
//	    {Key: "level", Val: ir.FromInt(60)},
//	})
//	arr := ir.FromSlice([]*ir.Value{ir.FromString("a"), ir.FromString("b")})
//
// # JSON
//
// Values marshal to and from JSON with object key order preserved, and
// [ToAny]/[FromAny] convert to the generic forms used by encoding/json.
package ir
