// Package eval evaluates query expressions over a variable's value using
// github.com/expr-lang/expr.
//
// The value is bound to the name "value" in its generic form: objects are
// map[string]any, arrays []any, numbers float64. For example
//
//	len(value)
//	value["0120"].characteristics.FN
//	keys(value)
//	getpath("0120.characteristics")
//
// Results are converted back to an [ir.Value].
package eval
