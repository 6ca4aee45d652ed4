package eval

import "github.com/rpbox-app/savedvars/ir"

type Env map[string]any

const ValueName = "value"

func NewEnv(v *ir.Value) Env {
	return Env{ValueName: ir.ToAny(v)}
}
