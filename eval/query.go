package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/rpbox-app/savedvars/debug"
	"github.com/rpbox-app/savedvars/ir"
)

// Query evaluates src with v bound to "value".
func Query(v *ir.Value, src string) (*ir.Value, error) {
	env := NewEnv(v)
	opts := append(exprOpts(v), registered()...)
	opts = append(opts, expr.Env(env))
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("running %q: %w", src, err)
	}
	if debug.Parse() {
		debug.Logf("query %q -> %T\n", src, res)
	}
	return ir.FromAny(res)
}
