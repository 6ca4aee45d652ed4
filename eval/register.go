package eval

import (
	"errors"
	"fmt"
	"sync"

	"github.com/expr-lang/expr"
)

var (
	mu sync.RWMutex
	d  = map[string]expr.Option{}
)

var ErrFuncExists = errors.New("function exists")

// Register adds a function available to every query. types are expr-lang
// function signatures such as new(func(string) int).
func Register(name string, fn func(params ...any) (any, error), types ...any) error {
	mu.Lock()
	defer mu.Unlock()
	if _, present := d[name]; present || builtin[name] {
		return fmt.Errorf("%s: %w", name, ErrFuncExists)
	}
	d[name] = expr.Function(name, fn, types...)
	return nil
}

func registered() []expr.Option {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]expr.Option, 0, len(d))
	for _, opt := range d {
		res = append(res, opt)
	}
	return res
}
