package parse

import "fmt"

// DefaultMaxDepth bounds table nesting unless MaxDepth says otherwise.
const DefaultMaxDepth = 512

type parseOpts struct {
	maxDepth int
	filename string
}

type ParseOption func(*parseOpts)

// MaxDepth sets the deepest table nesting accepted. n <= 0 restores the
// default.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n <= 0 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

// WithFilename prefixes returned errors with name.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

func newOpts(opts []ParseOption) *parseOpts {
	res := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(res)
	}
	return res
}

func (o *parseOpts) wrap(err error) error {
	if err == nil || o.filename == "" {
		return err
	}
	return fmt.Errorf("%s: %w", o.filename, err)
}
