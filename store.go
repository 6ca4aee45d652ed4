package savedvars

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/rpbox-app/savedvars/encode"
	"github.com/rpbox-app/savedvars/gomap"
	"github.com/rpbox-app/savedvars/guard"
	"github.com/rpbox-app/savedvars/ir"
	"github.com/rpbox-app/savedvars/parse"
	"github.com/rpbox-app/savedvars/patch"
)

type Store struct {
	guard     *guard.Guard
	skeletons map[string][]string
	encOpts   []encode.EncodeOption
	parseOpts []parse.ParseOption
	logger    *slog.Logger
}

type Option func(*Store)

func WithGuard(g *guard.Guard) Option {
	return func(s *Store) { s.guard = g }
}

// WithSkeletons maps a variable to the variables written alongside it when
// its file does not exist yet.
func WithSkeletons(m map[string][]string) Option {
	return func(s *Store) { s.skeletons = m }
}

func WithEncodeOptions(opts ...encode.EncodeOption) Option {
	return func(s *Store) { s.encOpts = append(s.encOpts, opts...) }
}

func WithParseOptions(opts ...parse.ParseOption) Option {
	return func(s *Store) { s.parseOpts = append(s.parseOpts, opts...) }
}

// WithLogger sets the logger. If nil, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

func New(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.guard == nil {
		s.guard = guard.New(guard.WithLogger(s.logger))
	}
	return s
}

func (s *Store) Guard() *guard.Guard { return s.guard }

// Assignment is a variable to write in the file at Path.
type Assignment struct {
	Path  string
	Name  string
	Value *ir.Value
}

func readFile(path string) ([]byte, error) {
	d, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return d, nil
}

func (s *Store) popts(path string) []parse.ParseOption {
	return append([]parse.ParseOption{parse.WithFilename(path)}, s.parseOpts...)
}

// Read returns the value of the top level variable name in the file at path.
func (s *Store) Read(path, name string) (*ir.Value, error) {
	d, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, name, s.popts(path)...)
}

// ReadObject is Read for variables that must hold a keyed table.
func (s *Store) ReadObject(path, name string) (*ir.Value, error) {
	v, err := s.Read(path, name)
	if err != nil {
		return nil, err
	}
	obj, err := ir.AsObject(v)
	if err != nil {
		return nil, fmt.Errorf("%s in %s: %w", name, path, err)
	}
	return obj, nil
}

// ReadInto decodes the variable into dst following its encoding/json tags.
func (s *Store) ReadInto(path, name string, dst any) error {
	v, err := s.Read(path, name)
	if err != nil {
		return err
	}
	return gomap.Decode(v, dst)
}

// Names lists the top level variables of the file at path.
func (s *Store) Names(path string) ([]string, error) {
	d, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parse.Names(d, s.popts(path)...)
}

// Write sets the top level variable name in the file at path to v. A missing
// file is created holding v and the configured skeleton siblings of name.
func (s *Store) Write(path, name string, v *ir.Value) error {
	_, after, err := s.render(path, []patch.Assignment{{Name: name, Value: v}})
	if err != nil {
		return err
	}
	if err := s.guard.WriteFile(path, after); err != nil {
		return err
	}
	s.logger.Info("variable written", "path", path, "name", name)
	return nil
}

// SetField sets key in the object held by name, starting from an empty
// object if the file or variable does not exist yet.
func (s *Store) SetField(path, name, key string, v *ir.Value) error {
	obj, err := s.ReadObject(path, name)
	switch {
	case errors.Is(err, ErrFileNotFound), errors.Is(err, ErrVariableNotFound):
		obj = ir.NewObject()
	case err != nil:
		return err
	default:
		obj = obj.Clone()
	}
	obj.Set(key, v)
	return s.Write(path, name, obj)
}

// WriteAll writes each assignment, one file at a time in the order files
// first appear in as. It stops at the first file that fails and returns a
// *BatchError naming the files already written.
func (s *Store) WriteAll(as []Assignment) error {
	var order []string
	byPath := map[string][]patch.Assignment{}
	for _, a := range as {
		if _, ok := byPath[a.Path]; !ok {
			order = append(order, a.Path)
		}
		byPath[a.Path] = append(byPath[a.Path], patch.Assignment{Name: a.Name, Value: a.Value})
	}
	var committed []string
	for _, path := range order {
		err := s.writeFile(path, byPath[path])
		if err != nil {
			if len(committed) > 0 {
				s.logger.Warn("batch partially written", "committed", committed, "failed", path, "error", err)
			}
			return &BatchError{Committed: committed, Path: path, Err: err}
		}
		committed = append(committed, path)
	}
	return nil
}

func (s *Store) writeFile(path string, as []patch.Assignment) error {
	_, after, err := s.render(path, as)
	if err != nil {
		return err
	}
	if err := s.guard.WriteFile(path, after); err != nil {
		return err
	}
	for _, a := range as {
		s.logger.Info("variable written", "path", path, "name", a.Name)
	}
	return nil
}

// WriteRaw replaces the whole file at path with text, verbatim.
func (s *Store) WriteRaw(path string, text []byte) error {
	if err := s.guard.WriteFile(path, text); err != nil {
		return err
	}
	s.logger.Info("file replaced", "path", path, "size", len(text))
	return nil
}

// Preview returns the file content before and after writing v to name,
// without writing anything. before is nil if the file does not exist.
func (s *Store) Preview(path, name string, v *ir.Value) (before, after []byte, err error) {
	return s.render(path, []patch.Assignment{{Name: name, Value: v}})
}

func (s *Store) render(path string, as []patch.Assignment) (before, after []byte, err error) {
	if len(as) == 0 {
		return nil, nil, fmt.Errorf("%w: nothing to write to %s", ErrDataFormat, path)
	}
	before, err = readFile(path)
	switch {
	case errors.Is(err, ErrFileNotFound):
		first := as[0]
		after, err = patch.Skeleton(first.Name, first.Value, s.skeletons[first.Name], s.encOpts...)
		if err != nil {
			return nil, nil, err
		}
		as = as[1:]
		before = nil
	case err != nil:
		return nil, nil, err
	default:
		after = before
	}
	after, err = patch.PatchAll(after, as, s.encOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return before, after, nil
}
