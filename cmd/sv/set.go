package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/rpbox-app/savedvars"
	"github.com/rpbox-app/savedvars/ir"
	"github.com/rpbox-app/savedvars/libdiff"
	"github.com/rpbox-app/savedvars/parse"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if err := nArgs("set", args, 2, "a file and a variable name"); err != nil {
		return err
	}
	if cfg.Expr != "" && cfg.File != "" {
		return fmt.Errorf("%w: at most one of -e and -f", cli.ErrUsage)
	}
	d, err := cfg.input(cc)
	if err != nil {
		return err
	}
	var v *ir.Value
	if cfg.JSON {
		v, err = ir.ParseJSON(d)
	} else {
		v, err = parse.Literal(d)
	}
	if err != nil {
		return fmt.Errorf("error decoding value: %w", err)
	}
	s, err := cfg.store()
	if err != nil {
		return err
	}
	path, name := args[0], args[1]
	if cfg.DryRun {
		if cfg.Key != "" {
			v, err = withField(s, path, name, cfg.Key, v)
			if err != nil {
				return err
			}
		}
		return preview(cfg.MainConfig, cc.Out, s, path, name, v)
	}
	if cfg.Key != "" {
		return s.SetField(path, name, cfg.Key, v)
	}
	return s.Write(path, name, v)
}

func (cfg *SetConfig) input(cc *cli.Context) ([]byte, error) {
	switch {
	case cfg.Expr != "":
		return []byte(cfg.Expr), nil
	case cfg.File != "":
		return os.ReadFile(cfg.File)
	}
	return io.ReadAll(cc.In)
}

func withField(s *savedvars.Store, path, name, key string, v *ir.Value) (*ir.Value, error) {
	obj, err := s.ReadObject(path, name)
	switch {
	case errors.Is(err, savedvars.ErrFileNotFound), errors.Is(err, savedvars.ErrVariableNotFound):
		obj = ir.NewObject()
	case err != nil:
		return nil, err
	}
	obj.Set(key, v)
	return obj, nil
}

func preview(cfg *MainConfig, w io.Writer, s *savedvars.Store, path, name string, v *ir.Value) error {
	before, after, err := s.Preview(path, name, v)
	if err != nil {
		return err
	}
	lines := libdiff.DiffLines(string(before), string(after))
	if !libdiff.Changed(lines) {
		return nil
	}
	return libdiff.Format(w, lines, 3, cfg.colorsWanted(w))
}
