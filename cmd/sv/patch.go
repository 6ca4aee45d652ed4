package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/rpbox-app/savedvars"
	"github.com/rpbox-app/savedvars/ir"
	"github.com/rpbox-app/savedvars/mergeop"
)

func patchVar(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if err := nArgs("patch", args, 3, "a file, a variable name and a patch file"); err != nil {
		return err
	}
	path, name := args[0], args[1]
	d, err := os.ReadFile(args[2])
	if err != nil {
		return err
	}
	var op mergeop.Op
	if cfg.Merge {
		op, err = mergeop.MergePatch(d)
	} else {
		op, err = mergeop.JSONPatch(d)
	}
	if err != nil {
		return err
	}
	s, err := cfg.store()
	if err != nil {
		return err
	}
	doc, err := s.Read(path, name)
	switch {
	case errors.Is(err, savedvars.ErrFileNotFound), errors.Is(err, savedvars.ErrVariableNotFound):
		doc = ir.NewObject()
	case err != nil:
		return err
	}
	res, err := op.Apply(doc)
	if err != nil {
		return fmt.Errorf("error applying %s to %s: %w", op.Name(), name, err)
	}
	if cfg.DryRun {
		return preview(cfg.MainConfig, cc.Out, s, path, name, res)
	}
	return s.Write(path, name, res)
}
