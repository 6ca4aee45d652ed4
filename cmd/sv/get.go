package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/rpbox-app/savedvars/encode"
	"github.com/rpbox-app/savedvars/eval"
	"github.com/rpbox-app/savedvars/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if err := nArgs("get", args, 2, "a file and a variable name"); err != nil {
		return err
	}
	s, err := cfg.store()
	if err != nil {
		return err
	}
	v, err := s.Read(args[0], args[1])
	if err != nil {
		return err
	}
	if cfg.Query != "" {
		v, err = eval.Query(v, cfg.Query)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", args[1], err)
		}
	}
	return writeValue(cfg.MainConfig, cc.Out, v)
}

func writeValue(cfg *MainConfig, w io.Writer, v *ir.Value) error {
	if err := encode.Encode(v, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
