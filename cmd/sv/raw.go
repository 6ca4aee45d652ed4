package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

func raw(cfg *RawConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Raw.Parse(cc, args)
	if err != nil {
		cfg.Raw.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var d []byte
	switch len(args) {
	case 1:
		d, err = io.ReadAll(cc.In)
	case 2:
		d, err = os.ReadFile(args[1])
	default:
		return nArgs("raw", args, 1, "a file and optionally a source file")
	}
	if err != nil {
		return err
	}
	s, err := cfg.store()
	if err != nil {
		return err
	}
	return s.WriteRaw(args[0], d)
}
