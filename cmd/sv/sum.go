package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func sum(cfg *SumConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sum.Parse(cc, args)
	if err != nil {
		cfg.Sum.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if err := nArgs("sum", args, 2, "a file and a variable name"); err != nil {
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
	h, err := v.Checksum()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "%s  %s\n", h, args[1])
	return err
}
