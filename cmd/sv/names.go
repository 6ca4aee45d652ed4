package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func names(cfg *NamesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Names.Parse(cc, args)
	if err != nil {
		cfg.Names.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if err := nArgs("names", args, 1, "a file"); err != nil {
		return err
	}
	s, err := cfg.store()
	if err != nil {
		return err
	}
	ns, err := s.Names(args[0])
	if err != nil {
		return err
	}
	for _, n := range ns {
		if _, err := fmt.Fprintln(cc.Out, n); err != nil {
			return err
		}
	}
	return nil
}
