package main

import (
	"errors"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/rpbox-app/savedvars/guard"
)

func probe(cfg *ProbeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Probe.Parse(cc, args)
	if err != nil {
		cfg.Probe.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if err := nArgs("probe", args, 0, "no arguments"); err != nil {
		return err
	}
	g, _, err := cfg.guard()
	if err != nil {
		return err
	}
	err = g.Check()
	switch {
	case errors.Is(err, guard.ErrTargetRunning):
		fmt.Fprintln(cc.Out, "running")
		return cli.ExitCodeErr(2)
	case err != nil:
		return err
	}
	_, err = fmt.Fprintln(cc.Out, "not running")
	return err
}
