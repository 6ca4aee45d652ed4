package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "O",
		Aliases:     []string{"ofmt"},
		Description: "output format: lua/l, json/j, yaml/y",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
	})

	return cli.NewCommandAt(&cfg.Main, "sv").
		WithSynopsis("sv [opts] command [opts]").
		WithDescription("sv reads and patches World of Warcraft SavedVariables files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return svMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			NamesCommand(cfg),
			SumCommand(cfg),
			SetCommand(cfg),
			PatchCommand(cfg),
			RawCommand(cfg),
			ProbeCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get [-q expr] <file> <variable>").
		WithDescription("print a variable read from a SavedVariables file").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func NamesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NamesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Names, "names").
		WithAliases("n", "ls").
		WithSynopsis("names <file>").
		WithDescription("list the variables assigned in a SavedVariables file").
		WithRun(func(cc *cli.Context, args []string) error {
			return names(cfg, cc, args)
		})
}

func SumCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SumConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Sum, "sum").
		WithSynopsis("sum <file> <variable>").
		WithDescription("print a key order independent checksum of a variable").
		WithRun(func(cc *cli.Context, args []string) error {
			return sum(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set [-n] [-j] [-k key] [-e value | -f file] <file> <variable>").
		WithDescription("replace or add one variable, leaving the rest of the file untouched").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch [-n] [-m] <file> <variable> <patchfile>").
		WithDescription("apply a json patch to a variable").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchVar(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func RawCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RawConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Raw, "raw").
		WithSynopsis("raw <file> [source]").
		WithDescription("write a whole file verbatim from source or stdin, behind the same guard").
		WithRun(func(cc *cli.Context, args []string) error {
			return raw(cfg, cc, args)
		})
}

func ProbeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ProbeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Probe, "probe").
		WithSynopsis("probe").
		WithDescription("report whether the game is running").
		WithRun(func(cc *cli.Context, args []string) error {
			return probe(cfg, cc, args)
		})
}
