package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/rpbox-app/savedvars"
	"github.com/rpbox-app/savedvars/config"
	"github.com/rpbox-app/savedvars/encode"
	"github.com/rpbox-app/savedvars/format"
	"github.com/rpbox-app/savedvars/guard"
)

type MainConfig struct {
	Config  string `cli:"name=c aliases=config desc='yaml config file'"`
	Color   bool   `cli:"name=color desc='encode with color'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='log debug messages'"`

	OutFormat *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) load() (*config.Config, error) {
	if cfg.Config == "" {
		return config.Default(), nil
	}
	return config.Load(cfg.Config)
}

func (cfg *MainConfig) guard() (*guard.Guard, *config.Config, error) {
	c, err := cfg.load()
	if err != nil {
		return nil, nil, err
	}
	return guard.New(
		guard.WithProbe(c.Probe()),
		guard.WithSuffix(c.BackupSuffix),
		guard.WithLogger(newLogger(os.Stderr, cfg.Verbose)),
	), c, nil
}

func (cfg *MainConfig) store() (*savedvars.Store, error) {
	g, c, err := cfg.guard()
	if err != nil {
		return nil, err
	}
	return savedvars.New(
		savedvars.WithGuard(g),
		savedvars.WithSkeletons(c.SkeletonMap()),
		savedvars.WithEncodeOptions(encode.NumericKeys(c.NumericKeys)),
		savedvars.WithLogger(newLogger(os.Stderr, cfg.Verbose)),
	), nil
}

func (cfg *MainConfig) colorsWanted(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
	}
	if cfg.colorsWanted(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type GetConfig struct {
	*MainConfig
	Query string `cli:"name=q aliases=query desc='expr query over the variable, bound to value'"`

	Get *cli.Command
}

type NamesConfig struct {
	*MainConfig

	Names *cli.Command
}

type SumConfig struct {
	*MainConfig

	Sum *cli.Command
}

type SetConfig struct {
	*MainConfig
	DryRun bool   `cli:"name=n desc='print a diff instead of writing'"`
	JSON   bool   `cli:"name=j aliases=json desc='value is json'"`
	Key    string `cli:"name=k aliases=key desc='set one key of an object variable'"`
	Expr   string `cli:"name=e desc='value given inline'"`
	File   string `cli:"name=f desc='read value from file'"`

	Set *cli.Command
}

type PatchConfig struct {
	*MainConfig
	DryRun bool `cli:"name=n desc='print a diff instead of writing'"`
	Merge  bool `cli:"name=m desc='patch is an rfc 7386 merge patch'"`

	Patch *cli.Command
}

type RawConfig struct {
	*MainConfig

	Raw *cli.Command
}

type ProbeConfig struct {
	*MainConfig

	Probe *cli.Command
}
