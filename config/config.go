// Package config loads the settings that tailor reads and writes to one
// addon: backup naming, the game process names to probe for, and the
// variables written together when a file is created from scratch.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/rpbox-app/savedvars/guard"
)

var ErrConfig = errors.New("config error")

type Config struct {
	BackupSuffix string     `yaml:"backupSuffix"`
	ProcessNames []string   `yaml:"processNames"`
	NumericKeys  bool       `yaml:"numericKeys"`
	Skeletons    []Skeleton `yaml:"skeletons"`
}

// Skeleton is a family of variables stored in the same file. When a file
// holding one of them is created, the others are written as empty tables.
type Skeleton struct {
	File      string   `yaml:"file"`
	Variables []string `yaml:"variables"`
}

// Default carries the Total RP 3 variable families.
func Default() *Config {
	return &Config{
		BackupSuffix: guard.DefaultBackupSuffix,
		ProcessNames: slices.Clone(guard.DefaultProcessNames),
		Skeletons: []Skeleton{
			{
				File: "totalRP3.lua",
				Variables: []string{
					"TRP3_Profiles",
					"TRP3_Characters",
					"TRP3_Configuration",
					"TRP3_Flyway",
					"TRP3_Presets",
					"TRP3_Companions",
					"TRP3_MatureFilter",
					"TRP3_Notes",
				},
			},
			{
				File: "totalRP3_Extended.lua",
				Variables: []string{
					"TRP3_Tools_DB",
					"TRP3_Exchange_DB",
				},
			},
		},
	}
}

// Load reads a YAML config file. Fields absent from the file keep their
// Default values.
func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	cfg, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(d []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(d, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.BackupSuffix == "" {
		return fmt.Errorf("%w: empty backup suffix", ErrConfig)
	}
	seen := map[string]string{}
	for _, sk := range c.Skeletons {
		for _, v := range sk.Variables {
			if other, ok := seen[v]; ok && other != sk.File {
				return fmt.Errorf("%w: %s is in skeletons %s and %s", ErrConfig, v, other, sk.File)
			}
			seen[v] = sk.File
		}
	}
	return nil
}

// SiblingsOf returns the family of name, including name, or nil if name
// belongs to no skeleton.
func (c *Config) SiblingsOf(name string) []string {
	for _, sk := range c.Skeletons {
		if slices.Contains(sk.Variables, name) {
			return slices.Clone(sk.Variables)
		}
	}
	return nil
}

// SkeletonMap maps each variable to its family.
func (c *Config) SkeletonMap() map[string][]string {
	res := map[string][]string{}
	for _, sk := range c.Skeletons {
		for _, v := range sk.Variables {
			res[v] = slices.Clone(sk.Variables)
		}
	}
	return res
}

// Probe returns a process probe for ProcessNames, or guard.NeverRunning if
// there are none.
func (c *Config) Probe() guard.Probe {
	if len(c.ProcessNames) == 0 {
		return guard.NeverRunning
	}
	return &guard.ProcessProbe{Names: slices.Clone(c.ProcessNames)}
}
