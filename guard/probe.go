package guard

import (
	"path/filepath"
	"strings"
)

// Probe reports whether the application owning the files is running.
type Probe interface {
	IsTargetRunning() bool
}

type ProbeFunc func() bool

func (f ProbeFunc) IsTargetRunning() bool { return f() }

// NeverRunning is the probe used when none is configured.
var NeverRunning Probe = ProbeFunc(func() bool { return false })

// DefaultProcessNames are the executable names of the game client.
var DefaultProcessNames = []string{"Wow.exe", "WowClassic.exe", "World of Warcraft"}

// ProcessProbe matches the names of running processes against Names,
// ignoring case. On platforms without a process listing it never reports a
// match.
type ProcessProbe struct {
	Names []string
}

func (p *ProcessProbe) IsTargetRunning() bool {
	procs, err := Processes()
	if err != nil {
		return false
	}
	for _, proc := range procs {
		if p.Match(proc) {
			return true
		}
	}
	return false
}

// Match reports whether the process name proc is one of p.Names. proc may be
// a full path with either slash style, and may be cut short at 15 bytes as
// Linux does for command names.
func (p *ProcessProbe) Match(proc string) bool {
	if i := strings.LastIndexAny(proc, `/\`); i >= 0 {
		proc = proc[i+1:]
	}
	if proc == "" {
		return false
	}
	for _, name := range p.Names {
		name = filepath.Base(name)
		if strings.EqualFold(proc, name) {
			return true
		}
		if len(proc) == commLen && len(name) > commLen && strings.EqualFold(proc, name[:commLen]) {
			return true
		}
	}
	return false
}

const commLen = 15
