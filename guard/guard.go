package guard

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rpbox-app/savedvars/debug"
)

// DefaultBackupSuffix names backups "<path>.rpbox_backup".
const DefaultBackupSuffix = "rpbox_backup"

// BackupPath is path with "." and suffix appended, so "totalRP3.lua" backs up
// to "totalRP3.lua.rpbox_backup". Paths without an extension follow the same
// rule.
func BackupPath(path, suffix string) string {
	return path + "." + suffix
}

type Guard struct {
	probe   Probe
	suffix  string
	backups map[string]string
	logger  *slog.Logger
}

type Option func(*Guard)

// WithProbe sets the probe consulted before each write. A nil probe means
// NeverRunning.
func WithProbe(p Probe) Option {
	return func(g *Guard) {
		if p == nil {
			p = NeverRunning
		}
		g.probe = p
	}
}

func WithSuffix(s string) Option {
	return func(g *Guard) {
		if s != "" {
			g.suffix = s
		}
	}
}

// WithBackupPath overrides the backup location of one file.
func WithBackupPath(path, backup string) Option {
	return func(g *Guard) { g.backups[filepath.Clean(path)] = backup }
}

// WithLogger sets the logger. If nil, slog.Default() is used.
func WithLogger(l *slog.Logger) Option {
	return func(g *Guard) { g.logger = l }
}

func New(opts ...Option) *Guard {
	g := &Guard{
		probe:   NeverRunning,
		suffix:  DefaultBackupSuffix,
		backups: map[string]string{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

func (g *Guard) Suffix() string { return g.suffix }

func (g *Guard) BackupPath(path string) string {
	if b, ok := g.backups[filepath.Clean(path)]; ok {
		return b
	}
	return BackupPath(path, g.suffix)
}

// Check returns ErrTargetRunning if the probe reports the target running.
func (g *Guard) Check() error {
	if g.probe.IsTargetRunning() {
		return ErrTargetRunning
	}
	return nil
}

// Backup copies the current content of path to its backup path and returns
// that path. It returns "" and no error if path does not exist.
func (g *Guard) Backup(path string) (string, error) {
	d, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %w", ErrBackupFailed, path, err)
	}
	bp := g.BackupPath(path)
	if err := os.WriteFile(bp, d, 0644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrBackupFailed, err)
	}
	if debug.Guard() {
		debug.Logf("guard: backed up %s to %s (%d bytes)\n", path, bp, len(d))
	}
	g.logger.Debug("backup written", "path", path, "backup", bp, "size", len(d))
	return bp, nil
}

// WriteFile replaces the content of path with data. Nothing on disk changes
// if the target is running or the backup fails. The new content is written
// to a temporary file next to path and renamed into place, creating parent
// directories as needed.
func (g *Guard) WriteFile(path string, data []byte) error {
	if err := g.Check(); err != nil {
		g.logger.Warn("refusing write", "path", path, "error", err)
		return fmt.Errorf("%w: not writing %s", err, path)
	}
	if _, err := g.Backup(path); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	mode := fs.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	}
	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, data, mode); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	if debug.Guard() {
		debug.Logf("guard: wrote %s (%d bytes)\n", path, len(data))
	}
	g.logger.Debug("file written", "path", path, "size", len(data))
	return nil
}
