package guard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func running() Probe {
	return ProbeFunc(func() bool { return true })
}

func TestWriteRefusedWhenRunning(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "totalRP3.lua")
	orig := []byte("TRP3_Profiles = {}\n")
	if err := os.WriteFile(path, orig, 0644); err != nil {
		t.Fatal(err)
	}
	g := New(WithProbe(running()))
	err := g.WriteFile(path, []byte("TRP3_Profiles = { 1 }\n"))
	if !errors.Is(err, ErrTargetRunning) {
		t.Fatalf("got %v want ErrTargetRunning", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(orig), string(got)); diff != "" {
		t.Errorf("file changed (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(BackupPath(path, DefaultBackupSuffix)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("backup written while refusing: %v", err)
	}
}

func TestWriteBacksUp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "totalRP3.lua")
	if err := os.WriteFile(path, []byte("old"), 0600); err != nil {
		t.Fatal(err)
	}
	g := New()
	if err := g.WriteFile(path, []byte("new")); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "new" {
		t.Errorf("got %q", got)
	}
	backup, err := os.ReadFile(path + ".rpbox_backup")
	if err != nil {
		t.Fatal(err)
	}
	if string(backup) != "old" {
		t.Errorf("backup %q", backup)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0600 {
		t.Errorf("mode %v", fi.Mode())
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestWriteCreatesDirs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "WTF", "Account", "X", "SavedVariables", "totalRP3.lua")
	g := New(WithSuffix("bak"))
	if err := g.WriteFile(path, []byte("A = 1\n")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path + ".bak"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("backup of missing file: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "A = 1\n" {
		t.Errorf("got %q", got)
	}
}

func TestBackupFailureStopsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.lua")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	g := New(WithBackupPath(path, filepath.Join(dir, "missing", "f.bak")))
	err := g.WriteFile(path, []byte("new"))
	if !errors.Is(err, ErrBackupFailed) {
		t.Fatalf("got %v want ErrBackupFailed", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "old" {
		t.Errorf("file changed to %q", got)
	}
}

func TestBackupPath(t *testing.T) {
	for _, c := range []struct{ in, want string }{
		{"totalRP3.lua", "totalRP3.lua.rpbox_backup"},
		{"dir/noext", "dir/noext.rpbox_backup"},
	} {
		if got := BackupPath(c.in, DefaultBackupSuffix); got != c.want {
			t.Errorf("%s: got %s want %s", c.in, got, c.want)
		}
	}
	g := New(WithBackupPath("a/b.lua", "elsewhere"))
	if got := g.BackupPath("a/./b.lua"); got != "elsewhere" {
		t.Errorf("got %s", got)
	}
}

func TestProcessMatch(t *testing.T) {
	p := &ProcessProbe{Names: DefaultProcessNames}
	for proc, want := range map[string]bool{
		"Wow.exe": true,
		"wow.exe": true,
		`C:\Program Files\World of Warcraft\_retail_\Wow.exe`: true,
		"/Applications/World of Warcraft/_retail_/World of Warcraft.app/Contents/MacOS/World of Warcraft": true,
		"WowClassic.exe": true,
		"World of Warcra": true,
		"Wow":             false,
		"":                false,
	} {
		if got := p.Match(proc); got != want {
			t.Errorf("%q: got %v want %v", proc, got, want)
		}
	}
}

func TestProbeFunc(t *testing.T) {
	if NeverRunning.IsTargetRunning() {
		t.Error("NeverRunning reports running")
	}
	g := New(WithProbe(nil))
	if err := g.Check(); err != nil {
		t.Error(err)
	}
}
