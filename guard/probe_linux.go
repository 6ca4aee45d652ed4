package guard

import (
	"os"
	"path/filepath"
	"strings"
)

// Processes lists the command names of running processes. Wine processes
// are also listed under the first argument of their command line.
func Processes() ([]string, error) {
	dirs, err := filepath.Glob("/proc/[0-9]*")
	if err != nil {
		return nil, err
	}
	var res []string
	for _, dir := range dirs {
		if d, err := os.ReadFile(filepath.Join(dir, "comm")); err == nil {
			res = append(res, strings.TrimSpace(string(d)))
		}
		if d, err := os.ReadFile(filepath.Join(dir, "cmdline")); err == nil {
			arg0, _, _ := strings.Cut(string(d), "\x00")
			if arg0 != "" {
				res = append(res, arg0)
			}
		}
	}
	return res, nil
}
