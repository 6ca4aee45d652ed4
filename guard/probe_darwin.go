package guard

import (
	"os/exec"
	"strings"
)

// Processes lists the command names of running processes as reported by ps.
func Processes() ([]string, error) {
	out, err := exec.Command("ps", "-A", "-o", "comm=").Output()
	if err != nil {
		return nil, err
	}
	var res []string
	for _, ln := range strings.Split(string(out), "\n") {
		if ln = strings.TrimSpace(ln); ln != "" {
			res = append(res, ln)
		}
	}
	return res, nil
}
