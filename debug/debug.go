// Package debug holds environment toggled tracing for parsing, patching and
// guarded writes.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Patch bool
	Guard bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SV_DEBUG_PARSE")
	d.Patch = boolEnv("SV_DEBUG_PATCH")
	d.Guard = boolEnv("SV_DEBUG_GUARD")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Patch() bool {
	return d.Patch
}
func Guard() bool {
	return d.Guard
}
