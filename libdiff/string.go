// Package libdiff computes line diffs between file contents, used to preview
// a write before it happens.
package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Line is one line of a diff. OldLine and NewLine are 1-based line numbers
// in from and to; the one that does not apply to Op is 0.
type Line struct {
	Op      Op
	Text    string
	OldLine int
	NewLine int
}

// DiffLines diffs from and to line by line.
func DiffLines(from, to string) []Line {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	var res []Line
	oi, ni := 1, 1
	for i := range diffs {
		diff := &diffs[i]
		for _, ln := range splitLines(diff.Text) {
			switch diff.Type {
			case diffpatch.DiffInsert:
				res = append(res, Line{Op: Insert, Text: ln, NewLine: ni})
				ni++
			case diffpatch.DiffDelete:
				res = append(res, Line{Op: Delete, Text: ln, OldLine: oi})
				oi++
			case diffpatch.DiffEqual:
				res = append(res, Line{Op: Equal, Text: ln, OldLine: oi, NewLine: ni})
				oi++
				ni++
			}
		}
	}
	return res
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	res := strings.SplitAfter(s, "\n")
	if res[len(res)-1] == "" {
		res = res[:len(res)-1]
	}
	for i := range res {
		res[i] = strings.TrimSuffix(res[i], "\n")
	}
	return res
}
