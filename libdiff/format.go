package libdiff

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Format writes lines as unified diff hunks with n lines of context. Nothing
// is written when there are no changes.
func Format(w io.Writer, lines []Line, n int, colored bool) error {
	for _, h := range hunks(lines, n) {
		hdr := h.header(lines)
		if colored {
			hdr = color.CyanString("%s", hdr)
		}
		if _, err := fmt.Fprintln(w, hdr); err != nil {
			return err
		}
		for _, ln := range lines[h.start:h.end] {
			s := ln.Op.Mark() + ln.Text
			if colored {
				switch ln.Op {
				case Delete:
					s = color.RedString("%s", s)
				case Insert:
					s = color.GreenString("%s", s)
				}
			}
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
	}
	return nil
}

type hunk struct {
	start, end int
}

func hunks(lines []Line, n int) []hunk {
	var res []hunk
	for i := 0; i < len(lines); i++ {
		if lines[i].Op == Equal {
			continue
		}
		start := max(i-n, 0)
		end := i + 1
		for j := i + 1; j < len(lines) && j <= end+n; j++ {
			if lines[j].Op != Equal {
				end = j + 1
			}
		}
		end = min(end+n, len(lines))
		if len(res) > 0 && start <= res[len(res)-1].end {
			res[len(res)-1].end = end
		} else {
			res = append(res, hunk{start: start, end: end})
		}
		i = end - 1
	}
	return res
}

func (h hunk) header(lines []Line) string {
	oldStart, oldCount, newStart, newCount := 0, 0, 0, 0
	for _, ln := range lines[h.start:h.end] {
		if ln.OldLine != 0 {
			if oldStart == 0 {
				oldStart = ln.OldLine
			}
			oldCount++
		}
		if ln.NewLine != 0 {
			if newStart == 0 {
				newStart = ln.NewLine
			}
			newCount++
		}
	}
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", oldStart, oldCount, newStart, newCount)
}
