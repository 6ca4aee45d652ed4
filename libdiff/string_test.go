package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffLines(t *testing.T) {
	from := "Foo = {1,2,3}\nBar = 1\n"
	to := "Foo = {\n  9,\n}\nBar = 1\n"
	got := DiffLines(from, to)
	want := []Line{
		{Op: Delete, Text: "Foo = {1,2,3}", OldLine: 1},
		{Op: Insert, Text: "Foo = {", NewLine: 1},
		{Op: Insert, Text: "  9,", NewLine: 2},
		{Op: Insert, Text: "}", NewLine: 3},
		{Op: Equal, Text: "Bar = 1", OldLine: 2, NewLine: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Error("expected change")
	}
	if Changed(DiffLines(from, from)) {
		t.Error("no change expected")
	}
}

func TestFormat(t *testing.T) {
	from := "a\nb\nc\nd\ne\nf\ng\nh\n"
	to := "a\nb\nC\nd\ne\nf\ng\nH\n"
	buf := bytes.NewBuffer(nil)
	if err := Format(buf, DiffLines(from, to), 1, false); err != nil {
		t.Fatal(err)
	}
	want := `@@ -2,3 +2,3 @@
 b
-c
+C
 d
@@ -7,2 +7,2 @@
 g
-h
+H
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFormatMergesHunks(t *testing.T) {
	from := "a\nb\nc\nd\n"
	to := "A\nb\nc\nD\n"
	buf := bytes.NewBuffer(nil)
	if err := Format(buf, DiffLines(from, to), 1, false); err != nil {
		t.Fatal(err)
	}
	want := "@@ -1,4 +1,4 @@\n-a\n+A\n b\n c\n-d\n+D\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFormatNoChange(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Format(buf, DiffLines("x\n", "x\n"), 3, true); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("got %q", buf.String())
	}
}
