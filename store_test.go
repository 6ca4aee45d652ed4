package savedvars

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rpbox-app/savedvars/config"
	"github.com/rpbox-app/savedvars/encode"
	"github.com/rpbox-app/savedvars/guard"
	"github.com/rpbox-app/savedvars/ir"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readString(t *testing.T, path string) string {
	t.Helper()
	d, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func nine() *ir.Value {
	return ir.FromSlice([]*ir.Value{ir.FromInt(9)})
}

func TestRead(t *testing.T) {
	path := writeTemp(t, "a.lua", "Foo = { [\"a\"] = 1, [\"b\"] = \"x\" }\nBar = {\"x\", \"y\"}\n")
	s := New()
	foo, err := s.Read(path, "Foo")
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}, {Key: "b", Val: ir.FromString("x")}})
	if !ir.Equal(want, foo) {
		t.Errorf("Foo = %v", foo)
	}
	bar, err := s.Read(path, "Bar")
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(ir.FromSlice([]*ir.Value{ir.FromString("x"), ir.FromString("y")}), bar) {
		t.Errorf("Bar = %v", bar)
	}
	if _, err := s.Read(path, "Baz"); !errors.Is(err, ErrVariableNotFound) || errors.Is(err, ErrSyntax) {
		t.Errorf("got %v want ErrVariableNotFound", err)
	}
	if _, err := s.ReadObject(path, "Bar"); !errors.Is(err, ErrDataFormat) {
		t.Errorf("got %v want ErrDataFormat", err)
	}
	if _, err := s.Read(path+".missing", "Foo"); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("got %v want ErrFileNotFound", err)
	}
}

func TestReadSyntaxError(t *testing.T) {
	path := writeTemp(t, "bad.lua", "A = 1\nFoo = { \"open }\n")
	_, err := New().Read(path, "Foo")
	var sErr *SyntaxError
	if !errors.As(err, &sErr) {
		t.Fatalf("got %v want *SyntaxError", err)
	}
	if sErr.Line != 2 {
		t.Errorf("line %d", sErr.Line)
	}
}

func TestReadIntoAndNames(t *testing.T) {
	path := writeTemp(t, "p.lua", "TRP3_Profiles = { [\"0120\"] = { profileName = \"Flaria\" } }\nTRP3_Characters = {}\n")
	s := New()
	var got map[string]struct {
		Name string `json:"profileName"`
	}
	if err := s.ReadInto(path, "TRP3_Profiles", &got); err != nil {
		t.Fatal(err)
	}
	if got["0120"].Name != "Flaria" {
		t.Errorf("got %+v", got)
	}
	names, err := s.Names(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"TRP3_Profiles", "TRP3_Characters"}, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWritePatchesInPlace(t *testing.T) {
	path := writeTemp(t, "totalRP3.lua", "Foo = {1,2,3}\nBar = 1\n")
	s := New()
	if err := s.Write(path, "Foo", nine()); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("Foo = {\n  9,\n}\nBar = 1\n", readString(t, path)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("Foo = {1,2,3}\nBar = 1\n", readString(t, path+".rpbox_backup")); diff != "" {
		t.Errorf("backup (-want +got):\n%s", diff)
	}
	got, err := s.Read(path, "Foo")
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(nine(), got) {
		t.Errorf("read back %v", got)
	}
}

func TestWriteCreatesSkeleton(t *testing.T) {
	path := filepath.Join(t.TempDir(), "WTF", "Account", "A", "SavedVariables", "totalRP3.lua")
	s := New(WithSkeletons(config.Default().SkeletonMap()))
	if err := s.Write(path, "TRP3_Characters", ir.NewObject()); err != nil {
		t.Fatal(err)
	}
	names, err := s.Names(path)
	if err != nil {
		t.Fatal(err)
	}
	want := append([]string{"TRP3_Characters"}, "TRP3_Profiles", "TRP3_Configuration", "TRP3_Flyway",
		"TRP3_Presets", "TRP3_Companions", "TRP3_MatureFilter", "TRP3_Notes")
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := os.Stat(path + ".rpbox_backup"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("backup of new file: %v", err)
	}
}

func TestWriteRefusedWhileRunning(t *testing.T) {
	orig := "Foo = {1,2,3}\nBar = 1\n"
	path := writeTemp(t, "totalRP3.lua", orig)
	g := guard.New(guard.WithProbe(guard.ProbeFunc(func() bool { return true })))
	s := New(WithGuard(g))
	for name, write := range map[string]func() error{
		"Write":    func() error { return s.Write(path, "Foo", nine()) },
		"SetField": func() error { return s.SetField(path, "New", "k", ir.Null()) },
		"WriteRaw": func() error { return s.WriteRaw(path, []byte("x")) },
		"WriteAll": func() error { return s.WriteAll([]Assignment{{Path: path, Name: "Foo", Value: nine()}}) },
	} {
		if err := write(); !errors.Is(err, ErrTargetRunning) {
			t.Errorf("%s: got %v want ErrTargetRunning", name, err)
		}
		if got := readString(t, path); got != orig {
			t.Errorf("%s changed the file to %q", name, got)
		}
	}
}

func TestSetField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "RPBox_Addon.lua")
	s := New()
	if err := s.SetField(path, "RPBox_Sync", "version", ir.FromInt(1)); err != nil {
		t.Fatal(err)
	}
	if err := s.SetField(path, "RPBox_Sync", "lastSync", ir.FromInt(1700000000)); err != nil {
		t.Fatal(err)
	}
	want := "RPBox_Sync = {\n  version = 1,\n  lastSync = 1700000000,\n}\n"
	if diff := cmp.Diff(want, readString(t, path)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := s.SetField(path, "Other", "k", ir.FromBool(true)); err != nil {
		t.Fatal(err)
	}
	if err := s.Write(path, "Arr", nine()); err != nil {
		t.Fatal(err)
	}
	if err := s.SetField(path, "Arr", "k", ir.Null()); !errors.Is(err, ErrDataFormat) {
		t.Errorf("got %v want ErrDataFormat", err)
	}
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "totalRP3.lua")
	b := filepath.Join(dir, "totalRP3_Extended.lua")
	if err := os.WriteFile(a, []byte("TRP3_Profiles = {}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	s := New()
	err := s.WriteAll([]Assignment{
		{Path: a, Name: "TRP3_Profiles", Value: nine()},
		{Path: b, Name: "TRP3_Tools_DB", Value: ir.NewObject()},
		{Path: a, Name: "TRP3_Notes", Value: ir.FromString("n")},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := "TRP3_Profiles = {\n  9,\n}\nTRP3_Notes = \"n\"\n"
	if diff := cmp.Diff(want, readString(t, a)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("TRP3_Tools_DB = {}\n", readString(t, b)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestWriteAllPartial(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.lua")
	b := filepath.Join(dir, "b.lua")
	if err := os.WriteFile(b, []byte("X = { 1"), 0644); err != nil {
		t.Fatal(err)
	}
	s := New()
	err := s.WriteAll([]Assignment{
		{Path: a, Name: "X", Value: ir.FromInt(1)},
		{Path: b, Name: "X", Value: ir.FromInt(2)},
	})
	var bErr *BatchError
	if !errors.As(err, &bErr) {
		t.Fatalf("got %v want *BatchError", err)
	}
	if diff := cmp.Diff([]string{a}, bErr.Committed); diff != "" {
		t.Errorf("committed (-want +got):\n%s", diff)
	}
	if bErr.Path != b || !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("got %v", err)
	}
	if got := readString(t, a); got != "X = 1\n" {
		t.Errorf("first file %q", got)
	}
	if got := readString(t, b); got != "X = { 1" {
		t.Errorf("second file changed to %q", got)
	}
}

func TestWriteRawAndPreview(t *testing.T) {
	path := writeTemp(t, "f.lua", "old")
	s := New(WithEncodeOptions(encode.NumericKeys(true)))
	text := "-- anything goes\nX = { [1] = 2 }"
	if err := s.WriteRaw(path, []byte(text)); err != nil {
		t.Fatal(err)
	}
	if got := readString(t, path); got != text {
		t.Errorf("got %q", got)
	}
	v := ir.FromKeyVals([]ir.KeyVal{{Key: "1", Val: ir.FromInt(3)}})
	before, after, err := s.Preview(path, "X", v)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != text {
		t.Errorf("before %q", before)
	}
	if want := "-- anything goes\nX = {\n  [1] = 3,\n}\n"; string(after) != want {
		t.Errorf("after %q want %q", after, want)
	}
	if got := readString(t, path); got != text {
		t.Errorf("preview wrote %q", got)
	}
	before, _, err = s.Preview(path+".new", "X", v)
	if err != nil || before != nil {
		t.Errorf("before %q err %v", before, err)
	}
}

func TestBatchErrorMessage(t *testing.T) {
	err := &BatchError{Committed: []string{"a.lua"}, Path: "b.lua", Err: ErrWriteFailed}
	want := "batch stopped at b.lua: write failed (already written: a.lua)"
	if err.Error() != want {
		t.Errorf("got %q", err.Error())
	}
	if !errors.Is(err, ErrWriteFailed) {
		t.Error("unwrap")
	}
}
