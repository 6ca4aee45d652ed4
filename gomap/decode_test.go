package gomap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rpbox-app/savedvars/ir"
)

type characteristics struct {
	FirstName string `json:"FN"`
	LastName  string `json:"LN,omitempty"`
	Title     string `json:"TI,omitempty"`
	Icon      string `json:"IC,omitempty"`
}

type profile struct {
	Name  string          `json:"profileName"`
	Chars characteristics `json:"characteristics"`
	Tags  []string        `json:"tags,omitempty"`
}

func TestLoad(t *testing.T) {
	in := `TRP3_Profiles = {
	["0120"] = {
		["profileName"] = "芙拉莉雅",
		["characteristics"] = { ["FN"] = "Flaria", ["IC"] = "inv_misc" },
		["tags"] = { "a", "b" },
	},
}`
	var got map[string]profile
	if err := Load([]byte(in), "TRP3_Profiles", &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]profile{
		"0120": {
			Name:  "芙拉莉雅",
			Chars: characteristics{FirstName: "Flaria", Icon: "inv_misc"},
			Tags:  []string{"a", "b"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDecodeMismatch(t *testing.T) {
	var p profile
	err := Decode(ir.FromSlice([]*ir.Value{ir.FromInt(1)}), &p)
	if !errors.Is(err, ir.ErrDataFormat) {
		t.Errorf("got %v want ErrDataFormat", err)
	}
}

func TestEncodeKeepsFieldOrder(t *testing.T) {
	v, err := Encode(profile{Name: "x", Chars: characteristics{FirstName: "F"}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"profileName", "characteristics"}, v.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := v.Get("characteristics").Get("FN"); got == nil || got.String != "F" {
		t.Errorf("FN = %v", got)
	}
}

type upper string

func (u *upper) FromValue(v *ir.Value) error {
	*u = upper(v.String + "!")
	return nil
}

func TestValueFromer(t *testing.T) {
	var u upper
	if err := Decode(ir.FromString("hi"), &u); err != nil {
		t.Fatal(err)
	}
	if u != "hi!" {
		t.Errorf("got %q", u)
	}
}
