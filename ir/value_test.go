package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetKeepsPosition(t *testing.T) {
	obj := NewObject()
	obj.Set("b", FromInt(1))
	obj.Set("a", FromInt(2))
	obj.Set("b", FromInt(3))
	if diff := cmp.Diff([]string{"b", "a"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if got := obj.Get("b"); got == nil || got.Number != 3 {
		t.Errorf("got %v want 3", got)
	}
}

func TestDelete(t *testing.T) {
	obj := FromKeyVals([]KeyVal{
		{Key: "x", Val: Null()},
		{Key: "y", Val: FromBool(true)},
	})
	if !obj.Delete("x") {
		t.Fatal("expected x to be deleted")
	}
	if obj.Delete("x") {
		t.Error("x deleted twice")
	}
	if diff := cmp.Diff([]string{"y"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestFromMapSorted(t *testing.T) {
	obj := FromMap(map[string]*Value{
		"z": FromInt(1),
		"a": FromInt(2),
		"m": FromInt(3),
	})
	if diff := cmp.Diff([]string{"a", "m", "z"}, obj.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "list", Val: FromSlice([]*Value{FromString("a")})},
	})
	c := orig.Clone()
	c.Get("list").Values[0].String = "changed"
	c.Set("new", Null())
	if orig.Get("list").Values[0].String != "a" {
		t.Error("clone shares array elements")
	}
	if orig.Get("new") != nil {
		t.Error("clone shares object keys")
	}
	if !Equal(orig, orig.Clone()) {
		t.Error("clone not equal to original")
	}
}

func TestEqual(t *testing.T) {
	a := FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromString("x")}})
	b := FromKeyVals([]KeyVal{{Key: "b", Val: FromString("x")}, {Key: "a", Val: FromInt(1)}})
	if !Equal(a, b) {
		t.Error("object key order should not matter")
	}
	b.Set("a", FromInt(2))
	if Equal(a, b) {
		t.Error("different values compared equal")
	}
	x := FromSlice([]*Value{FromInt(1), FromInt(2)})
	y := FromSlice([]*Value{FromInt(2), FromInt(1)})
	if Equal(x, y) {
		t.Error("array order should matter")
	}
	if Equal(NewObject(), NewArray()) {
		t.Error("empty object equals empty array")
	}
}

func TestNumberKey(t *testing.T) {
	for f, want := range map[float64]string{
		1:    "1",
		-3:   "-3",
		1.5:  "1.5",
		1e21: "1000000000000000000000",
	} {
		if got := NumberKey(f); got != want {
			t.Errorf("NumberKey(%v) = %q want %q", f, got, want)
		}
	}
}

func TestVisit(t *testing.T) {
	v := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Value{FromString("x"), FromString("y")})},
	})
	var keys []string
	err := v.Visit(func(key string, _ *Value, isPost bool) (bool, error) {
		if !isPost {
			keys = append(keys, key)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"", "a", "1", "2"}, keys); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestAsObject(t *testing.T) {
	if _, err := AsObject(NewObject()); err != nil {
		t.Error(err)
	}
	if _, err := AsObject(NewArray()); err == nil {
		t.Error("expected data format error")
	}
}
