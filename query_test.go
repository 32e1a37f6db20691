package jot_test

import (
	"testing"

	"github.com/midbel/jot"
)

const document = `{
	"a": {"b": 1},
	"c": 2,
	"list": [
		{"deep": {"b": 99}},
		{"b": 3}
	]
}`

func TestFind(t *testing.T) {
	doc, err := jot.ParseString(document)
	if err != nil {
		t.Errorf("fail to parse input document: %s", err)
		return
	}

	res := jot.Find(doc, "b")
	if num, ok := res.(jot.Number); !ok || num != 1 {
		t.Errorf("first match expected for b, got %s", jot.TypeName(res))
	}

	res = jot.Find(doc, "c")
	if num, ok := res.(jot.Number); !ok || num != 2 {
		t.Errorf("direct member expected for c, got %s", jot.TypeName(res))
	}

	res = jot.Find(doc, "a")
	obj, ok := res.(*jot.Object)
	if !ok {
		t.Errorf("matched member should be returned as is, got %s", jot.TypeName(res))
		return
	}
	if obj.Len() != 1 || obj.Keys()[0] != "b" {
		t.Errorf("nested object returned for a is not the expected one")
	}

	res = jot.Find(doc, "z")
	if res.Kind() != jot.KindUnknown {
		t.Errorf("miss should give unknown, got %s", jot.TypeName(res))
	}
}

func TestFindInArray(t *testing.T) {
	doc, err := jot.ParseString(`[[{"x": 1}], {"y": 2}]`)
	if err != nil {
		t.Errorf("fail to parse input document: %s", err)
		return
	}
	if num, ok := jot.Find(doc, "x").(jot.Number); !ok || num != 1 {
		t.Errorf("value nested in arrays not found")
	}
	if num, ok := jot.Find(doc, "y").(jot.Number); !ok || num != 2 {
		t.Errorf("value in later element not found")
	}
}

func TestFindScalarRoot(t *testing.T) {
	doc, err := jot.ParseString(`42`)
	if err != nil {
		t.Errorf("fail to parse input document: %s", err)
		return
	}
	if res := jot.Find(doc, "a"); res.Kind() != jot.KindUnknown {
		t.Errorf("scalar root should never match, got %s", jot.TypeName(res))
	}
}

func TestFindAll(t *testing.T) {
	doc, err := jot.ParseString(document)
	if err != nil {
		t.Errorf("fail to parse input document: %s", err)
		return
	}
	list := jot.FindAll(doc, "b")
	want := []float64{1, 99, 3}
	if len(list) != len(want) {
		t.Errorf("matches mismatched! want %d, got %d", len(want), len(list))
		return
	}
	for i := range want {
		num, ok := list[i].(jot.Number)
		if !ok || float64(num) != want[i] {
			t.Errorf("match %d mismatched! want %g, got %s", i, want[i], jot.TypeName(list[i]))
		}
	}
	if list := jot.FindAll(doc, "z"); len(list) != 0 {
		t.Errorf("no match expected, got %d", len(list))
	}
}

func TestTypeName(t *testing.T) {
	data := []struct {
		Json string
		Want string
	}{
		{Json: `null`, Want: "null"},
		{Json: `false`, Want: "false"},
		{Json: `true`, Want: "true"},
		{Json: `0`, Want: "number"},
		{Json: `"s"`, Want: "string"},
		{Json: `[]`, Want: "array"},
		{Json: `{}`, Want: "object"},
		{Json: ``, Want: "unknown"},
	}
	for _, d := range data {
		value, err := jot.ParseString(d.Json)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", d.Json, err)
			continue
		}
		if got := jot.TypeName(value); got != d.Want {
			t.Errorf("%s: name mismatched! want %s, got %s", d.Json, d.Want, got)
		}
	}
	if got := jot.TypeName(nil); got != "unknown" {
		t.Errorf("nil value: name mismatched! want unknown, got %s", got)
	}
}
