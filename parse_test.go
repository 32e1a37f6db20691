package jot_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/jot"
)

func TestParseValidDocument(t *testing.T) {
	r, err := os.Open(filepath.Join("testdata/sample.json"))
	if err != nil {
		t.Errorf("fail to open sample file: %s", err)
		return
	}
	defer r.Close()

	doc, err := jot.Parse(r)
	if err != nil {
		t.Errorf("fail to parse sample file: %s", err)
		return
	}
	if doc.Kind() != jot.KindObject {
		t.Errorf("object expected at top level, got %s", jot.TypeName(doc))
	}
}

func TestParseInvalidDocument(t *testing.T) {
	data := []struct {
		Json  string
		Cause string
		Err   error
	}{
		{
			Json:  `[1,2,]`,
			Cause: "trailing comma in array",
			Err:   jot.ErrExpectedValue,
		},
		{
			Json:  `[,1]`,
			Cause: "leading comma in array",
			Err:   jot.ErrExpectedValue,
		},
		{
			Json:  `{"a":1,}`,
			Cause: "trailing comma in object",
			Err:   jot.ErrExpectedMember,
		},
		{
			Json:  `{"a":1`,
			Cause: "unclosed object",
			Err:   jot.ErrUnexpectedEnd,
		},
		{
			Json:  `[1,2`,
			Cause: "unclosed array",
			Err:   jot.ErrUnexpectedEnd,
		},
		{
			Json:  `"abc`,
			Cause: "unterminated string",
			Err:   jot.ErrUnterminatedString,
		},
		{
			Json:  `{1: true}`,
			Cause: "object key not a string",
			Err:   jot.ErrExpectedMember,
		},
		{
			Json:  `{"a" true}`,
			Cause: "missing colon after key",
			Err:   jot.ErrUnexpectedToken,
		},
		{
			Json:  `nul`,
			Cause: "truncated literal",
			Err:   jot.ErrUnexpectedEnd,
		},
		{
			Json:  `nill`,
			Cause: "misspelled literal",
			Err:   jot.ErrUnexpectedToken,
		},
		{
			Json:  `01`,
			Cause: "leading zero",
			Err:   jot.ErrUnexpectedToken,
		},
		{
			Json:  `1e309`,
			Cause: "number overflows",
			Err:   jot.ErrNumberRange,
		},
		{
			Json:  `1.`,
			Cause: "fraction without digits",
			Err:   jot.ErrUnexpectedToken,
		},
		{
			Json:  `1e`,
			Cause: "exponent without digits",
			Err:   jot.ErrUnexpectedToken,
		},
		{
			Json:  `"a\x"`,
			Cause: "illegal escape",
			Err:   jot.ErrIllegalEscape,
		},
		{
			Json:  "\"a\tb\"",
			Cause: "raw control character in string",
			Err:   jot.ErrIllegalCharacter,
		},
		{
			Json:  `"\ud834"`,
			Cause: "unpaired high surrogate",
			Err:   jot.ErrIllegalEscape,
		},
		{
			Json:  `"\udd1e"`,
			Cause: "lone low surrogate",
			Err:   jot.ErrIllegalEscape,
		},
		{
			Json:  `{"a": 1} {"b": 2}`,
			Cause: "second document after the first",
			Err:   jot.ErrTrailing,
		},
		{
			Json:  `true false`,
			Cause: "content after literal",
			Err:   jot.ErrTrailing,
		},
	}
	for _, d := range data {
		_, err := jot.ParseString(d.Json)
		if err == nil {
			t.Errorf("%s: invalid document parsed properly!", d.Cause)
			continue
		}
		if !errors.Is(err, d.Err) {
			t.Errorf("%s: error mismatched! want %s, got %s", d.Cause, d.Err, err)
		}
		var perr *jot.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%s: error carries no position", d.Cause)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	data := []struct {
		Json string
		Want float64
	}{
		{Json: `0`, Want: 0},
		{Json: `-1`, Want: -1},
		{Json: `42`, Want: 42},
		{Json: `3.1415`, Want: 3.1415},
		{Json: `-0.25`, Want: -0.25},
		{Json: `1e3`, Want: 1000},
		{Json: `1E3`, Want: 1000},
		{Json: `2.5e-2`, Want: 0.025},
		{Json: `1e+2`, Want: 100},
		{Json: `1e-999`, Want: 0},
		{Json: `-1e-999`, Want: 0},
	}
	for _, d := range data {
		value, err := jot.ParseString(d.Json)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", d.Json, err)
			continue
		}
		num, ok := value.(jot.Number)
		if !ok {
			t.Errorf("%s: number expected, got %s", d.Json, jot.TypeName(value))
			continue
		}
		if float64(num) != d.Want {
			t.Errorf("%s: value mismatched! want %g, got %g", d.Json, d.Want, float64(num))
		}
	}
}

func TestParseNegativeZero(t *testing.T) {
	value, err := jot.ParseString(`-0`)
	if err != nil {
		t.Errorf("unexpected error: %s", err)
		return
	}
	num, ok := value.(jot.Number)
	if !ok {
		t.Errorf("number expected, got %s", jot.TypeName(value))
		return
	}
	if !math.Signbit(float64(num)) {
		t.Errorf("sign of negative zero not kept")
	}
}

func TestParseStrings(t *testing.T) {
	data := []struct {
		Json string
		Want string
	}{
		{Json: `""`, Want: ""},
		{Json: `"hello"`, Want: "hello"},
		{Json: `"héllo"`, Want: "héllo"},
		{Json: `"a\"b"`, Want: `a"b`},
		{Json: `"a\\b"`, Want: `a\b`},
		{Json: `"a\/b"`, Want: "a/b"},
		{Json: `"a\b\f\n\r\t"`, Want: "a\b\f\n\r\t"},
		{Json: `"Aé"`, Want: "Aé"},
		{Json: `"❤"`, Want: "❤"},
		{Json: `"𝄞"`, Want: "\U0001d11e"},
		{Json: `"\u0041"`, Want: "A"},
		{Json: `"\u00e9"`, Want: "é"},
		{Json: `"\u00E9"`, Want: "é"},
		{Json: `"\u2764"`, Want: "❤"},
		{Json: `"\ud834\udd1e"`, Want: "\U0001d11e"},
		{Json: `"g: \ud834\udd1e clef"`, Want: "g: \U0001d11e clef"},
	}
	for _, d := range data {
		value, err := jot.ParseString(d.Json)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", d.Json, err)
			continue
		}
		str, ok := value.(jot.String)
		if !ok {
			t.Errorf("%s: string expected, got %s", d.Json, jot.TypeName(value))
			continue
		}
		if string(str) != d.Want {
			t.Errorf("%s: value mismatched! want %q, got %q", d.Json, d.Want, string(str))
		}
	}
}

func TestParseOrderPreserved(t *testing.T) {
	value, err := jot.ParseString(`{"a": 1, "b": 2, "a": 3}`)
	if err != nil {
		t.Errorf("unexpected error: %s", err)
		return
	}
	obj, ok := value.(*jot.Object)
	if !ok {
		t.Errorf("object expected, got %s", jot.TypeName(value))
		return
	}
	keys := obj.Keys()
	want := []string{"a", "b", "a"}
	if len(keys) != len(want) {
		t.Errorf("keys mismatched! want %v, got %v", want, keys)
		return
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("member %d reordered! want %s, got %s", i, want[i], keys[i])
		}
	}
	if num, ok := obj.Get("a").(jot.Number); !ok || num != 1 {
		t.Errorf("first member should win on duplicate key")
	}
}

func TestParseEmptyInput(t *testing.T) {
	for _, str := range []string{"", "   ", " \t\r\n "} {
		value, err := jot.ParseString(str)
		if err != nil {
			t.Errorf("%q: unexpected error: %s", str, err)
			continue
		}
		if value.Kind() != jot.KindUnknown {
			t.Errorf("%q: unknown expected, got %s", str, jot.TypeName(value))
		}
	}
}

func TestParseWhitespaceInsensitive(t *testing.T) {
	var (
		terse = `{"a":[1,2,{"b":null}],"c":true}`
		loose = "  {\r\n\t\"a\" : [ 1 ,\n 2 ,\t{ \"b\" : null } ] ,\n \"c\" :  true }  \n"
	)
	left, err := jot.ParseString(terse)
	if err != nil {
		t.Errorf("unexpected error: %s", err)
		return
	}
	right, err := jot.ParseString(loose)
	if err != nil {
		t.Errorf("unexpected error: %s", err)
		return
	}
	if !jot.Equal(left, right) {
		t.Errorf("documents should parse to the same tree")
	}
}

func TestParseEmptyCollections(t *testing.T) {
	data := []struct {
		Json string
		Kind jot.Kind
	}{
		{Json: `[]`, Kind: jot.KindArray},
		{Json: `{}`, Kind: jot.KindObject},
		{Json: ` [ ] `, Kind: jot.KindArray},
		{Json: ` { } `, Kind: jot.KindObject},
	}
	for _, d := range data {
		value, err := jot.ParseString(d.Json)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", d.Json, err)
			continue
		}
		if value.Kind() != d.Kind {
			t.Errorf("%s: kind mismatched! want %s, got %s", d.Json, d.Kind, value.Kind())
		}
		if !value.Leaf() {
			t.Errorf("%s: collection should be empty", d.Json)
		}
	}
}

func TestParseDepthLimit(t *testing.T) {
	var (
		deep = strings.Repeat("[", 64) + strings.Repeat("]", 64)
		p    = jot.NewParser([]byte(deep))
	)
	p.MaxDepth = 16
	if _, err := p.Parse(); !errors.Is(err, jot.ErrDepth) {
		t.Errorf("nesting error expected, got %v", err)
	}
	if _, err := jot.ParseString(deep); err != nil {
		t.Errorf("document within default limit rejected: %s", err)
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`null`,
		`true`,
		`"plain ascii"`,
		`[1, 2, 3]`,
		`{"a": {"b": [true, false, null]}, "c": -12.5, "d": []}`,
		`{"nested": [{"k": "v"}, [[]], {}]}`,
	}
	for _, doc := range docs {
		left, err := jot.ParseString(doc)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", doc, err)
			continue
		}
		str, err := jot.FormatString(left)
		if err != nil {
			t.Errorf("%s: fail to format: %s", doc, err)
			continue
		}
		right, err := jot.ParseString(str)
		if err != nil {
			t.Errorf("%s: fail to reparse formatted output: %s", doc, err)
			continue
		}
		if !jot.Equal(left, right) {
			t.Errorf("%s: tree changed through round trip", doc)
		}
	}
}
