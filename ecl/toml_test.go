package ecl

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestParseString_KeyOrder(t *testing.T) {
	input := `
[zebra]
stripes = true

[alpha]
second = 2
first = 1
`

	doc, err := ParseString(input)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	wantTop := []string{"zebra", "alpha"}
	if !slices.Equal(doc.Root.Keys(), wantTop) {
		t.Errorf("top-level order = %v, want %v", doc.Root.Keys(), wantTop)
	}

	alpha, ok := doc.Root.Get("alpha")
	if !ok || alpha.Kind != KindTable {
		t.Fatalf("missing alpha table")
	}

	wantKeys := []string{"second", "first"}
	if !slices.Equal(alpha.Table.Keys(), wantKeys) {
		t.Errorf("alpha key order = %v, want %v", alpha.Table.Keys(), wantKeys)
	}
}

func TestParseString_ValueKinds(t *testing.T) {
	input := `
[types]
flag = true
count = 42
ratio = 3.14
label = "text"
list = [1, 2, 3]
inline = { nested = "yes" }
`

	doc, err := ParseString(input)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	types, _ := doc.Root.Get("types")
	if types == nil || types.Kind != KindTable {
		t.Fatalf("missing types table")
	}

	wantKinds := map[string]Kind{
		"flag":   KindBool,
		"count":  KindInt,
		"ratio":  KindFloat,
		"label":  KindString,
		"list":   KindArray,
		"inline": KindTable,
	}

	for key, want := range wantKinds {
		v, ok := types.Table.Get(key)
		if !ok {
			t.Errorf("missing key %q", key)

			continue
		}

		if v.Kind != want {
			t.Errorf("kind of %q = %v, want %v", key, v.Kind, want)
		}
	}
}

func TestParseString_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "bare garbage", input: "= what"},
		{name: "unterminated string", input: `key = "unterminated`},
		{name: "unclosed header", input: "[section\nkey = 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			if err == nil {
				t.Fatal("expected parse error, got nil")
			}

			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("error = %v, want ErrMalformedInput", err)
			}
		})
	}
}

func TestParseString_DuplicateKeyNamesOffender(t *testing.T) {
	_, err := ParseString(`constants = { CONST1 = 10, CONST1 = 20 }`)
	if err == nil {
		t.Fatal("expected error for duplicate key, got nil")
	}

	if !errors.Is(err, ErrMalformedInput) {
		t.Errorf("error = %v, want ErrMalformedInput", err)
	}

	if !strings.Contains(err.Error(), "CONST1") {
		t.Errorf("error %q does not name the duplicate key", err)
	}
}

func TestParseString_DateTimeIsInvalidKind(t *testing.T) {
	doc, err := ParseString("[log]\nrotated = 1979-05-27T07:32:00Z\n")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	section, _ := doc.Root.Get("log")
	v, ok := section.Table.Get("rotated")

	if !ok || v.Kind != KindInvalid {
		t.Fatalf("date-time should parse as KindInvalid, got %+v", v)
	}

	if v.Raw != "date-time" {
		t.Errorf("Raw = %q, want %q", v.Raw, "date-time")
	}
}

func TestParseString_LeadingComments(t *testing.T) {
	input := `# generated file
# do not edit

[app]
name = "demo"
`

	doc, err := ParseString(input)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	var comments []string

	for _, node := range doc.Body {
		if node.Key == "" {
			comments = append(comments, node.Comment)
		}
	}

	want := []string{"# generated file", "# do not edit"}
	if !slices.Equal(comments, want) {
		t.Errorf("leading comments = %v, want %v", comments, want)
	}
}

func TestParseString_TrailingSectionComment(t *testing.T) {
	input := `[app] # main application
name = "demo"
`

	doc, err := ParseString(input)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	for _, node := range doc.Body {
		if node.Key == "app" {
			if node.Comment != "# main application" {
				t.Errorf("trailing comment = %q, want %q",
					node.Comment, "# main application")
			}

			return
		}
	}

	t.Fatal("no body node for section app")
}
