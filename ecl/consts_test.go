package ecl

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

// mustParse parses a TOML document or fails the test.
func mustParse(t *testing.T, input string) *Document {
	t.Helper()

	doc, err := ParseString(input)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	return doc
}

// mustTranslator builds a Translator over input or fails the test.
func mustTranslator(t *testing.T, input string) *Translator {
	t.Helper()

	tr, err := New(mustParse(t, input))
	if err != nil {
		t.Fatalf("translator error: %v", err)
	}

	return tr
}

func TestDiscover_DocumentOrder(t *testing.T) {
	input := `
[server]
constants = { HOST = "localhost", PORT = 8080 }

[client]
constants = { RETRIES = 3 }
`

	reg, err := Discover(mustParse(t, input))
	if err != nil {
		t.Fatalf("discover error: %v", err)
	}

	want := []string{"HOST", "PORT", "RETRIES"}
	if got := slices.Collect(reg.Names()); !slices.Equal(got, want) {
		t.Errorf("names = %v, want %v", got, want)
	}
}

func TestDiscover_AnyDepth(t *testing.T) {
	input := `
[a.b.c]
constants = { DEEP = "buried" }

[top]
constants = { SHALLOW = 1 }
`

	reg, err := Discover(mustParse(t, input))
	if err != nil {
		t.Fatalf("discover error: %v", err)
	}

	for _, name := range []string{"DEEP", "SHALLOW"} {
		if !reg.Has(name) {
			t.Errorf("constant %q not registered", name)
		}
	}
}

func TestDiscover_CaseInsensitiveKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "uppercase", input: "[s]\nCONSTANTS = { X = 1 }\n"},
		{name: "mixed", input: "[s]\nConstants = { X = 1 }\n"},
		{name: "lowercase", input: "[s]\nconstants = { X = 1 }\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, err := Discover(mustParse(t, tt.input))
			if err != nil {
				t.Fatalf("discover error: %v", err)
			}

			if !reg.Has("X") {
				t.Error("constant X not registered")
			}
		})
	}
}

func TestDiscover_DuplicateAcrossTables(t *testing.T) {
	input := `
[one]
constants = { SHARED = 1 }

[two.deep]
constants = { SHARED = 2 }
`

	_, err := Discover(mustParse(t, input))
	if err == nil {
		t.Fatal("expected duplicate error, got nil")
	}

	if !errors.Is(err, ErrDuplicateConstant) {
		t.Errorf("error = %v, want ErrDuplicateConstant", err)
	}

	if !strings.Contains(err.Error(), "SHARED") {
		t.Errorf("error %q does not name the duplicate", err)
	}
}

func TestDiscover_InvalidName(t *testing.T) {
	input := `
[s]
constants = { "9bad" = 1 }
`

	_, err := Discover(mustParse(t, input))
	if err == nil {
		t.Fatal("expected invalid name error, got nil")
	}

	if !errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("error = %v, want ErrInvalidIdentifier", err)
	}

	if !strings.Contains(err.Error(), "9bad") {
		t.Errorf("error %q does not name the offender", err)
	}
}

func TestDiscover_NonTableValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "scalar", input: "[s]\nconstants = 5\n"},
		{name: "array", input: "[s]\nconstants = [1, 2]\n"},
		{name: "string", input: `constants = "nope"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Discover(mustParse(t, tt.input))
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if !errors.Is(err, ErrInvalidConstantsValue) {
				t.Errorf("error = %v, want ErrInvalidConstantsValue", err)
			}
		})
	}
}

func TestDiscover_NoConstants(t *testing.T) {
	input := `
[server]
host = "localhost"
`

	reg, err := Discover(mustParse(t, input))
	if err != nil {
		t.Fatalf("discover error: %v", err)
	}

	if reg.Len() != 0 {
		t.Errorf("registry size = %d, want 0", reg.Len())
	}
}

func TestResolve(t *testing.T) {
	input := `
[server]
constants = { PORT = 8080, NAME = "api" }

[worker.pool]
constants = { SIZE = 4 }
`

	doc := mustParse(t, input)

	tests := []struct {
		name    string
		lookup  string
		found   bool
		kind    Kind
		wantInt int64
	}{
		{name: "first table", lookup: "PORT", found: true, kind: KindInt, wantInt: 8080},
		{name: "string value", lookup: "NAME", found: true, kind: KindString},
		{name: "nested table", lookup: "SIZE", found: true, kind: KindInt, wantInt: 4},
		{name: "unknown", lookup: "MISSING", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Resolve(doc, tt.lookup)
			if ok != tt.found {
				t.Fatalf("Resolve(%q) found = %v, want %v", tt.lookup, ok, tt.found)
			}

			if !tt.found {
				return
			}

			if v.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", v.Kind, tt.kind)
			}

			if tt.kind == KindInt && v.Int != tt.wantInt {
				t.Errorf("value = %d, want %d", v.Int, tt.wantInt)
			}
		})
	}
}
