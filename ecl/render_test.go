package ecl

import (
	"errors"
	"strings"
	"testing"
)

func TestRender_Scalars(t *testing.T) {
	tr := mustTranslator(t, "")

	tests := []struct {
		name  string
		value *Value
		want  string
	}{
		{name: "true", value: NewBool(true), want: "true"},
		{name: "false", value: NewBool(false), want: "false"},
		{name: "int", value: NewInt(8080), want: "8080"},
		{name: "negative int", value: NewInt(-3), want: "-3"},
		{name: "float", value: NewFloat(3.14), want: "3.14"},
		{name: "string", value: NewString("localhost"), want: `"localhost"`},
		{name: "empty string", value: NewString(""), want: `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.Render(tt.value, 1)
			if err != nil {
				t.Fatalf("render error: %v", err)
			}

			if got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_Arrays(t *testing.T) {
	tr := mustTranslator(t, "")

	tests := []struct {
		name  string
		value *Value
		want  string
	}{
		{
			name:  "scalar elements",
			value: NewArray(NewInt(5432), NewInt(5433), NewInt(5434)),
			want:  "#( 5432, 5433, 5434 )",
		},
		{
			name:  "empty",
			value: NewArray(),
			want:  "#(  )",
		},
		{
			name:  "mixed scalars",
			value: NewArray(NewString("a"), NewBool(true), NewFloat(1.5)),
			want:  `#( "a", true, 1.5 )`,
		},
		{
			name:  "nested arrays",
			value: NewArray(NewArray(NewInt(1)), NewArray()),
			want:  "#( #( 1 ), #(  ) )",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tr.Render(tt.value, 1)
			if err != nil {
				t.Fatalf("render error: %v", err)
			}

			if got != tt.want {
				t.Errorf("Render = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_Table(t *testing.T) {
	tr := mustTranslator(t, "")

	table := NewTable()
	table.Set("host", NewString("localhost"))
	table.Set("port", NewInt(8080))

	got, err := tr.Render(NewTableValue(table), 2)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	want := "$[\n\t\thost = \"localhost\",\n\t\tport = 8080\n\t]"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_TableNested(t *testing.T) {
	tr := mustTranslator(t, "")

	inner := NewTable()
	inner.Set("user", NewString("admin"))

	outer := NewTable()
	outer.Set("auth", NewTableValue(inner))

	got, err := tr.Render(NewTableValue(outer), 2)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	want := "$[\n\t\tauth = $[\n\t\t\tuser = \"admin\"\n\t\t]\n\t]"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_StringSubstitutes(t *testing.T) {
	tr := mustTranslator(t, `
[app]
constants = { NAME = "demo" }
`)

	got, err := tr.Render(NewString("app=.{NAME}."), 1)
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	if got != `"app=demo"` {
		t.Errorf("Render = %q, want %q", got, `"app=demo"`)
	}
}

func TestRender_UnsupportedType(t *testing.T) {
	tr := mustTranslator(t, "")

	_, err := tr.Render(&Value{Kind: KindInvalid, Raw: "date-time"}, 1)
	if err == nil {
		t.Fatal("expected unsupported type error, got nil")
	}

	if !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("error = %v, want ErrUnsupportedType", err)
	}

	if !strings.Contains(err.Error(), "date-time") {
		t.Errorf("error %q does not name the source type", err)
	}
}

func TestRender_TableInvalidKey(t *testing.T) {
	tr := mustTranslator(t, "")

	table := NewTable()
	table.Set("bad-key", NewInt(1))

	_, err := tr.Render(NewTableValue(table), 1)
	if err == nil {
		t.Fatal("expected identifier error, got nil")
	}

	if !errors.Is(err, ErrUnsupportedIdentifier) {
		t.Errorf("error = %v, want ErrUnsupportedIdentifier", err)
	}

	if !strings.Contains(err.Error(), "bad-key") {
		t.Errorf("error %q does not name the key", err)
	}
}

func TestIndent(t *testing.T) {
	tests := []struct {
		depth int
		want  string
	}{
		{depth: -1, want: ""},
		{depth: 0, want: ""},
		{depth: 1, want: "\t"},
		{depth: 3, want: "\t\t\t"},
	}

	for _, tt := range tests {
		if got := indent(tt.depth); got != tt.want {
			t.Errorf("indent(%d) = %q, want %q", tt.depth, got, tt.want)
		}
	}
}
