package ecl

import (
	"context"
	"strings"
	"testing"
)

func TestFormatJSON_PreservesOrder(t *testing.T) {
	doc := mustParse(t, "[zebra]\nz = 1\na = 2\n\n[alpha]\nc = 3\n")

	var sb strings.Builder

	err := doc.FormatJSON(context.Background(), &sb, 0)
	if err != nil {
		t.Fatalf("format error: %v", err)
	}

	want := `{"zebra":{"z":1,"a":2},"alpha":{"c":3}}` + "\n"
	if sb.String() != want {
		t.Errorf("JSON = %q, want %q", sb.String(), want)
	}
}

func TestFormatJSON_Indented(t *testing.T) {
	doc := mustParse(t, "[app]\nname = \"demo\"\n")

	var sb strings.Builder

	err := doc.FormatJSON(context.Background(), &sb, 2)
	if err != nil {
		t.Fatalf("format error: %v", err)
	}

	if !strings.Contains(sb.String(), "\n  ") {
		t.Errorf("expected two-space indentation:\n%s", sb.String())
	}
}

func TestFormatYAML(t *testing.T) {
	doc := mustParse(t, "[server]\nhost = \"localhost\"\nport = 8080\n")

	var sb strings.Builder

	err := doc.FormatYAML(context.Background(), &sb, 2)
	if err != nil {
		t.Fatalf("format error: %v", err)
	}

	for _, want := range []string{"host: localhost", "port: 8080"} {
		if !strings.Contains(sb.String(), want) {
			t.Errorf("YAML output missing %q:\n%s", want, sb.String())
		}
	}
}
