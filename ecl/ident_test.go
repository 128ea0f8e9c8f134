package ecl

import "testing"

func TestIsIdent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "single letter", input: "a", want: true},
		{name: "single uppercase", input: "Z", want: true},
		{name: "underscore only", input: "_", want: true},
		{name: "underscore prefix", input: "_private", want: true},
		{name: "mixed case", input: "maxConnections", want: true},
		{name: "screaming snake", input: "MAX_CONNECTIONS", want: true},
		{name: "trailing digits", input: "port8080", want: true},
		{name: "interior digits", input: "v2ray", want: true},
		{name: "empty", input: "", want: false},
		{name: "leading digit", input: "9lives", want: false},
		{name: "hyphen", input: "invalid-section", want: false},
		{name: "dotted", input: "server.host", want: false},
		{name: "space", input: "two words", want: false},
		{name: "punctuation", input: "name!", want: false},
		{name: "non-ascii letter", input: "café", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIdent(tt.input); got != tt.want {
				t.Errorf("IsIdent(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
