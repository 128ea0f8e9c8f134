package cli

import "testing"

func TestSplitFlag(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		wantName string
		wantVal  string
		assigned bool
	}{
		{name: "assigned", arg: "--log-level=debug", wantName: "--log-level", wantVal: "debug", assigned: true},
		{name: "bare flag", arg: "--log-pretty", wantName: "--log-pretty"},
		{name: "assigned bool", arg: "--no-log-caller=true", wantName: "--no-log-caller", wantVal: "true", assigned: true},
		{name: "not a flag", arg: "translate", wantName: "translate"},
		{name: "empty value", arg: "--log-format=", wantName: "--log-format", wantVal: "", assigned: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, value, assigned := splitFlag(tt.arg)
			if name != tt.wantName || value != tt.wantVal || assigned != tt.assigned {
				t.Errorf("splitFlag(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.arg, name, value, assigned,
					tt.wantName, tt.wantVal, tt.assigned)
			}
		})
	}
}

func TestBoolFlag(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		value    string
		assigned bool
		want     bool
		ok       bool
	}{
		{name: "bare positive", flag: "--log-pretty", want: true, ok: true},
		{name: "bare negated", flag: "--no-log-pretty", want: false, ok: true},
		{name: "assigned true", flag: "--log-caller", value: "true", assigned: true, want: true, ok: true},
		{name: "assigned false", flag: "--log-caller", value: "false", assigned: true, want: false, ok: true},
		{name: "negated assigned true", flag: "--no-log-caller", value: "true", assigned: true, want: false, ok: true},
		{name: "unparsable", flag: "--log-pretty", value: "maybe", assigned: true, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := boolFlag(tt.flag, tt.value, tt.assigned)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}

			if ok && got != tt.want {
				t.Errorf("boolFlag = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogConfigScan(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantLevel  logLevel
		wantFormat logFormat
		wantPretty bool
		wantCaller bool
	}{
		{
			name:      "level with separate value",
			args:      []string{"--log-level", "debug"},
			wantLevel: "debug",
		},
		{
			name:       "format assigned",
			args:       []string{"--log-format=text"},
			wantFormat: "text",
		},
		{
			name:       "pretty enabled",
			args:       []string{"--log-pretty"},
			wantPretty: true,
		},
		{
			name: "pretty negated",
			args: []string{"--log-pretty", "--no-log-pretty"},
		},
		{
			name:       "caller with other args",
			args:       []string{"translate", "--log-caller", "-o", "out"},
			wantCaller: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f logConfig

			f.scan(tt.args)

			if f.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", f.Level, tt.wantLevel)
			}

			if f.Format != tt.wantFormat {
				t.Errorf("Format = %q, want %q", f.Format, tt.wantFormat)
			}

			if f.Pretty != tt.wantPretty {
				t.Errorf("Pretty = %v, want %v", f.Pretty, tt.wantPretty)
			}

			if f.Caller != tt.wantCaller {
				t.Errorf("Caller = %v, want %v", f.Caller, tt.wantCaller)
			}
		})
	}
}
