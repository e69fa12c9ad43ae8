package validator

import (
	"errors"
	"regexp"
	"testing"

	"github.com/Veraticus/toolbelt/pkg/config"
	"github.com/google/go-cmp/cmp"
)

func compiled(t *testing.T, patterns []config.Pattern) []config.Pattern {
	t.Helper()
	for i := range patterns {
		if patterns[i].Enabled && patterns[i].Regex != "" {
			re, err := regexp.Compile(patterns[i].Regex)
			if err != nil {
				t.Fatalf("failed to compile pattern %s: %v", patterns[i].Name, err)
			}
			patterns[i].SetCompiledRegex(re)
		}
	}
	return patterns
}

func TestNewPresets(t *testing.T) {
	presets := NewPresets(compiled(t, []config.Pattern{
		{Name: "digits", Regex: `^\d+$`, Enabled: true},
		{Name: "disabled", Regex: `x`, Enabled: false},
		{Name: "no_regex", Enabled: true},
		{Name: "word", Regex: `\w+`, Enabled: true},
	}))

	want := []string{"digits", "word"}
	if diff := cmp.Diff(want, presets.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestPresets_Lookup(t *testing.T) {
	patterns := compiled(t, []config.Pattern{
		{Name: "digits", Regex: `^\d+$`, Enabled: true},
		{Name: "disabled", Regex: `x`, Enabled: false},
	})
	presets := NewPresets(patterns)

	re, err := presets.Lookup("digits")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if re != patterns[0].CompiledRegex() {
		t.Error("expected the regex compiled at config load to be reused")
	}
	if re.String() != `^\d+$` {
		t.Errorf("expected ^\\d+$, got %q", re.String())
	}

	for _, name := range []string{"disabled", "missing", ""} {
		if _, err := presets.Lookup(name); !errors.Is(err, ErrUnknownPreset) {
			t.Errorf("Lookup(%q): expected ErrUnknownPreset, got %v", name, err)
		}
	}
}

func TestPresets_DefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	presets := NewPresets(compiled(t, cfg.Patterns))

	tests := []struct {
		preset string
		text   string
		want   bool
	}{
		{"digits", "0042", true},
		{"digits", "42a", false},
		{"email", "dev@example.com", true},
		{"email", "not an email", false},
		{"uuid", "123e4567-e89b-12d3-a456-426614174000", true},
		{"uuid", "123e4567", false},
		{"semver", "v1.2.3", true},
		{"semver", "1.2.3-rc.1+build.5", true},
		{"semver", "1.2", false},
	}

	for _, tt := range tests {
		t.Run(tt.preset+"/"+tt.text, func(t *testing.T) {
			re, err := presets.Lookup(tt.preset)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ValidateRegexp(tt.text, re); got.Valid != tt.want {
				t.Errorf("expected valid=%v, got %+v", tt.want, got)
			}
		})
	}
}
