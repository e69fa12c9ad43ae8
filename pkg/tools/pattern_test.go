package tools

import (
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/Veraticus/toolbelt/pkg/args"
	"github.com/Veraticus/toolbelt/pkg/config"
	"github.com/Veraticus/toolbelt/pkg/types"
	"github.com/Veraticus/toolbelt/pkg/validator"
	"github.com/google/go-cmp/cmp"
)

func testPresets(t *testing.T) *validator.Presets {
	t.Helper()
	p := config.Pattern{Name: "digits", Regex: `^\d+$`, Enabled: true}
	p.SetCompiledRegex(regexp.MustCompile(p.Regex))
	return validator.NewPresets([]config.Pattern{p})
}

func TestPatternTool_Execute(t *testing.T) {
	tool := NewPatternTool(testPresets(t))

	tests := []struct {
		name string
		args map[string]any
		want types.ValidationResult
	}{
		{
			name: "match",
			args: map[string]any{"text": "abc123", "pattern": `\d+`},
			want: types.ValidationResult{Valid: true, Pattern: `\d+`},
		},
		{
			name: "no match",
			args: map[string]any{"text": "abc", "pattern": `\d+`},
			want: types.ValidationResult{Valid: false, Pattern: `\d+`},
		},
		{
			name: "absent text is empty",
			args: map[string]any{"pattern": `^$`},
			want: types.ValidationResult{Valid: true, Pattern: `^$`},
		},
		{
			name: "null text is empty",
			args: map[string]any{"text": nil, "pattern": `^$`},
			want: types.ValidationResult{Valid: true, Pattern: `^$`},
		},
		{
			name: "absent pattern",
			args: map[string]any{"text": "abc"},
			want: types.ValidationResult{Error: "pattern is required"},
		},
		{
			name: "null pattern",
			args: map[string]any{"text": "abc", "pattern": nil},
			want: types.ValidationResult{Error: "pattern is required"},
		},
		{
			name: "no arguments",
			args: map[string]any{},
			want: types.ValidationResult{Error: "pattern is required"},
		},
		{
			name: "invalid pattern",
			args: map[string]any{"text": "abc", "pattern": "(abc"},
			want: types.ValidationResult{
				Pattern: "(abc",
				Error:   "error parsing regexp: missing closing ): `(abc`",
			},
		},
		{
			name: "preset",
			args: map[string]any{"text": "0042", "preset": "digits"},
			want: types.ValidationResult{Valid: true, Pattern: `^\d+$`},
		},
		{
			name: "numeric text is reported in the record",
			args: map[string]any{"text": json.Number("123"), "pattern": `\d`},
			want: types.ValidationResult{
				Pattern: `\d`,
				Error:   `argument "text": expected string, got json.Number`,
			},
		},
		{
			name: "numeric pattern is reported in the record",
			args: map[string]any{"text": "5", "pattern": 5},
			want: types.ValidationResult{Error: `argument "pattern": expected string, got int`},
		},
		{
			name: "pattern wins over preset",
			args: map[string]any{"text": "0042", "pattern": "x", "preset": "digits"},
			want: types.ValidationResult{Valid: false, Pattern: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tool.Execute(tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Execute mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPatternTool_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		tool *PatternTool
		args map[string]any
	}{
		{"unknown preset", NewPatternTool(testPresets(t)), map[string]any{"text": "1", "preset": "nope"}},
		{"nil presets", NewPatternTool(nil), map[string]any{"text": "1", "preset": "digits"}},
		{"unknown argument", NewPatternTool(nil), map[string]any{"regex": "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.tool.Execute(tt.args)
			if !errors.Is(err, args.ErrInvalidArgument) {
				t.Errorf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}
