package tools

import (
	"regexp"

	"github.com/Veraticus/toolbelt/pkg/args"
	"github.com/Veraticus/toolbelt/pkg/types"
	"github.com/Veraticus/toolbelt/pkg/validator"
)

// PatternToolName is the registered name of the pattern validator.
const PatternToolName = "validate_pattern"

// PatternTool exposes validator.Validate as a tool
type PatternTool struct {
	presets *validator.Presets
}

// NewPatternTool creates a pattern tool. presets may be nil, in which
// case the preset argument always fails.
func NewPatternTool(presets *validator.Presets) *PatternTool {
	return &PatternTool{presets: presets}
}

// Name returns the tool name
func (t *PatternTool) Name() string { return PatternToolName }

// Description returns a one-line summary
func (t *PatternTool) Description() string {
	return "Check whether text matches a regular expression"
}

// Params returns the accepted argument names
func (t *PatternTool) Params() []string { return []string{"text", "pattern", "preset"} }

// Execute validates args["text"] against args["pattern"], or against the
// named preset when no pattern is given. A text or pattern of the wrong
// type is reported inside the result record like any other bad pattern.
func (t *PatternTool) Execute(a map[string]any) (any, error) {
	if err := checkParams(t, a); err != nil {
		return nil, err
	}

	pattern, err := args.String(a, "pattern", "")
	if err != nil {
		return types.ValidationResult{Error: err.Error()}, nil
	}
	text, err := args.String(a, "text", "")
	if err != nil {
		return types.ValidationResult{Pattern: pattern, Error: err.Error()}, nil
	}
	preset, err := args.String(a, "preset", "")
	if err != nil {
		return nil, err
	}

	if pattern == "" && preset != "" {
		re, err := t.lookup(preset)
		if err != nil {
			return nil, &args.Error{Name: "preset", Value: preset, Err: err}
		}
		return validator.ValidateRegexp(text, re), nil
	}

	return validator.Validate(text, pattern), nil
}

func (t *PatternTool) lookup(name string) (*regexp.Regexp, error) {
	if t.presets == nil {
		return nil, validator.ErrUnknownPreset
	}
	return t.presets.Lookup(name)
}
