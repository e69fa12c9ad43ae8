// Package validator checks text against regular-expression patterns.
//
// Patterns use Go's RE2 syntax. A pattern matches if it matches anywhere
// in the text; anchors in the pattern itself restrict that as usual.
package validator

import (
	"errors"
	"regexp"

	"github.com/Veraticus/toolbelt/pkg/types"
)

var (
	// ErrPatternRequired is reported when the pattern is empty.
	ErrPatternRequired = errors.New("pattern is required")

	// ErrInvalidPattern is the sentinel wrapped by SyntaxError.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// SyntaxError is returned when a pattern fails to compile.
type SyntaxError struct {
	Pattern string
	Err     error
}

// Error returns the compiler diagnostic unchanged.
func (e *SyntaxError) Error() string {
	return e.Err.Error()
}

// Unwrap lets callers match both ErrInvalidPattern and the underlying
// *syntax.Error from the regexp package.
func (e *SyntaxError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Err}
}

// Evaluation is the outcome of running a pattern against text. Exactly
// one of Matched or Err is meaningful: when Err is non-nil the pattern
// was never run and Matched is false.
type Evaluation struct {
	Matched bool
	Err     error
}

// Evaluate compiles pattern and reports whether it matches text.
func Evaluate(pattern, text string) Evaluation {
	if pattern == "" {
		return Evaluation{Err: ErrPatternRequired}
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return Evaluation{Err: &SyntaxError{Pattern: pattern, Err: err}}
	}

	return Evaluation{Matched: re.MatchString(text)}
}

// Validate checks text against pattern and returns a result record.
// It never fails: a missing or malformed pattern is reported through the
// record's Error field.
func Validate(text, pattern string) types.ValidationResult {
	eval := Evaluate(pattern, text)

	switch {
	case errors.Is(eval.Err, ErrPatternRequired):
		// Nothing meaningful to echo back
		return types.ValidationResult{Error: eval.Err.Error()}
	case eval.Err != nil:
		return types.ValidationResult{Pattern: pattern, Error: eval.Err.Error()}
	}

	return types.ValidationResult{Valid: eval.Matched, Pattern: pattern}
}

// ValidateRegexp checks text against an already compiled expression.
// A nil expression is reported as a missing pattern.
func ValidateRegexp(text string, re *regexp.Regexp) types.ValidationResult {
	if re == nil {
		return types.ValidationResult{Error: ErrPatternRequired.Error()}
	}
	return types.ValidationResult{Valid: re.MatchString(text), Pattern: re.String()}
}
