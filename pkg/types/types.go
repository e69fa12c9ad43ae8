// Package types contains the result records returned by the tools.
package types

// ValidationResult is the outcome of validating text against a pattern.
// Error is set only when Valid is false because the pattern was missing
// or could not be compiled.
type ValidationResult struct {
	Valid   bool   `json:"valid" yaml:"valid"`
	Pattern string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// SequenceResult is a formatted sequence number together with the
// normalized inputs it was built from.
type SequenceResult struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	Start  int    `json:"start" yaml:"start"`
	Width  int    `json:"width" yaml:"width"`
	Number string `json:"number" yaml:"number"`
}
