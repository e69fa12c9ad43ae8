package tools

import (
	"math"

	"github.com/Veraticus/toolbelt/pkg/args"
	"github.com/Veraticus/toolbelt/pkg/config"
	"github.com/Veraticus/toolbelt/pkg/sequence"
)

// SequenceToolName is the registered name of the sequence generator.
const SequenceToolName = "generate_sequence"

const (
	// maxCount bounds a single batch request.
	maxCount = 10000

	// maxWidth bounds the padding of a single number.
	maxWidth = 1024
)

// SequenceTool exposes sequence.Generate as a tool
type SequenceTool struct {
	defaults config.SequenceConfig
}

// NewSequenceTool creates a sequence tool. defaults apply to arguments
// that are absent from a call.
func NewSequenceTool(defaults config.SequenceConfig) *SequenceTool {
	return &SequenceTool{defaults: defaults}
}

// Name returns the tool name
func (t *SequenceTool) Name() string { return SequenceToolName }

// Description returns a one-line summary
func (t *SequenceTool) Description() string {
	return "Format a prefixed, zero-padded sequence number"
}

// Params returns the accepted argument names
func (t *SequenceTool) Params() []string { return []string{"prefix", "start", "width", "count"} }

// Execute formats a sequence number. Absent arguments take the configured
// defaults; null or zero arguments fall back to "", 0 and 1 before
// clamping. With a count argument the result is a slice of consecutive
// numbers instead of a single record.
func (t *SequenceTool) Execute(a map[string]any) (any, error) {
	if err := checkParams(t, a); err != nil {
		return nil, err
	}

	prefix, err := args.String(a, "prefix", t.defaults.Prefix)
	if err != nil {
		return nil, err
	}
	start, err := args.Int(a, "start", t.defaults.Start, 0)
	if err != nil {
		return nil, err
	}
	width, err := args.Int(a, "width", t.defaults.Width, 1)
	if err != nil {
		return nil, err
	}
	if width > maxWidth {
		return nil, &args.Error{Name: "width", Value: width, Err: errWidthRange}
	}

	if _, ok := a["count"]; !ok {
		return sequence.Generate(prefix, start, width), nil
	}

	count, err := args.Int(a, "count", 1, 1)
	if err != nil {
		return nil, err
	}
	if count < 1 || count > maxCount {
		return nil, &args.Error{Name: "count", Value: count, Err: errCountRange}
	}
	if start > math.MaxInt-(count-1) {
		return nil, &args.Error{Name: "start", Value: start, Err: errStartOverflow}
	}
	return sequence.Range(prefix, start, width, count), nil
}
