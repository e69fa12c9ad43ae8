// Package sequence formats prefixed, zero-padded sequence numbers.
//
// Despite the name nothing here allocates numbers: every call is a pure
// function of its inputs and no counter survives between calls.
package sequence

import (
	"math"
	"strconv"
	"strings"

	"github.com/Veraticus/toolbelt/pkg/types"
)

// Generate formats start as a decimal number left-padded with zeros to
// at least width digits and prepends the trimmed prefix. A negative start
// is clamped to 0 and a width below 1 is clamped to 1. Numbers longer
// than width are never truncated.
func Generate(prefix string, start, width int) types.SequenceResult {
	start = max(start, 0)
	width = max(width, 1)
	prefix = strings.TrimSpace(prefix)

	return types.SequenceResult{
		Prefix: prefix,
		Start:  start,
		Width:  width,
		Number: prefix + pad(start, width),
	}
}

// Range returns count consecutive results beginning at start.
// A count below 1 yields no results. The batch stops at math.MaxInt
// rather than wrapping around.
func Range(prefix string, start, width, count int) []types.SequenceResult {
	if count < 1 {
		return nil
	}

	start = max(start, 0)
	if room := math.MaxInt - start; count-1 > room {
		count = room + 1
	}
	results := make([]types.SequenceResult, 0, count)
	for i := 0; i < count; i++ {
		results = append(results, Generate(prefix, start+i, width))
	}
	return results
}

func pad(n, width int) string {
	digits := strconv.Itoa(n)
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}
