package validator

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/Veraticus/toolbelt/pkg/config"
)

// ErrUnknownPreset is returned when a preset name is not configured.
var ErrUnknownPreset = errors.New("unknown preset")

// Presets resolves configured pattern names to their regular expressions
type Presets struct {
	patterns map[string]config.Pattern
}

// NewPresets creates a preset table from configured patterns
func NewPresets(patterns []config.Pattern) *Presets {
	// Keep only enabled patterns that compiled
	byName := make(map[string]config.Pattern, len(patterns))
	for _, p := range patterns {
		if p.Enabled && p.CompiledRegex() != nil {
			byName[p.Name] = p
		}
	}

	return &Presets{
		patterns: byName,
	}
}

// Lookup returns the compiled regex for the named preset
func (ps *Presets) Lookup(name string) (*regexp.Regexp, error) {
	p, ok := ps.patterns[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p.CompiledRegex(), nil
}

// Names returns the active preset names in sorted order
func (ps *Presets) Names() []string {
	names := make([]string, 0, len(ps.patterns))
	for name := range ps.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
