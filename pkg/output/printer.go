// Package output renders result records for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Veraticus/toolbelt/pkg/config"
	"gopkg.in/yaml.v3"
)

// Printer writes result records to a writer in JSON or YAML
type Printer struct {
	w      io.Writer
	format string
}

// NewPrinter creates a printer for the given format
func NewPrinter(w io.Writer, format string) (*Printer, error) {
	switch format {
	case config.FormatJSON, config.FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return &Printer{w: w, format: format}, nil
}

// Print writes one result record
func (p *Printer) Print(result any) error {
	if p.format == config.FormatYAML {
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
