// Package tools wires the validator and sequence generator into a
// name-addressable tool registry.
package tools

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Veraticus/toolbelt/pkg/args"
	"github.com/Veraticus/toolbelt/pkg/interfaces"
	"github.com/rs/zerolog"
)

var (
	// ErrUnknownTool is returned when calling a tool that is not registered.
	ErrUnknownTool = errors.New("unknown tool")

	errCountRange    = fmt.Errorf("must be between 1 and %d", maxCount)
	errWidthRange    = fmt.Errorf("must be at most %d", maxWidth)
	errStartOverflow = errors.New("start plus count exceeds the largest integer")
)

// Registry holds tools by name
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]interfaces.Tool
	logger zerolog.Logger
}

// NewRegistry creates an empty registry that logs calls to logger
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		tools:  make(map[string]interfaces.Tool),
		logger: logger,
	}
}

// Register adds a tool. Names must be unique.
func (r *Registry) Register(tool interfaces.Tool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := tool.Name()
	if name == "" {
		return fmt.Errorf("tool name is required")
	}
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool %q already registered", name)
	}
	r.tools[name] = tool
	return nil
}

// Get returns the named tool
func (r *Registry) Get(name string) (interfaces.Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// Names returns registered tool names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call executes the named tool with args
func (r *Registry) Call(name string, a map[string]any) (any, error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}

	began := time.Now()
	result, err := tool.Execute(a)
	event := r.logger.Debug()
	if err != nil {
		event = r.logger.Warn().Err(err)
	}
	event.Str("tool", name).
		Int("args", len(a)).
		Dur("elapsed", time.Since(began)).
		Msg("tool call")

	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return result, nil
}

// checkParams rejects argument names the tool does not accept
func checkParams(tool interfaces.Tool, a map[string]any) error {
	allowed := tool.Params()
	for name, v := range a {
		known := false
		for _, p := range allowed {
			if p == name {
				known = true
				break
			}
		}
		if !known {
			return &args.Error{Name: name, Value: v, Err: errors.New("unknown argument")}
		}
	}
	return nil
}
