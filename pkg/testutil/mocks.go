// Package testutil provides test doubles shared across packages.
package testutil

import (
	"sync"
)

// MockTool is a thread-safe mock implementation of interfaces.Tool for testing
type MockTool struct {
	mu        sync.Mutex
	name      string
	params    []string
	result    any
	err       error
	callCount int
	lastArgs  map[string]any
}

// NewMockTool creates a new mock tool returning result from every call
func NewMockTool(name string, result any, params ...string) *MockTool {
	return &MockTool{
		name:   name,
		params: params,
		result: result,
	}
}

// Name implements the Tool interface
func (m *MockTool) Name() string { return m.name }

// Description implements the Tool interface
func (m *MockTool) Description() string { return "mock tool " + m.name }

// Params implements the Tool interface
func (m *MockTool) Params() []string { return m.params }

// Execute implements the Tool interface
func (m *MockTool) Execute(args map[string]any) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callCount++
	m.lastArgs = args
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// SetError sets the error to return on Execute calls
func (m *MockTool) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// GetCallCount returns how many times Execute was called
func (m *MockTool) GetCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// GetLastArgs returns the arguments of the most recent call
func (m *MockTool) GetLastArgs() map[string]any {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastArgs
}

// MockPrinter records printed results
type MockPrinter struct {
	mu      sync.Mutex
	results []any
	err     error
}

// NewMockPrinter creates a new mock printer
func NewMockPrinter() *MockPrinter {
	return &MockPrinter{}
}

// Print implements the ResultPrinter interface
func (m *MockPrinter) Print(result any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.results = append(m.results, result)
	return nil
}

// SetError sets the error to return on Print calls
func (m *MockPrinter) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// GetResults returns a copy of printed results
func (m *MockPrinter) GetResults() []any {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]any, len(m.results))
	copy(out, m.results)
	return out
}
