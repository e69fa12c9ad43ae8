// Package interfaces defines the core interfaces used throughout the application.
package interfaces

// Tool is a named operation callable with keyword-style arguments.
// Execute returns a serializable result record. It returns an error only
// when the arguments themselves are malformed; domain failures such as a
// bad pattern are reported inside the record.
type Tool interface {
	Name() string
	Description() string
	Params() []string
	Execute(args map[string]any) (any, error)
}

// ResultPrinter writes result records somewhere.
type ResultPrinter interface {
	Print(result any) error
}
