package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/toolbelt/pkg/config"
	"github.com/Veraticus/toolbelt/pkg/interfaces"
	"github.com/Veraticus/toolbelt/pkg/logging"
	"github.com/Veraticus/toolbelt/pkg/output"
	"github.com/Veraticus/toolbelt/pkg/tools"
	"github.com/Veraticus/toolbelt/pkg/validator"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config   *config.Config
	Logger   zerolog.Logger
	Presets  *validator.Presets
	Registry *tools.Registry
	Printer  interfaces.ResultPrinter
	Stdin    io.Reader
}

// NewDependencies creates all dependencies with the given configuration.
// Results go to stdout, logs to stderr.
func NewDependencies(cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logging.New(stderr, cfg.LogLevel, cfg.Debug),
		Stdin:  stdin,
	}

	printer, err := output.NewPrinter(stdout, cfg.Format)
	if err != nil {
		return nil, err
	}
	deps.Printer = printer

	// Create presets and the two tools
	deps.Presets = validator.NewPresets(cfg.Patterns)
	deps.Registry = tools.NewRegistry(deps.Logger)
	for _, tool := range []interfaces.Tool{
		tools.NewPatternTool(deps.Presets),
		tools.NewSequenceTool(cfg.Sequence),
	} {
		if err := deps.Registry.Register(tool); err != nil {
			return nil, fmt.Errorf("failed to register tool: %w", err)
		}
	}

	return deps, nil
}

// usageError marks errors caused by bad command-line usage
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usagef(format string, a ...any) error {
	return &usageError{msg: fmt.Sprintf(format, a...)}
}

// Application represents the main application
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run dispatches a subcommand and prints its result
func (a *Application) Run(argv []string) error {
	if len(argv) == 0 {
		return usagef("no command given")
	}

	command, rest := argv[0], argv[1:]
	a.deps.Logger.Debug().Str("command", command).Strs("args", rest).Msg("dispatch")

	switch command {
	case "validate":
		return a.runValidate(rest)
	case "sequence":
		return a.runSequence(rest)
	case "call":
		return a.runCall(rest)
	case "list":
		return a.runList(rest)
	default:
		return usagef("unknown command %q", command)
	}
}

// ExitCode maps an error returned by Run to a process exit code
func ExitCode(err error) int {
	var ue *usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ue):
		return 2
	default:
		return 1
	}
}

func (a *Application) runValidate(argv []string) error {
	fs := newFlagSet("validate")
	text := fs.String("text", "", "Text to check")
	pattern := fs.String("pattern", "", "Regular expression to match")
	preset := fs.String("preset", "", "Name of a configured pattern")
	if err := parseFlags(fs, argv); err != nil {
		return err
	}

	callArgs := map[string]any{}
	setIfChanged(fs, callArgs, "text", *text)
	setIfChanged(fs, callArgs, "pattern", *pattern)
	setIfChanged(fs, callArgs, "preset", *preset)

	return a.call(tools.PatternToolName, callArgs)
}

func (a *Application) runSequence(argv []string) error {
	fs := newFlagSet("sequence")
	prefix := fs.String("prefix", a.deps.Config.Sequence.Prefix, "Prefix prepended to the number")
	start := fs.Int("start", a.deps.Config.Sequence.Start, "Number to format")
	width := fs.Int("width", a.deps.Config.Sequence.Width, "Minimum number of digits")
	count := fs.Int("count", 1, "Emit this many consecutive numbers")
	if err := parseFlags(fs, argv); err != nil {
		return err
	}

	callArgs := map[string]any{}
	setIfChanged(fs, callArgs, "prefix", *prefix)
	setIfChanged(fs, callArgs, "start", *start)
	setIfChanged(fs, callArgs, "width", *width)
	setIfChanged(fs, callArgs, "count", *count)

	return a.call(tools.SequenceToolName, callArgs)
}

// runCall invokes any tool with a JSON object of arguments, read from
// the second argument or from stdin when that argument is "-".
func (a *Application) runCall(argv []string) error {
	if len(argv) < 1 || len(argv) > 2 {
		return usagef("usage: call TOOL [JSON-ARGS|-]")
	}

	name := argv[0]
	var raw []byte
	if len(argv) == 2 {
		raw = []byte(argv[1])
		if argv[1] == "-" {
			data, err := io.ReadAll(a.deps.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read arguments: %w", err)
			}
			raw = data
		}
	}

	callArgs, err := decodeArgs(raw)
	if err != nil {
		return err
	}
	return a.call(name, callArgs)
}

func (a *Application) runList(argv []string) error {
	if len(argv) != 0 {
		return usagef("list takes no arguments")
	}

	type toolInfo struct {
		Name        string   `json:"name" yaml:"name"`
		Description string   `json:"description" yaml:"description"`
		Params      []string `json:"params" yaml:"params"`
	}
	listing := struct {
		Tools   []toolInfo `json:"tools" yaml:"tools"`
		Presets []string   `json:"presets" yaml:"presets"`
	}{
		Presets: a.deps.Presets.Names(),
	}
	for _, name := range a.deps.Registry.Names() {
		tool, _ := a.deps.Registry.Get(name)
		listing.Tools = append(listing.Tools, toolInfo{
			Name:        tool.Name(),
			Description: tool.Description(),
			Params:      tool.Params(),
		})
	}

	return a.deps.Printer.Print(listing)
}

func (a *Application) call(name string, callArgs map[string]any) error {
	result, err := a.deps.Registry.Call(name, callArgs)
	if err != nil {
		return err
	}
	return a.deps.Printer.Print(result)
}

// decodeArgs parses a JSON object, keeping numbers as json.Number so
// integer arguments are not routed through float64.
func decodeArgs(raw []byte) (map[string]any, error) {
	callArgs := map[string]any{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return callArgs, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&callArgs); err != nil {
		return nil, usagef("arguments must be a JSON object: %v", err)
	}
	if callArgs == nil {
		// JSON null
		callArgs = map[string]any{}
	}
	return callArgs, nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *flag.FlagSet, argv []string) error {
	if err := fs.Parse(argv); err != nil {
		return usagef("%s: %v", fs.Name(), err)
	}
	if fs.NArg() > 0 {
		return usagef("%s: unexpected arguments: %s", fs.Name(), strings.Join(fs.Args(), " "))
	}
	return nil
}

// setIfChanged copies a flag into the call arguments only when the user
// set it, so unset flags behave like absent arguments.
func setIfChanged(fs *flag.FlagSet, callArgs map[string]any, name string, value any) {
	if fs.Changed(name) {
		callArgs[name] = value
	}
}
