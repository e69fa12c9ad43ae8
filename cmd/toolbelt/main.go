package main

import (
	"fmt"
	"os"

	"github.com/Veraticus/toolbelt/pkg/config"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		configPath string
		format     string
		debug      bool
		help       bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&format, "format", "", "Output format: json or yaml")
	flag.BoolVar(&debug, "debug", false, "Log tool calls to stderr")
	flag.BoolVar(&help, "help", false, "Show help message")

	// Stop at the command so its own flags are left alone
	flag.CommandLine.SetInterspersed(false)
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(2)
	}

	if help || flag.NArg() == 0 {
		printUsage()
		if help {
			os.Exit(0)
		}
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Override config with command line flags
	if format != "" {
		cfg.Format = format
	}
	if debug {
		cfg.Debug = true
	}

	deps, err := NewDependencies(cfg, os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating dependencies: %v\n", err)
		os.Exit(1)
	}

	app := NewApplication(deps)
	err = app.Run(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(ExitCode(err))
}

func printUsage() {
	fmt.Println("toolbelt - pattern validation and sequence number tools")
	fmt.Println()
	fmt.Println("Usage: toolbelt [OPTIONS] COMMAND [ARGS...]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  validate --text T (--pattern P | --preset NAME)")
	fmt.Println("  sequence [--prefix S] [--start N] [--width N] [--count N]")
	fmt.Println("  call TOOL [JSON-ARGS|-]")
	fmt.Println("  list")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  TOOLBELT_CONFIG            Path to config file")
	fmt.Println("  TOOLBELT_FORMAT            Output format (default: json)")
	fmt.Println("  TOOLBELT_LOG_LEVEL         Log level (default: warn)")
	fmt.Println("  TOOLBELT_DEBUG             Log tool calls (true/false)")
	fmt.Println("  TOOLBELT_SEQUENCE_PREFIX   Default sequence prefix (default: NO)")
	fmt.Println("  TOOLBELT_SEQUENCE_START    Default sequence start (default: 1)")
	fmt.Println("  TOOLBELT_SEQUENCE_WIDTH    Default sequence width (default: 4)")
	fmt.Println()
	fmt.Println("Configuration file: ~/.config/toolbelt/config.yaml")
}
