package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/durconv/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("durconv", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
durconv - Convert duration literals such as "1day 2hr" into nanoseconds.

Usage:
  durconv [options] [CELL_PATH...]

Arguments:
  CELL_PATH
    Location inside each input element to convert, e.g. "timeout",
    "rows.0.delay" or "[2].retry". Without cell paths every element is
    converted as a whole.

Limits:
  The largest duration is 9223372036854775807ns (i64 max); the largest unit
  is wk.

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", app.StdinPath, "Input file, or '-' for stdin.")
	iFlag := flagSet.String("i", "", "Input file (shorthand).")
	inputFormatFlag := flagSet.String("input-format", "", "Input format: 'hcl', 'json', 'yaml' or 'lines'. Inferred from the file extension when empty.")
	outputFormatFlag := flagSet.String("output-format", "text", "Output format: 'text', 'json' or 'hcl'.")
	oFlag := flagSet.String("o", "", "Output format (shorthand).")
	configFlag := flagSet.String("config", "", "Optional HCL settings file. Flags given on the command line take precedence.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	failOnErrorFlag := flagSet.Bool("fail-on-error", false, "Exit with status 1 when any element fails to convert.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
	explicit := func(name string) bool {
		switch name {
		case "input":
			return set["input"] || set["i"]
		case "output-format":
			return set["output-format"] || set["o"]
		case "cell-paths":
			return flagSet.NArg() > 0
		}
		return set[name]
	}

	cfg := app.Config{
		InputPath:    *inputFlag,
		InputFormat:  strings.ToLower(*inputFormatFlag),
		OutputFormat: strings.ToLower(*outputFormatFlag),
		CellPaths:    flagSet.Args(),
		LogFormat:    strings.ToLower(*logFormatFlag),
		LogLevel:     strings.ToLower(*logLevelFlag),
		FailOnError:  *failOnErrorFlag,
	}
	if *iFlag != "" {
		cfg.InputPath = *iFlag
	}
	if *oFlag != "" {
		cfg.OutputFormat = strings.ToLower(*oFlag)
	}

	if *configFlag != "" {
		settings, err := app.LoadSettings(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		settings.Apply(&cfg, explicit)
		slog.Debug("Settings file applied.", "path", *configFlag)
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
