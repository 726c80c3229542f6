package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/modelcheck/internal/app"
	"github.com/vk/modelcheck/internal/openai"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("modelcheck", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Modelcheck - list the models an OpenAI-compatible API key can access.

Usage:
  modelcheck [options]

The bearer credential is read from OPENAI_API_KEY, either from the process
environment or from the env file. Model identifiers are printed to stdout,
one per line, sorted ascending; diagnostics go to stderr.

Options:
`)
		flagSet.PrintDefaults()
	}

	envFileFlag := flagSet.String("env-file", ".env", "Path to the env file supplying credentials.")
	eFlag := flagSet.String("e", "", "Path to the env file (shorthand).")
	baseURLFlag := flagSet.String("base-url", openai.DefaultBaseURL, "API root of the models endpoint.")
	timeoutFlag := flagSet.Duration("timeout", openai.DefaultTimeout, "Timeout for the outbound request.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	envFile := *envFileFlag
	if *eFlag != "" {
		envFile = *eFlag
	}
	slog.Debug("Env file path determined.", "path", envFile)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *timeoutFlag <= 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid timeout: must be a positive duration"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		EnvFile:   envFile,
		BaseURL:   strings.TrimRight(*baseURLFlag, "/"),
		Timeout:   *timeoutFlag,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
