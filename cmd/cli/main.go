package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/modelcheck/internal/app"
	"github.com/vk/modelcheck/internal/cli"
	"github.com/vk/modelcheck/internal/dotenv"
	"github.com/vk/modelcheck/internal/openai"
)

// main is the entrypoint for the modelcheck application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var missingFile *dotenv.MissingFileError
		if errors.As(err, &missingFile) {
			fmt.Fprintln(os.Stderr, "Tip: run this from the folder that contains your .env")
		}

		os.Exit(exitCode(err))
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	modelcheckApp := app.NewApp(outW, errW, appConfig)

	return modelcheckApp.Run(context.Background())
}

// exitCode maps the error taxonomy to process exit statuses: 2 for
// configuration problems (usage errors, missing env file, missing
// credential), 1 for everything that failed past configuration.
func exitCode(err error) int {
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var missingFile *dotenv.MissingFileError
	if errors.As(err, &missingFile) {
		return 2
	}
	if errors.Is(err, openai.ErrMissingCredential) {
		return 2
	}

	return 1
}
