package app

import (
	"context"
	"fmt"
	"slices"

	"github.com/vk/modelcheck/internal/ctxlog"
	"github.com/vk/modelcheck/internal/dotenv"
	"github.com/vk/modelcheck/internal/openai"
)

// Run executes the main application logic: load the env file, resolve the
// credential, fetch the model listing, and print the sorted identifiers.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	env, err := dotenv.Load(a.config.EnvFile)
	if err != nil {
		return err
	}
	a.logger.Debug("Env file loaded.", "path", a.config.EnvFile, "keys", env.Len())

	// The credential is resolved before any network activity so a missing
	// key fails fast with a configuration error, not a request error.
	apiKey := env.Lookup(openai.EnvAPIKey)
	if apiKey == "" {
		return openai.ErrMissingCredential
	}

	client := openai.NewClient(apiKey,
		openai.WithBaseURL(a.config.BaseURL),
		openai.WithTimeout(a.config.Timeout),
	)
	defer client.Close()

	ids, err := client.ListModels(ctx)
	if err != nil {
		return err
	}

	slices.Sort(ids)
	for _, id := range ids {
		fmt.Fprintln(a.outW, id)
	}

	a.logger.Debug("App.Run method finished.", "models", len(ids))
	return nil
}
