package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vk/modelcheck/internal/openai"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}

	// --- Act ---
	config, shouldExit, err := Parse(nil, out)

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, ".env", config.EnvFile)
	require.Equal(t, openai.DefaultBaseURL, config.BaseURL)
	require.Equal(t, 30*time.Second, config.Timeout)
	require.Equal(t, "text", config.LogFormat)
	require.Equal(t, "warn", config.LogLevel)
}

func TestParse_AllFlags(t *testing.T) {
	t.Parallel()

	args := []string{
		"--env-file", "conf/.env",
		"--base-url", "http://localhost:8080/v1/",
		"--timeout", "5s",
		"--log-format", "json",
		"--log-level", "debug",
	}
	out := &bytes.Buffer{}

	config, shouldExit, err := Parse(args, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, "conf/.env", config.EnvFile)
	require.Equal(t, "http://localhost:8080/v1", config.BaseURL, "trailing slash should be trimmed")
	require.Equal(t, 5*time.Second, config.Timeout)
	require.Equal(t, "json", config.LogFormat)
	require.Equal(t, "debug", config.LogLevel)
}

func TestParse_ShorthandEnvFileWins(t *testing.T) {
	t.Parallel()

	args := []string{"--env-file", "ignored/.env", "-e", "other/.env"}
	out := &bytes.Buffer{}

	config, _, err := Parse(args, out)

	require.NoError(t, err)
	require.Equal(t, "other/.env", config.EnvFile)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	config, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, config)
	require.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--this-is-not-a-valid-flag"}},
		{"invalid log format", []string{"--log-format", "xml"}},
		{"invalid log level", []string{"--log-level", "verbose"}},
		{"zero timeout", []string{"--timeout", "0s"}},
		{"negative timeout", []string{"--timeout", "-1s"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}

			config, shouldExit, err := Parse(tc.args, out)

			require.Nil(t, config)
			require.False(t, shouldExit)

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code, "usage errors must map to exit code 2")
		})
	}
}
