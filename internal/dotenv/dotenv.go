// Package dotenv reads `.env`-style KEY=VALUE files into an explicit Env
// value instead of mutating the process environment. Lookups consult the
// real process environment first, so variables that are already set always
// win over file contents.
package dotenv

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// MissingFileError reports that the configured env file does not exist.
type MissingFileError struct {
	Path string
}

// Error implements the error interface for MissingFileError.
func (e *MissingFileError) Error() string {
	return fmt.Sprintf("missing .env file at: %s", e.Path)
}

// Env holds the key/value pairs parsed from a single env file. The zero
// value is usable and behaves like an empty file.
type Env struct {
	vals map[string]string
}

// Load reads and parses the env file at path. A nonexistent file yields a
// *MissingFileError so callers can distinguish it from read failures.
func Load(path string) (*Env, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, fmt.Errorf("failed to open env file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads KEY=VALUE pairs from r, one per line:
//   - leading/trailing whitespace is ignored
//   - blank lines and lines starting with '#' are skipped
//   - lines without '=' are skipped silently
//   - the line is split on the first '=' only; key and value are trimmed
//   - a value wrapped in a matching pair of single or double quotes loses
//     exactly one quote layer
//
// The first occurrence of a key wins; later assignments to the same key are
// ignored. There is no escaping, interpolation, or multi-line support.
func Parse(r io.Reader) (*Env, error) {
	vals := make(map[string]string)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = unquote(value)

		if key == "" {
			continue
		}
		if _, exists := vals[key]; !exists {
			vals[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	return &Env{vals: vals}, nil
}

// unquote strips one layer of surrounding quotes when both ends carry the
// same quote character. Anything else is returned untouched.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}

// Lookup resolves key with process-environment precedence: a variable that
// is set in the environment, even to the empty string, shadows the file
// value. Returns "" when the key is found nowhere.
func (e *Env) Lookup(key string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	val, _ := e.Value(key)
	return val
}

// Value returns the file-sourced value for key and whether the file defined
// it at all, ignoring the process environment.
func (e *Env) Value(key string) (string, bool) {
	if e == nil || e.vals == nil {
		return "", false
	}
	val, ok := e.vals[key]
	return val, ok
}

// Len reports how many distinct keys the file defined.
func (e *Env) Len() int {
	if e == nil {
		return 0
	}
	return len(e.vals)
}
