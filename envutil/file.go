package envutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// LoadFile loads configuration values from a file and returns them as a map.
// The format is picked from the file extension:
//   - .env files are parsed as KEY=VALUE lines (comments, quotes and export allowed)
//   - .json files must have an "env" object of string values
//   - .yml/.yaml files must have an "env" mapping of string values
//
// Example YAML file:
//
//	env:
//	  BENCH_SIZES: "10,100,1000"
//	  BENCH_SEED: "42"
//	  LOG_LEVEL: debug
func LoadFile(path string) (map[string]string, error) {
	name := strings.ToLower(filepath.Base(path))

	switch {
	case strings.HasSuffix(name, ".env"):
		return godotenv.Read(path)
	case strings.HasSuffix(name, ".json"):
		return loadJSONFile(path)
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"):
		return loadYAMLFile(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, filepath.Base(path))
	}
}

// WithFile loads path with LoadFile and layers its values over ctx as overrides.
func WithFile(ctx context.Context, path string) (context.Context, error) {
	env, err := LoadFile(path)
	if err != nil {
		return ctx, err
	}

	return WithOverrides(ctx, env), nil
}

type envFile struct {
	Env map[string]string `json:"env" yaml:"env"`
}

func loadJSONFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	out := &envFile{}
	if err := json.Unmarshal(bts, out); err != nil {
		return nil, err
	}

	return out.Env, nil
}

func loadYAMLFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	out := &envFile{}
	if err := yaml.Unmarshal(bts, out); err != nil {
		return nil, err
	}

	return out.Env, nil
}
