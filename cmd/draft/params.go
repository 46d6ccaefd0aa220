package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// overrides collects repeated -set name=value flags.
type overrides map[string]float64

func (o overrides) String() string {
	var parts []string
	for k, v := range o {
		parts = append(parts, k+"="+strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strings.Join(parts, ",")
}

func (o overrides) Set(s string) error {
	name, value, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("want name=value, got %q", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("parameter %s: %w", name, err)
	}
	o[name] = v
	return nil
}

// loadParams reads a flat table of parameter overrides. Files ending in
// .toml are parsed as TOML, .yaml and .yml as YAML.
func loadParams(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("unsupported parameter file type %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	params := make(map[string]float64, len(raw))
	for k, v := range raw {
		f, err := toFloat(v)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", k, err)
		}
		params[k] = f
	}
	return params, nil
}

// toFloat converts the numbers produced by the TOML and YAML decoders.
func toFloat(v any) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("%d is out of range", v)
		}
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%v (%T) is not a number", v, v)
	}
}
