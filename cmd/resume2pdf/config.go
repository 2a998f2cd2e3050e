package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/resumekit/go-resume2pdf/internal/fileutil"
	"github.com/resumekit/go-resume2pdf/internal/hints"
	"github.com/resumekit/go-resume2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Config holds file-based defaults. Flags always take precedence.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Style  StyleConfig  `yaml:"style"`
	Render RenderConfig `yaml:"render"`
}

// OutputConfig defines output destination defaults.
type OutputConfig struct {
	Dir string `yaml:"dir"` // default output directory
}

// StyleConfig defines styling defaults.
type StyleConfig struct {
	HeaderColor string `yaml:"headerColor"` // hex "#RRGGBB" or "white"
	FontScheme  string `yaml:"fontScheme"`  // modern, classic, typewriter
}

// RenderConfig defines rendering defaults.
type RenderConfig struct {
	OnePage bool   `yaml:"onePage"`
	Engine  string `yaml:"engine"`  // rod, chromedp
	Timeout string `yaml:"timeout"` // duration string, e.g. "30s"
}

// DefaultConfig returns the built-in defaults used when no config file and
// no flag sets a value.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Dir: "output"},
	}
}

// LoadConfig loads configuration from a file path or a config name.
// A value containing a path separator is treated as a path; otherwise it is
// searched in the working directory and ~/.config/resume2pdf/.
// A missing file is an error, never a silent fallback.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// resolveConfigPath searches the standard locations for a named config.
func resolveConfigPath(name string) (string, error) {
	paths := configSearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q%s", ErrConfigNotFound, name, hints.ForConfigNotFound(paths))
}

// configSearchPaths lists candidate locations, nearest first.
func configSearchPaths(name string) []string {
	paths := []string{name + ".yaml", name + ".yml"}
	if home, err := os.UserHomeDir(); err == nil {
		base := filepath.Join(home, ".config", "resume2pdf")
		paths = append(paths, filepath.Join(base, name+".yaml"), filepath.Join(base, name+".yml"))
	}
	return paths
}
