// Package config loads srpt configuration from .srpt/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/surveytools/srpt/internal/report"
)

// ConfigFileName is the name of the srpt configuration file
const ConfigFileName = "config.yaml"

// ConfigDirName is the name of the srpt configuration directory
const ConfigDirName = ".srpt"

// Config holds all srpt configuration
type Config struct {
	Report ReportConfig `yaml:"report"`
	Output OutputConfig `yaml:"output"`
}

// ReportConfig holds configuration for report assembly
type ReportConfig struct {
	// IncludeBlockHeaders controls <h5> block headers in the results
	// report. Pointer so an explicit false survives merging with the
	// true default.
	IncludeBlockHeaders *bool `yaml:"include_block_headers"`

	// NThreshold is the minimum categorized-response count (exclusive)
	// for coded comments to be appendicized.
	NThreshold int `yaml:"n_threshold"`

	// Base is the appendix label alphabet size.
	Base int `yaml:"base"`
}

// OutputConfig holds configuration for command output
type OutputConfig struct {
	// DefaultFormat is the check summary format: text, yaml, or json.
	DefaultFormat string `yaml:"default_format"`
}

// ErrConfigNotFound is returned when no config file can be found
var ErrConfigNotFound = errors.New("config file not found")

// ErrInvalidConfig is returned when config validation fails
var ErrInvalidConfig = errors.New("invalid configuration")

// Load reads config from .srpt/config.yaml, falling back to defaults.
// It searches for the config directory starting from workDir and walking up
// the directory tree. If no config is found, returns defaults.
func Load(workDir string) (*Config, error) {
	configDir, err := FindConfigDir(workDir)
	if err != nil {
		// No config dir found, return defaults
		return DefaultConfig(), nil
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	return LoadFromPath(configPath)
}

// LoadFromPath reads config from a specific path.
// Merges loaded config with defaults and validates the result.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	loaded := &Config{}
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	merged := Merge(loaded, DefaultConfig())

	if err := Validate(merged); err != nil {
		return nil, err
	}

	return merged, nil
}

// FindConfigDir locates the .srpt directory by walking up from startDir.
// Returns the path to the .srpt directory if found.
func FindConfigDir(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	currentDir := absDir
	for {
		configDir := filepath.Join(currentDir, ConfigDirName)
		info, err := os.Stat(configDir)
		if err == nil && info.IsDir() {
			return configDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root, config not found
			return "", ErrConfigNotFound
		}
		currentDir = parentDir
	}
}

// Validate checks a merged config for invalid values.
func Validate(c *Config) error {
	if c.Report.NThreshold < 0 {
		return fmt.Errorf("%w: report.n_threshold must be >= 0, got %d", ErrInvalidConfig, c.Report.NThreshold)
	}
	if c.Report.Base < 1 || c.Report.Base > 26 {
		return fmt.Errorf("%w: report.base must be in 1..26, got %d", ErrInvalidConfig, c.Report.Base)
	}
	if !IsValidFormat(c.Output.DefaultFormat) {
		return fmt.Errorf("%w: output.default_format must be one of %v, got %q", ErrInvalidConfig, ValidFormats, c.Output.DefaultFormat)
	}
	return nil
}

// ReportOptions converts the report section into assembly options.
func (c *Config) ReportOptions() report.Options {
	opts := report.DefaultOptions()
	if c.Report.IncludeBlockHeaders != nil {
		opts.IncludeBlockHeaders = *c.Report.IncludeBlockHeaders
	}
	if c.Report.NThreshold != 0 {
		opts.NThreshold = c.Report.NThreshold
	}
	if c.Report.Base != 0 {
		opts.Base = c.Report.Base
	}
	return opts
}
