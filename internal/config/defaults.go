package config

// DefaultConfig returns configuration with sensible defaults.
// These defaults are used when no config file exists or when
// config file is missing specific fields.
func DefaultConfig() *Config {
	includeHeaders := true
	return &Config{
		Report: ReportConfig{
			IncludeBlockHeaders: &includeHeaders,
			NThreshold:          15,
			Base:                26,
		},
		Output: OutputConfig{
			DefaultFormat: "text",
		},
	}
}

// Merge merges loaded config with defaults.
// Values from loaded config take precedence over defaults.
// Returns a new Config with merged values.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}

	result.Report = mergeReportConfig(loaded.Report, defaults.Report)
	result.Output = mergeOutputConfig(loaded.Output, defaults.Output)

	return result
}

func mergeReportConfig(loaded, defaults ReportConfig) ReportConfig {
	result := ReportConfig{}

	// IncludeBlockHeaders: pointer distinguishes unset from explicit false
	if loaded.IncludeBlockHeaders != nil {
		result.IncludeBlockHeaders = loaded.IncludeBlockHeaders
	} else {
		result.IncludeBlockHeaders = defaults.IncludeBlockHeaders
	}

	// NThreshold: use loaded if non-zero
	if loaded.NThreshold != 0 {
		result.NThreshold = loaded.NThreshold
	} else {
		result.NThreshold = defaults.NThreshold
	}

	// Base: use loaded if non-zero
	if loaded.Base != 0 {
		result.Base = loaded.Base
	} else {
		result.Base = defaults.Base
	}

	return result
}

func mergeOutputConfig(loaded, defaults OutputConfig) OutputConfig {
	result := OutputConfig{}

	// DefaultFormat: use loaded if non-empty
	if loaded.DefaultFormat != "" {
		result.DefaultFormat = loaded.DefaultFormat
	} else {
		result.DefaultFormat = defaults.DefaultFormat
	}

	return result
}

// ValidFormats lists the valid values for output format
var ValidFormats = []string{"text", "yaml", "json"}

// IsValidFormat checks if the given format value is valid
func IsValidFormat(format string) bool {
	for _, valid := range ValidFormats {
		if format == valid {
			return true
		}
	}
	return false
}
