package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the readability tool.
type Config struct {
	Analyze AnalyzeConfig `yaml:"analyze"`
	Scan    ScanConfig    `yaml:"scan"`
	Cache   CacheConfig   `yaml:"cache"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// AnalyzeConfig holds scoring configuration.
type AnalyzeConfig struct {
	Segmenter      string `yaml:"segmenter"` // "uax29", "punctuation"
	Precision      string `yaml:"precision"` // "truncate", "float"
	DetectLanguage bool   `yaml:"detect_language"`
}

// ScanConfig holds directory scan configuration.
type ScanConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
	Workers  int      `yaml:"workers"` // 0 = runtime.NumCPU()
}

// CacheConfig holds in-memory report cache configuration.
type CacheConfig struct {
	MaxEntries int           `yaml:"max_entries"`
	TTL        time.Duration `yaml:"ttl"`
}

// ReportConfig holds output configuration.
type ReportConfig struct {
	Output string `yaml:"output"` // "text", "json"
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Analyze: AnalyzeConfig{
			Segmenter:      "uax29",
			Precision:      "truncate",
			DetectLanguage: false,
		},
		Scan: ScanConfig{
			Includes: []string{"**/*.txt", "**/*.md", "**/*.markdown", "**/*.html", "**/*.htm"},
			Excludes: []string{"**/.git/**", "**/node_modules/**", "**/vendor/**", "**/.readability/**"},
			Workers:  0,
		},
		Cache: CacheConfig{
			MaxEntries: 256,
			TTL:        10 * time.Minute,
		},
		Report: ReportConfig{
			Output: "text",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate rejects unknown enum values.
func (c *Config) Validate() error {
	switch c.Analyze.Segmenter {
	case "uax29", "punctuation":
	default:
		return fmt.Errorf("analyze.segmenter: unknown value %q", c.Analyze.Segmenter)
	}
	switch c.Analyze.Precision {
	case "truncate", "float":
	default:
		return fmt.Errorf("analyze.precision: unknown value %q", c.Analyze.Precision)
	}
	switch c.Report.Output {
	case "text", "json":
	default:
		return fmt.Errorf("report.output: unknown value %q", c.Report.Output)
	}
	if c.Scan.Workers < 0 {
		return fmt.Errorf("scan.workers must not be negative, got %d", c.Scan.Workers)
	}
	return nil
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for readability.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "readability.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, StateDirName, "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StateDirName is the per-directory state folder.
const StateDirName = ".readability"

// StoreDBPath returns the path to the score database.
func StoreDBPath(dir string) string {
	return filepath.Join(dir, StateDirName, "scores.db")
}

// EnsureStateDir ensures the .readability directory exists.
func EnsureStateDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, StateDirName), 0755)
}
