package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. LEADERBOARD_LOGGING_LEVEL.
const EnvPrefix = "LEADERBOARD"

// Config struct to hold the configuration settings
type Config struct {
	Logging     LoggingConfig     `yaml:"logging" envconfig:"LOGGING"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard" envconfig:"LEADERBOARD"`
	Chart       ChartConfig       `yaml:"chart" envconfig:"CHART"`
}

// LoggingConfig holds log handler settings.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
}

// LeaderboardConfig holds the file names and cleaning rules of a run.
type LeaderboardConfig struct {
	RequiredPrefixes []string `yaml:"required_prefixes" envconfig:"REQUIRED_PREFIXES" validate:"min=1,dive,required"`
	OutputFile       string   `yaml:"output_file" envconfig:"OUTPUT_FILE" validate:"required"`
	HTMLFile         string   `yaml:"html_file" envconfig:"HTML_FILE"`
	XLSXFile         string   `yaml:"xlsx_file" envconfig:"XLSX_FILE"`
	ChartFile        string   `yaml:"chart_file" envconfig:"CHART_FILE"`
}

// ChartConfig holds the size of the rendered ranking chart.
type ChartConfig struct {
	Width  int `yaml:"width" envconfig:"WIDTH" validate:"gte=200,lte=4000"`
	Height int `yaml:"height" envconfig:"HEIGHT" validate:"gte=200,lte=4000"`
}

// Default returns the configuration used when no file or overrides are present.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Leaderboard: LeaderboardConfig{
			RequiredPrefixes: []string{"Player", "Game"},
			OutputFile:       "output.csv",
			HTMLFile:         "test.html",
		},
		Chart: ChartConfig{
			Width:  800,
			Height: 400,
		},
	}
}

// LoadConfig loads the configuration from a YAML file.
// A missing file is not an error: defaults apply, then environment overrides.
// A .env file beside the config file is loaded first; variables already set in
// the environment win over it.
func LoadConfig(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := loadDotEnv(filepath.Join(filepath.Dir(filename), ".env")); err != nil {
		return nil, err
	}

	// --- OVERRIDE WITH ENV VARS IF PRESENT ---
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration against its field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// SlogLevel maps the configured level name onto a slog level.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
