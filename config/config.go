package config

import (
	"fmt"
	"os"
	"strconv"

	"pdftext/process"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Backend    string `yaml:"backend"`
	Validate   bool   `yaml:"validate"`
	StrictExit bool   `yaml:"strict_exit"`
	LogLevel   string `yaml:"log_level"`
}

// Default reproduces the behaviour of the tool without any configuration.
func Default() *Config {
	return &Config{
		Backend:  process.BackendLedongthuc,
		LogLevel: "warn",
	}
}

// Load builds the configuration from defaults, the YAML file named by path or
// PDFTEXT_CONFIG, and PDFTEXT_* environment variables, in that order.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = getEnv("PDFTEXT_CONFIG")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if v := getEnv("PDFTEXT_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := getEnv("PDFTEXT_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if err := envBool("PDFTEXT_VALIDATE", &cfg.Validate); err != nil {
		return nil, err
	}
	if err := envBool("PDFTEXT_STRICT_EXIT", &cfg.StrictExit); err != nil {
		return nil, err
	}

	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Check rejects unknown backends and log levels.
func (c *Config) Check() error {
	if _, err := process.NewBackend(c.Backend); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

func getEnv(key string) string {
	return os.Getenv(key)
}

func envBool(key string, dst *bool) error {
	value := getEnv(key)
	if value == "" {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("environment variable %s: %w", key, err)
	}
	*dst = b
	return nil
}
