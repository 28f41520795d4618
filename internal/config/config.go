package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	LinkedIn   LinkedInConfig   `yaml:"linkedin"`
	Group      GroupConfig      `yaml:"group"`
	Connection ConnectionConfig `yaml:"connection"`
	Collector  CollectorConfig  `yaml:"collector"`
	Stealth    StealthConfig    `yaml:"stealth"`
	Database   DatabaseConfig   `yaml:"database"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// LinkedInConfig contains LinkedIn credentials
type LinkedInConfig struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// GroupConfig identifies the group whose members are scanned
type GroupConfig struct {
	MembersURL string `yaml:"members_url"`
}

// ConnectionConfig contains connection request settings
type ConnectionConfig struct {
	DailyLimit      int  `yaml:"daily_limit"`
	MinDelaySeconds int  `yaml:"min_delay_seconds"`
	MaxDelaySeconds int  `yaml:"max_delay_seconds"`
	SkipPending     bool `yaml:"skip_pending"`
}

// CollectorConfig tunes the member-listing walk
type CollectorConfig struct {
	MaxStaleScrolls  int `yaml:"max_stale_scrolls"`
	SettleDelayMinMs int `yaml:"settle_delay_min_ms"`
	SettleDelayMaxMs int `yaml:"settle_delay_max_ms"`
}

// StealthConfig contains anti-detection settings
type StealthConfig struct {
	MinActionDelayMs int  `yaml:"min_action_delay_ms"`
	MaxActionDelayMs int  `yaml:"max_action_delay_ms"`
	Headless         bool `yaml:"headless"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level    string `yaml:"level"`
	ToFile   bool   `yaml:"to_file"`
	FilePath string `yaml:"file_path"`
}

// Load loads configuration from the YAML file and environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore errors if not present)
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in YAML
	expandedData := expandEnvVars(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expandedData), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Default returns a config populated with the defaults the campaign runs
// with when a key is omitted from the file.
func Default() *Config {
	return &Config{
		Connection: ConnectionConfig{
			DailyLimit:      25,
			MinDelaySeconds: 30,
			MaxDelaySeconds: 90,
		},
		Collector: CollectorConfig{
			MaxStaleScrolls:  3,
			SettleDelayMinMs: 2000,
			SettleDelayMaxMs: 4000,
		},
		Stealth: StealthConfig{
			MinActionDelayMs: 500,
			MaxActionDelayMs: 2000,
			Headless:         true,
		},
		Database: DatabaseConfig{
			Path: "./data/outreach.db",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.LinkedIn.Email == "" {
		return fmt.Errorf("LinkedIn email is required")
	}
	if c.LinkedIn.Password == "" {
		return fmt.Errorf("LinkedIn password is required")
	}

	if c.Group.MembersURL == "" {
		return fmt.Errorf("group members_url is required")
	}

	if c.Connection.DailyLimit <= 0 {
		return fmt.Errorf("daily_limit must be positive")
	}
	if c.Connection.MinDelaySeconds < 0 {
		return fmt.Errorf("min_delay_seconds must be non-negative")
	}
	if c.Connection.MaxDelaySeconds < c.Connection.MinDelaySeconds {
		return fmt.Errorf("max_delay_seconds must be >= min_delay_seconds")
	}

	if c.Collector.MaxStaleScrolls <= 0 {
		return fmt.Errorf("max_stale_scrolls must be positive")
	}
	if c.Collector.SettleDelayMaxMs < c.Collector.SettleDelayMinMs {
		return fmt.Errorf("settle_delay_max_ms must be >= settle_delay_min_ms")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}

	return nil
}

// expandEnvVars expands environment variables in the format ${VAR} or ${VAR:default}
func expandEnvVars(s string) string {
	pattern := regexp.MustCompile(`\$\{([^}:]+)(?::([^}]*))?\}`)

	return pattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := pattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		varName := parts[1]
		defaultValue := ""
		if len(parts) > 2 {
			defaultValue = parts[2]
		}

		value := os.Getenv(varName)
		if value == "" {
			return defaultValue
		}
		return value
	})
}

// MinDelay returns the minimum delay between connection attempts.
func (c *Config) MinDelay() time.Duration {
	return time.Duration(c.Connection.MinDelaySeconds) * time.Second
}

// MaxDelay returns the maximum delay between connection attempts.
func (c *Config) MaxDelay() time.Duration {
	return time.Duration(c.Connection.MaxDelaySeconds) * time.Second
}

// ActionDelayMin returns the minimum settle delay between page actions.
func (c *Config) ActionDelayMin() time.Duration {
	return time.Duration(c.Stealth.MinActionDelayMs) * time.Millisecond
}

// ActionDelayMax returns the maximum settle delay between page actions.
func (c *Config) ActionDelayMax() time.Duration {
	return time.Duration(c.Stealth.MaxActionDelayMs) * time.Millisecond
}

// SettleDelayMin returns the minimum listing settle delay.
func (c *Config) SettleDelayMin() time.Duration {
	return time.Duration(c.Collector.SettleDelayMinMs) * time.Millisecond
}

// SettleDelayMax returns the maximum listing settle delay.
func (c *Config) SettleDelayMax() time.Duration {
	return time.Duration(c.Collector.SettleDelayMaxMs) * time.Millisecond
}
