// Package config loads the sqlchat binary's configuration: a small YAML file
// with env overrides. Missing file means defaults; a present but malformed
// file is an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables of the demo binary. The two caps are the only
// recognized store options.
type Config struct {
	MaxConversations           int    `yaml:"max_conversations"`
	MaxMessagesPerConversation int    `yaml:"max_messages_per_conversation"`
	Database                   string `yaml:"database"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxConversations:           10,
		MaxMessagesPerConversation: 20,
		Database:                   "default",
	}
}

// Load reads YAML from path over the defaults, then applies env overrides.
// An empty path or missing file yields defaults plus env overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// fall through to env overrides
		case err != nil:
			return Config{}, err
		default:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides fields from SQLCHAT_* variables. Unparseable integer
// values are ignored rather than fatal.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SQLCHAT_MAX_CONVERSATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxConversations = n
		}
	}
	if v := os.Getenv("SQLCHAT_MAX_MESSAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxMessagesPerConversation = n
		}
	}
	if v := os.Getenv("SQLCHAT_DATABASE"); v != "" {
		cfg.Database = v
	}
}

// Validate rejects non-positive caps.
func (c Config) Validate() error {
	if c.MaxConversations <= 0 {
		return fmt.Errorf("max_conversations must be positive, got %d", c.MaxConversations)
	}
	if c.MaxMessagesPerConversation <= 0 {
		return fmt.Errorf("max_messages_per_conversation must be positive, got %d", c.MaxMessagesPerConversation)
	}
	return nil
}
