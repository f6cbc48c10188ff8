// Package config loads CLI settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds settings that flags may override.
type Config struct {
	Theme      string   `env:"CHALLENGE_THEME" envDefault:"default"`
	Width      int      `env:"CHALLENGE_WIDTH" envDefault:"0"`
	ExtraRoles []string `env:"CHALLENGE_EXTRA_ROLES" envSeparator:","`
	LogLevel   string   `env:"CHALLENGE_LOG_LEVEL" envDefault:"warn"`
	LogFormat  string   `env:"CHALLENGE_LOG_FORMAT" envDefault:"text"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Roles returns base extended with the configured extra roles. Blank and
// duplicate entries are skipped.
func (c Config) Roles(base []string) []string {
	out := make([]string, 0, len(base)+len(c.ExtraRoles))
	seen := make(map[string]struct{}, cap(out))
	for _, list := range [][]string{base, c.ExtraRoles} {
		for _, r := range list {
			r = strings.TrimSpace(r)
			key := strings.ToLower(r)
			if r == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, r)
		}
	}
	return out
}
