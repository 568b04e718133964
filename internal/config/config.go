// Package config loads engine configuration from YAML files with sane
// defaults, so the CLI can run against a local Redis with no file at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the adventure engine CLI.
type Config struct {
	Redis RedisConfig `yaml:"redis"`
	Demo  DemoConfig  `yaml:"demo"`
}

// RedisConfig holds connection parameters for the blob store.
type RedisConfig struct {
	Endpoint     string `yaml:"endpoint"`
	PoolSize     int    `yaml:"pool_size"`
	MinIdleConns int    `yaml:"min_idle_conns"`
	MaxRetries   int    `yaml:"max_retries"`
}

// DemoConfig controls the scripted demo session.
type DemoConfig struct {
	CharacterName string `yaml:"character_name"`
	Class         string `yaml:"class"`
	Battles       int    `yaml:"battles"`
	Seed          int64  `yaml:"seed"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Redis: RedisConfig{
			Endpoint:   "localhost:6379",
			PoolSize:   10,
			MaxRetries: 3,
		},
		Demo: DemoConfig{
			CharacterName: "Adventurer",
			Class:         "WARRIOR",
			Battles:       5,
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
