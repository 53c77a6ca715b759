// Package config loads server configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Log    LogConfig    `yaml:"log"`
	Web    WebConfig    `yaml:"web"`
	MCP    MCPConfig    `yaml:"mcp"`
}

type ServerConfig struct {
	Host string `yaml:"host" env:"TICKIFY_SERVER_HOST"`
	Port int    `yaml:"port" env:"TICKIFY_SERVER_PORT"`
}

type StoreConfig struct {
	Path string `yaml:"path" env:"TICKIFY_STORE_PATH"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"TICKIFY_LOG_LEVEL"`
}

type WebConfig struct {
	// FlashSecret signs the one-time notice cookie. Any value works
	// for a local single-user run; override it when exposed beyond
	// localhost.
	FlashSecret string `yaml:"flash_secret" env:"TICKIFY_FLASH_SECRET"`
}

type MCPConfig struct {
	// Enabled mounts the MCP tool surface at /mcp in HTTP mode.
	Enabled bool `yaml:"enabled" env:"TICKIFY_MCP_ENABLED"`
	// Mode selects the transport: "http" (default) serves the views
	// with /mcp mounted when enabled; "stdio" runs the MCP server
	// alone over stdin/stdout for local AI clients.
	Mode string `yaml:"mode" env:"TICKIFY_MCP_MODE"`
}

// Load reads configuration: defaults, then an optional YAML file named
// by TICKIFY_CONFIG_PATH, then environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Store: StoreConfig{
			Path: "tickify.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Web: WebConfig{
			FlashSecret: "tickify-local-notices",
		},
		MCP: MCPConfig{
			Enabled: false,
			Mode:    "http",
		},
	}

	if path := os.Getenv("TICKIFY_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
