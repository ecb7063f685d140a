package core

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"maxOpenConns"`
	LogLevel     string `yaml:"logLevel"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
}

// LoadConfig reads a yaml config file. ROLLCALL_DSN overrides the file's
// database dsn so hosted environments can inject credentials.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses a yaml config document. The SSM loader in
// infrastructure/devops feeds the parameter value through here as well.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if dsn := os.Getenv("ROLLCALL_DSN"); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("database dsn is not configured")
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = "0.0.0.0:8090"
	}

	return &cfg, nil
}

// GormLogLevel maps the config string onto the store log levels.
func (c DatabaseConfig) GormLogLevel() LogLevel {
	switch strings.ToLower(c.LogLevel) {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "info":
		return LogLevelInfo
	default:
		return LogLevelWarn
	}
}
