// Package config holds server configuration for the admin dashboard.
// Values resolve in order: defaults, then an optional YAML file, then
// environment variables, then flags (applied by the caller).
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds configuration for the dashboard server.
type ServerConfig struct {
	Addr       string `yaml:"addr"`         // Listen address (default ":8080")
	APIBaseURL string `yaml:"api_base_url"` // Platform API base URL
	LogLevel   string `yaml:"log_level"`    // Log level: debug, info, warn, error
	LogFormat  string `yaml:"log_format"`   // Log format: text, json
	DBPath     string `yaml:"db_path"`      // SQLite session database path (":memory:" for testing)
	Secure     bool   `yaml:"secure"`       // Use secure cookies (HTTPS)

	// Asset uploads (S3-compatible host). Uploads are disabled when
	// Bucket is empty.
	Assets AssetsConfig `yaml:"assets"`
}

// AssetsConfig configures the S3-compatible image host.
type AssetsConfig struct {
	Bucket        string `yaml:"bucket"`
	Region        string `yaml:"region"`
	Endpoint      string `yaml:"endpoint"`        // Optional custom endpoint (MinIO etc.)
	PublicBaseURL string `yaml:"public_base_url"` // Base URL prefixed to object keys
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:       ":8080",
		APIBaseURL: "http://localhost:5000",
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// LoadFile merges a YAML config file into cfg. Unknown keys are
// rejected so typos surface at startup instead of silently falling
// back to defaults.
func (c *ServerConfig) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays SHOPADMIN_* environment variables.
func (c *ServerConfig) ApplyEnv() {
	if v := os.Getenv("SHOPADMIN_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("SHOPADMIN_API_URL"); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv("SHOPADMIN_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("SHOPADMIN_DB"); v != "" {
		c.DBPath = v
	}
}

// Validate checks the resolved configuration.
func (c *ServerConfig) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url is required")
	}
	return nil
}
