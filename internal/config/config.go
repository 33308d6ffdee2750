package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/bobmcallan/congress-mcp/internal/common"
)

// placeholderKey is the template value shipped in sample configs. It is
// treated the same as a missing key.
const placeholderKey = "PASTE_KEY_HERE"

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	API     APIConfig            `toml:"api"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains MCP server settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Port string `toml:"port"`
}

// APIConfig contains Congress.gov API settings.
type APIConfig struct {
	BaseURL          string `toml:"base_url"`
	Key              string `toml:"key"`
	KeyFile          string `toml:"key_file"`
	Format           string `toml:"format"`
	RateLimitPerHour int    `toml:"rate_limit_per_hour"`
	PageSize         int    `toml:"page_size"`
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)
	resolveKeyFile(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config.
// CONGRESSIONAL_API_KEY matches the variable the Congress.gov sign-up
// flow tells users to export.
func applyEnvOverrides(config *Config) {
	if key := os.Getenv("CONGRESSIONAL_API_KEY"); key != "" {
		config.API.Key = key
	}
	if baseURL := os.Getenv("CONGRESS_API_BASE_URL"); baseURL != "" {
		config.API.BaseURL = baseURL
	}
	if rateLimit := os.Getenv("CONGRESS_API_RATE_LIMIT"); rateLimit != "" {
		if n, err := strconv.Atoi(rateLimit); err == nil {
			config.API.RateLimitPerHour = n
		}
	}
	if port := os.Getenv("CONGRESS_MCP_PORT"); port != "" {
		config.Server.Port = port
	}
	if level := os.Getenv("CONGRESS_MCP_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// resolveKeyFile reads the credential from api.key_file when no key was
// supplied directly. Missing or unreadable files are left for Validate
// to report as an absent key.
func resolveKeyFile(config *Config) {
	if config.API.Key != "" && config.API.Key != placeholderKey {
		return
	}
	if config.API.KeyFile == "" {
		return
	}

	f, err := os.Open(config.API.KeyFile)
	if err != nil {
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		config.API.Key = line
		return
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port string) {
	if port != "" {
		config.Server.Port = port
	}
}

// Validate reports configuration problems that prevent startup.
func (c *Config) Validate() error {
	if c.API.Key == "" || c.API.Key == placeholderKey {
		return fmt.Errorf("congress.gov API key not found: set CONGRESSIONAL_API_KEY or configure api.key in the config file")
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	return nil
}
