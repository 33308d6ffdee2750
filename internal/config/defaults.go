package config

import "github.com/bobmcallan/congress-mcp/internal/common"

// NewDefaultConfig creates a configuration with default values. The API
// defaults mirror the published Congress.gov limits: 5,000 requests per
// hour and 20 items per page.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: "Congress-MCP",
			Port: "4250",
		},
		API: APIConfig{
			BaseURL:          "https://api.congress.gov/v3",
			Format:           "json",
			RateLimitPerHour: 5000,
			PageSize:         20,
		},
		Logging: common.LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/congress-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}
