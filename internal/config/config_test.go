package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Name != "Congress-MCP" {
		t.Errorf("expected default server name Congress-MCP, got %s", cfg.Server.Name)
	}
	if cfg.Server.Port != "4250" {
		t.Errorf("expected default port 4250, got %s", cfg.Server.Port)
	}
	if cfg.API.BaseURL != "https://api.congress.gov/v3" {
		t.Errorf("expected congress.gov base URL, got %s", cfg.API.BaseURL)
	}
	if cfg.API.Format != "json" {
		t.Errorf("expected default format json, got %s", cfg.API.Format)
	}
	if cfg.API.RateLimitPerHour != 5000 {
		t.Errorf("expected default rate limit 5000, got %d", cfg.API.RateLimitPerHour)
	}
	if cfg.API.PageSize != 20 {
		t.Errorf("expected default page size 20, got %d", cfg.API.PageSize)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFiles_NoFiles(t *testing.T) {
	t.Setenv("CONGRESSIONAL_API_KEY", "")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles with no files should not error: %v", err)
	}
	if cfg.Server.Port != "4250" {
		t.Errorf("expected default port 4250, got %s", cfg.Server.Port)
	}
}

func TestLoadFromFiles_ValidTOML(t *testing.T) {
	t.Setenv("CONGRESSIONAL_API_KEY", "")

	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "test.toml")

	content := `
[server]
name = "Congress-Test"
port = "9090"

[api]
base_url = "https://example.org/v3"
key = "file-key"
rate_limit_per_hour = 100
page_size = 50

[logging]
level = "debug"
`
	if err := os.WriteFile(tomlPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(tomlPath)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Name != "Congress-Test" {
		t.Errorf("expected server name Congress-Test, got %s", cfg.Server.Name)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.API.BaseURL != "https://example.org/v3" {
		t.Errorf("expected base URL https://example.org/v3, got %s", cfg.API.BaseURL)
	}
	if cfg.API.Key != "file-key" {
		t.Errorf("expected key file-key, got %s", cfg.API.Key)
	}
	if cfg.API.RateLimitPerHour != 100 {
		t.Errorf("expected rate limit 100, got %d", cfg.API.RateLimitPerHour)
	}
	if cfg.API.PageSize != 50 {
		t.Errorf("expected page size 50, got %d", cfg.API.PageSize)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFiles_PartialOverride(t *testing.T) {
	t.Setenv("CONGRESSIONAL_API_KEY", "")

	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "partial.toml")

	// Only override the port; everything else should stay default
	content := `
[server]
port = "3000"
`
	if err := os.WriteFile(tomlPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(tomlPath)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("expected port 3000, got %s", cfg.Server.Port)
	}
	if cfg.API.BaseURL != "https://api.congress.gov/v3" {
		t.Errorf("expected default base URL, got %s", cfg.API.BaseURL)
	}
	if cfg.API.RateLimitPerHour != 5000 {
		t.Errorf("expected default rate limit 5000, got %d", cfg.API.RateLimitPerHour)
	}
}

func TestLoadFromFiles_MultipleFiles(t *testing.T) {
	t.Setenv("CONGRESSIONAL_API_KEY", "")

	dir := t.TempDir()

	base := filepath.Join(dir, "base.toml")
	baseContent := `
[api]
key = "base-key"
page_size = 30
`
	if err := os.WriteFile(base, []byte(baseContent), 0644); err != nil {
		t.Fatal(err)
	}

	override := filepath.Join(dir, "override.toml")
	overrideContent := `
[api]
key = "override-key"
`
	if err := os.WriteFile(override, []byte(overrideContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(base, override)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	// Key should be overridden by the second file
	if cfg.API.Key != "override-key" {
		t.Errorf("expected key override-key, got %s", cfg.API.Key)
	}
	// Page size should come from the base file
	if cfg.API.PageSize != 30 {
		t.Errorf("expected page size 30 from base file, got %d", cfg.API.PageSize)
	}
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/path.toml")
	if err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestLoadFromFiles_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "invalid.toml")

	if err := os.WriteFile(tomlPath, []byte("this is not valid {{toml"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFromFiles(tomlPath)
	if err == nil {
		t.Error("expected error for invalid TOML, got nil")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	cfg := NewDefaultConfig()

	t.Setenv("CONGRESSIONAL_API_KEY", "env-key")
	t.Setenv("CONGRESS_API_BASE_URL", "https://env.example.org/v3")
	t.Setenv("CONGRESS_API_RATE_LIMIT", "250")
	t.Setenv("CONGRESS_MCP_PORT", "9999")
	t.Setenv("CONGRESS_MCP_LOG_LEVEL", "error")

	applyEnvOverrides(cfg)

	if cfg.API.Key != "env-key" {
		t.Errorf("expected env key env-key, got %s", cfg.API.Key)
	}
	if cfg.API.BaseURL != "https://env.example.org/v3" {
		t.Errorf("expected env base URL, got %s", cfg.API.BaseURL)
	}
	if cfg.API.RateLimitPerHour != 250 {
		t.Errorf("expected env rate limit 250, got %d", cfg.API.RateLimitPerHour)
	}
	if cfg.Server.Port != "9999" {
		t.Errorf("expected env port 9999, got %s", cfg.Server.Port)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected env log level error, got %s", cfg.Logging.Level)
	}
}

func TestApplyEnvOverrides_InvalidRateLimit(t *testing.T) {
	cfg := NewDefaultConfig()

	t.Setenv("CONGRESS_API_RATE_LIMIT", "not-a-number")

	applyEnvOverrides(cfg)

	if cfg.API.RateLimitPerHour != 5000 {
		t.Errorf("invalid rate limit should keep the default, got %d", cfg.API.RateLimitPerHour)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "test.toml")

	content := `
[api]
key = "file-key"
`
	if err := os.WriteFile(tomlPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CONGRESSIONAL_API_KEY", "env-key")

	cfg, err := LoadFromFiles(tomlPath)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	// Environment wins over the file
	if cfg.API.Key != "env-key" {
		t.Errorf("expected env-key to override file key, got %s", cfg.API.Key)
	}
}

func TestResolveKeyFile(t *testing.T) {
	t.Setenv("CONGRESSIONAL_API_KEY", "")

	dir := t.TempDir()
	keyPath := filepath.Join(dir, "congress.key")
	keyContent := "# congress.gov credential\n\nsecret-from-file\n"
	if err := os.WriteFile(keyPath, []byte(keyContent), 0600); err != nil {
		t.Fatal(err)
	}

	tomlPath := filepath.Join(dir, "test.toml")
	content := `
[api]
key_file = "` + keyPath + `"
`
	if err := os.WriteFile(tomlPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(tomlPath)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	// Comments and blank lines are skipped
	if cfg.API.Key != "secret-from-file" {
		t.Errorf("expected key from key file, got %q", cfg.API.Key)
	}
}

func TestResolveKeyFile_DirectKeyWins(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "congress.key")
	if err := os.WriteFile(keyPath, []byte("file-key\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := NewDefaultConfig()
	cfg.API.Key = "direct-key"
	cfg.API.KeyFile = keyPath

	resolveKeyFile(cfg)

	if cfg.API.Key != "direct-key" {
		t.Errorf("direct key should win over key file, got %s", cfg.API.Key)
	}
}

func TestResolveKeyFile_PlaceholderReplaced(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "congress.key")
	if err := os.WriteFile(keyPath, []byte("real-key\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg := NewDefaultConfig()
	cfg.API.Key = placeholderKey
	cfg.API.KeyFile = keyPath

	resolveKeyFile(cfg)

	if cfg.API.Key != "real-key" {
		t.Errorf("placeholder key should be replaced from key file, got %s", cfg.API.Key)
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()

	ApplyFlagOverrides(cfg, "8080")
	if cfg.Server.Port != "8080" {
		t.Errorf("expected flag port 8080, got %s", cfg.Server.Port)
	}

	ApplyFlagOverrides(cfg, "")
	if cfg.Server.Port != "8080" {
		t.Errorf("empty flag should not override, got %s", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.API.Key = "valid-key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	cfg.API.Key = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing API key")
	}

	cfg.API.Key = placeholderKey
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for placeholder API key")
	}

	cfg.API.Key = "valid-key"
	cfg.API.BaseURL = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty base URL")
	}
}
