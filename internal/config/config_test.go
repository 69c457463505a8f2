// ABOUTME: Tests for centralized configuration system
// ABOUTME: Verifies environment variable parsing and validation
package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear environment to test defaults
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Verify defaults
	if cfg.DeepSeekBaseURL != "https://api.deepseek.com" {
		t.Errorf("DeepSeekBaseURL = %s, want https://api.deepseek.com", cfg.DeepSeekBaseURL)
	}
	if cfg.ChatModel != "deepseek-chat" {
		t.Errorf("ChatModel = %s, want deepseek-chat", cfg.ChatModel)
	}
	if cfg.OracleTimeout != 30*time.Second {
		t.Errorf("OracleTimeout = %v, want 30s", cfg.OracleTimeout)
	}
	if cfg.MaxRetries != 2 {
		t.Errorf("MaxRetries = %d, want 2", cfg.MaxRetries)
	}
	if cfg.RetryDelay != 2*time.Second {
		t.Errorf("RetryDelay = %v, want 2s", cfg.RetryDelay)
	}
	if cfg.ToolTimeout != 30*time.Second {
		t.Errorf("ToolTimeout = %v, want 30s", cfg.ToolTimeout)
	}
	if cfg.LaunchTimeout != 10*time.Second {
		t.Errorf("LaunchTimeout = %v, want 10s", cfg.LaunchTimeout)
	}
	if cfg.AppHost != "127.0.0.1" {
		t.Errorf("AppHost = %s, want 127.0.0.1", cfg.AppHost)
	}
	if cfg.AppPort != 8000 {
		t.Errorf("AppPort = %d, want 8000", cfg.AppPort)
	}
}

func TestLoad_CustomValues(t *testing.T) {
	os.Clearenv()
	os.Setenv("DEEPSEEK_API_KEY", "test-key")
	os.Setenv("DEEPSEEK_BASE_URL", "http://localhost:9999")
	os.Setenv("DEEPSEEK_MODEL", "deepseek-reasoner")
	os.Setenv("DEEPSEEK_TIMEOUT", "60s")
	os.Setenv("DEEPSEEK_MAX_RETRIES", "5")
	os.Setenv("DEEPSEEK_RETRY_DELAY", "3s")
	os.Setenv("BAIDU_MAP_AK", "bd-ak")
	os.Setenv("AMAP_KEY", "amap-key")
	os.Setenv("APP_HOST", "0.0.0.0")
	os.Setenv("APP_PORT", "8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DeepSeekKey != "test-key" {
		t.Errorf("DeepSeekKey = %s, want test-key", cfg.DeepSeekKey)
	}
	if cfg.DeepSeekBaseURL != "http://localhost:9999" {
		t.Errorf("DeepSeekBaseURL = %s, want http://localhost:9999", cfg.DeepSeekBaseURL)
	}
	if cfg.ChatModel != "deepseek-reasoner" {
		t.Errorf("ChatModel = %s, want deepseek-reasoner", cfg.ChatModel)
	}
	if cfg.OracleTimeout != 60*time.Second {
		t.Errorf("OracleTimeout = %v, want 60s", cfg.OracleTimeout)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.MaxRetries)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr() = %s, want 0.0.0.0:8080", cfg.Addr())
	}
}

func TestLoad_InvalidValuesUseDefaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("APP_PORT", "not-a-number")
	os.Setenv("DEEPSEEK_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.AppPort != 8000 {
		t.Errorf("AppPort = %d, want default 8000", cfg.AppPort)
	}
	if cfg.OracleTimeout != 30*time.Second {
		t.Errorf("OracleTimeout = %v, want default 30s", cfg.OracleTimeout)
	}
}

func TestValidate_Ranges(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"port too low", func(c *Config) { c.AppPort = 0 }, true},
		{"port too high", func(c *Config) { c.AppPort = 70000 }, true},
		{"retries negative", func(c *Config) { c.MaxRetries = -1 }, true},
		{"retries too high", func(c *Config) { c.MaxRetries = 11 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{AppPort: 8000, MaxRetries: 2}
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequireKeys(t *testing.T) {
	cfg := &Config{}
	err := cfg.RequireKeys()
	if err == nil {
		t.Fatal("expected error for empty credentials")
	}
	for _, want := range []string{"DEEPSEEK_API_KEY", "BAIDU_MAP_AK", "AMAP_KEY"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should name %s", err, want)
		}
	}

	cfg = &Config{DeepSeekKey: "a", BaiduMapAK: "b", AmapKey: "c"}
	if err := cfg.RequireKeys(); err != nil {
		t.Errorf("RequireKeys() = %v, want nil", err)
	}
}

func TestEndpointURLs(t *testing.T) {
	cfg := &Config{BaiduMapAK: "AK123", AmapKey: "KEY456"}

	if got := cfg.BaiduMCPURL(); got != "https://mcp.map.baidu.com/api/v1/mcp?ak=AK123" {
		t.Errorf("BaiduMCPURL() = %s", got)
	}
	if got := cfg.AmapMCPURL(); got != "https://mcp.amap.com/api/v1/mcp?key=KEY456" {
		t.Errorf("AmapMCPURL() = %s", got)
	}
}
