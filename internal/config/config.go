// ABOUTME: Centralized configuration for the NavPilot services
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the navigation system
type Config struct {
	// DeepSeek oracle settings
	DeepSeekKey     string
	DeepSeekBaseURL string
	ChatModel       string
	OracleTimeout   time.Duration
	MaxRetries      int
	RetryDelay      time.Duration

	// Map provider credentials
	BaiduMapAK string
	AmapKey    string

	// Optional YAML file overriding provider endpoints / tool names
	ProvidersFile string

	// Remote tool call settings
	ToolTimeout   time.Duration
	LaunchTimeout time.Duration

	// HTTP server settings
	AppHost string
	AppPort int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		DeepSeekKey:     os.Getenv("DEEPSEEK_API_KEY"),
		DeepSeekBaseURL: getEnv("DEEPSEEK_BASE_URL", "https://api.deepseek.com"),
		ChatModel:       getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
		OracleTimeout:   getEnvDuration("DEEPSEEK_TIMEOUT", 30*time.Second),
		MaxRetries:      getEnvInt("DEEPSEEK_MAX_RETRIES", 2),
		RetryDelay:      getEnvDuration("DEEPSEEK_RETRY_DELAY", 2*time.Second),
		BaiduMapAK:      os.Getenv("BAIDU_MAP_AK"),
		AmapKey:         os.Getenv("AMAP_KEY"),
		ProvidersFile:   os.Getenv("NAVPILOT_PROVIDERS"),
		ToolTimeout:     getEnvDuration("MAP_TOOL_TIMEOUT", 30*time.Second),
		LaunchTimeout:   getEnvDuration("LAUNCH_TIMEOUT", 10*time.Second),
		AppHost:         getEnv("APP_HOST", "127.0.0.1"),
		AppPort:         getEnvInt("APP_PORT", 8000),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.AppPort < 1 || c.AppPort > 65535 {
		return fmt.Errorf("APP_PORT must be 1-65535, got %d", c.AppPort)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("DEEPSEEK_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// RequireKeys returns an error naming every credential that is missing.
// Load itself stays permissive so oracle-less paths keep working.
func (c *Config) RequireKeys() error {
	var missing []string
	if c.DeepSeekKey == "" {
		missing = append(missing, "DEEPSEEK_API_KEY")
	}
	if c.BaiduMapAK == "" {
		missing = append(missing, "BAIDU_MAP_AK")
	}
	if c.AmapKey == "" {
		missing = append(missing, "AMAP_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// BaiduMCPURL returns the Baidu map tool endpoint with the key applied.
func (c *Config) BaiduMCPURL() string {
	return fmt.Sprintf("https://mcp.map.baidu.com/api/v1/mcp?ak=%s", c.BaiduMapAK)
}

// AmapMCPURL returns the Amap tool endpoint with the key applied.
func (c *Config) AmapMCPURL() string {
	return fmt.Sprintf("https://mcp.amap.com/api/v1/mcp?key=%s", c.AmapKey)
}

// Addr returns the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.AppHost, c.AppPort)
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
