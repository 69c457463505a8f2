// ABOUTME: Provider registry owning endpoints, tool names, and mode tables
// ABOUTME: Built once at startup, immutable and safe for concurrent reads
package maps

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Z0909/heiha/internal/config"
	"github.com/Z0909/heiha/internal/models"
)

// ProviderConfig holds everything registry-owned about one provider:
// its tool endpoint, the remote tool method name (upstream gateways
// have shipped several names for the same operation, so this is
// configuration, not contract), and the transport-mode vocabulary.
type ProviderConfig struct {
	Endpoint    string                          `yaml:"endpoint"`
	ToolName    string                          `yaml:"tool_name"`
	Modes       map[models.TransportMode]string `yaml:"modes"`
	DefaultMode string                          `yaml:"default_mode"`
}

// NativeMode translates a TransportMode into this provider's
// vocabulary. The mapping is total: unmapped modes resolve to the
// provider's transit-equivalent default.
func (c *ProviderConfig) NativeMode(mode models.TransportMode) string {
	if native, ok := c.Modes[mode]; ok && native != "" {
		return native
	}
	return c.DefaultMode
}

// overrideFile is the YAML shape of an optional provider override file.
type overrideFile struct {
	Providers map[string]ProviderConfig `yaml:"providers"`
}

// Registry holds one NavigationProvider per configured mapping service
// together with its ProviderConfig. It never changes after New.
type Registry struct {
	providers map[models.ProviderID]Provider
	configs   map[models.ProviderID]*ProviderConfig
	logger    *zap.Logger
}

// defaultConfigs returns the built-in provider table.
func defaultConfigs(cfg *config.Config) map[models.ProviderID]*ProviderConfig {
	return map[models.ProviderID]*ProviderConfig{
		models.ProviderBaidu: {
			Endpoint: cfg.BaiduMCPURL(),
			ToolName: "maps_navigation",
			Modes: map[models.TransportMode]string{
				models.ModeTransit: "transit",
				models.ModeDriving: "driving",
				models.ModeWalking: "walking",
			},
			DefaultMode: "transit",
		},
		models.ProviderAmap: {
			Endpoint: cfg.AmapMCPURL(),
			ToolName: "maps_navigation",
			Modes: map[models.TransportMode]string{
				models.ModeTransit: "bus",
				models.ModeDriving: "car",
				models.ModeWalking: "walk",
			},
			DefaultMode: "bus",
		},
	}
}

// NewRegistry builds the registry from config, applying overrides from
// cfg.ProvidersFile when set, and wires each provider with its own
// tool client and the shared launcher.
func NewRegistry(cfg *config.Config, launcher Launcher, logger *zap.Logger) (*Registry, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	configs := defaultConfigs(cfg)

	if cfg.ProvidersFile != "" {
		if err := applyOverrides(configs, cfg.ProvidersFile); err != nil {
			return nil, fmt.Errorf("loading provider overrides: %w", err)
		}
		logger.Info("applied provider overrides", zap.String("file", cfg.ProvidersFile))
	}

	r := &Registry{
		providers: make(map[models.ProviderID]Provider),
		configs:   configs,
		logger:    logger,
	}

	baiduCfg := configs[models.ProviderBaidu]
	r.providers[models.ProviderBaidu] = NewBaiduProvider(
		baiduCfg,
		NewToolClient(baiduCfg.Endpoint, cfg.ToolTimeout, logger),
		launcher,
		logger,
	)

	amapCfg := configs[models.ProviderAmap]
	r.providers[models.ProviderAmap] = NewAmapProvider(
		amapCfg,
		NewToolClient(amapCfg.Endpoint, cfg.ToolTimeout, logger),
		launcher,
		logger,
	)

	return r, nil
}

// applyOverrides merges a YAML override file into the default table.
// Only non-zero fields replace defaults, so a file can override just a
// tool name without restating the mode table.
func applyOverrides(configs map[models.ProviderID]*ProviderConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file overrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for name, override := range file.Providers {
		id := models.ProviderID(name)
		base, ok := configs[id]
		if !ok {
			return fmt.Errorf("override for unknown provider %q", name)
		}
		if override.Endpoint != "" {
			base.Endpoint = override.Endpoint
		}
		if override.ToolName != "" {
			base.ToolName = override.ToolName
		}
		if len(override.Modes) > 0 {
			base.Modes = override.Modes
		}
		if override.DefaultMode != "" {
			base.DefaultMode = override.DefaultMode
		}
	}
	return nil
}

// Provider returns the registered provider for an ID.
func (r *Registry) Provider(id models.ProviderID) (Provider, bool) {
	p, ok := r.providers[id]
	return p, ok
}

// IDs lists the configured provider identifiers.
func (r *Registry) IDs() []models.ProviderID {
	ids := make([]models.ProviderID, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	return ids
}

// NativeMode resolves the provider-native mode string for a pair. The
// lookup is total for registered providers; an unknown provider gets
// the global default mode spelled in its own right.
func (r *Registry) NativeMode(id models.ProviderID, mode models.TransportMode) string {
	if cfg, ok := r.configs[id]; ok {
		return cfg.NativeMode(mode)
	}
	return string(models.DefaultMode)
}

// ExecuteNavigation dispatches to the selected provider. An unknown
// provider is reported as an unsuccessful outcome, never an error.
func (r *Registry) ExecuteNavigation(ctx context.Context, id models.ProviderID, origin, destination string, mode models.TransportMode) *models.NavigationOutcome {
	provider, ok := r.providers[id]
	if !ok {
		return &models.NavigationOutcome{
			Success:     false,
			MapService:  id,
			Origin:      origin,
			Destination: destination,
			Error:       fmt.Sprintf("不支持的地图服务: %s", id),
		}
	}
	return provider.OpenNavigation(ctx, origin, destination, mode)
}

// ListTools asks one provider's endpoint for its advertised tools.
func (r *Registry) ListTools(ctx context.Context, id models.ProviderID, timeout time.Duration) ([]ToolInfo, error) {
	cfg, ok := r.configs[id]
	if !ok {
		return nil, fmt.Errorf("unknown provider %q", id)
	}
	client := NewToolClient(cfg.Endpoint, timeout, r.logger)
	return client.ListTools(ctx)
}
