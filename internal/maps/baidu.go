// ABOUTME: Baidu Maps navigation provider with three-tier fallback
// ABOUTME: Remote maps tool, then synthesized direction URLs, then launch
package maps

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/Z0909/heiha/internal/models"
)

// BaiduProvider drives navigation through the Baidu Maps gateway.
type BaiduProvider struct {
	cfg      *ProviderConfig
	tools    *ToolClient
	launcher Launcher
	logger   *zap.Logger
}

// NewBaiduProvider wires a Baidu provider from its resolved config.
func NewBaiduProvider(cfg *ProviderConfig, tools *ToolClient, launcher Launcher, logger *zap.Logger) *BaiduProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BaiduProvider{cfg: cfg, tools: tools, launcher: launcher, logger: logger}
}

func (p *BaiduProvider) ID() models.ProviderID {
	return models.ProviderBaidu
}

// OpenNavigation runs the tier chain. Tier order is fixed: the remote
// tool is always tried first, URL synthesis only after it fails or
// returns nothing usable, and the launcher last.
func (p *BaiduProvider) OpenNavigation(ctx context.Context, origin, destination string, mode models.TransportMode) *models.NavigationOutcome {
	nativeMode := p.cfg.NativeMode(mode)

	result, err := p.tools.CallTool(ctx, p.cfg.ToolName, map[string]interface{}{
		"origin":      origin,
		"destination": destination,
		"mode":        nativeMode,
		"coord_type":  "bd09ll",
	})
	if err != nil {
		p.logger.Info("remote tool tier failed, synthesizing url",
			zap.String("provider", "baidu_map"), zap.String("tier", "remote_tool"), zap.Error(err))
		return p.localNavigation(ctx, origin, destination, nativeMode)
	}

	if remoteSucceeded(result) {
		if remoteURL := remoteNavigationURL(result); remoteURL != "" {
			return launchURL(ctx, p.launcher, p.logger, p.ID(), remoteURL, origin, destination)
		}
	}

	// Remote answered but gave nothing launchable.
	return p.localNavigation(ctx, origin, destination, nativeMode)
}

// localNavigation is the URL-synthesis tier. Baidu gets a primary
// api.map.baidu.com URL and a map.baidu.com backup; the backup is only
// tried when launching the primary fails.
func (p *BaiduProvider) localNavigation(ctx context.Context, origin, destination, nativeMode string) *models.NavigationOutcome {
	primary := p.directionURL("https://api.map.baidu.com/direction", origin, destination, nativeMode, true)
	backup := p.directionURL("https://map.baidu.com/direction", origin, destination, nativeMode, false)

	outcome := launchURL(ctx, p.launcher, p.logger, p.ID(), primary, origin, destination)
	if outcome.Success {
		return outcome
	}

	p.logger.Info("primary url launch failed, trying backup",
		zap.String("provider", "baidu_map"), zap.String("tier", "launch"))
	return launchURL(ctx, p.launcher, p.logger, p.ID(), backup, origin, destination)
}

func (p *BaiduProvider) directionURL(base, origin, destination, nativeMode string, full bool) string {
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("mode", nativeMode)
	if full {
		params.Set("region", "全国")
		params.Set("output", "html")
		params.Set("src", "AI导航助手")
		params.Set("coord_type", "bd09ll")
	}
	return base + "?" + params.Encode()
}
