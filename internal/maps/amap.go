// ABOUTME: Amap (Gaode) navigation provider with three-tier fallback
// ABOUTME: Remote maps tool, then a ditu.amap.com direction URL, then launch
package maps

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"github.com/Z0909/heiha/internal/models"
)

// AmapProvider drives navigation through the Amap gateway.
type AmapProvider struct {
	cfg      *ProviderConfig
	tools    *ToolClient
	launcher Launcher
	logger   *zap.Logger
}

// NewAmapProvider wires an Amap provider from its resolved config.
func NewAmapProvider(cfg *ProviderConfig, tools *ToolClient, launcher Launcher, logger *zap.Logger) *AmapProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmapProvider{cfg: cfg, tools: tools, launcher: launcher, logger: logger}
}

func (p *AmapProvider) ID() models.ProviderID {
	return models.ProviderAmap
}

// OpenNavigation runs the fixed tier chain for Amap.
func (p *AmapProvider) OpenNavigation(ctx context.Context, origin, destination string, mode models.TransportMode) *models.NavigationOutcome {
	nativeMode := p.cfg.NativeMode(mode)

	result, err := p.tools.CallTool(ctx, p.cfg.ToolName, map[string]interface{}{
		"origin":      origin,
		"destination": destination,
		"mode":        nativeMode,
		"city":        "",
	})
	if err != nil {
		p.logger.Info("remote tool tier failed, synthesizing url",
			zap.String("provider", "amap"), zap.String("tier", "remote_tool"), zap.Error(err))
		return p.localNavigation(ctx, origin, destination, nativeMode)
	}

	if remoteSucceeded(result) {
		if remoteURL := remoteNavigationURL(result); remoteURL != "" {
			return launchURL(ctx, p.launcher, p.logger, p.ID(), remoteURL, origin, destination)
		}
	}

	return p.localNavigation(ctx, origin, destination, nativeMode)
}

// localNavigation synthesizes the web direction URL. The URL omits any
// district code so Amap picks the best matching place itself.
func (p *AmapProvider) localNavigation(ctx context.Context, origin, destination, nativeMode string) *models.NavigationOutcome {
	params := url.Values{}
	params.Set("dateTime", "now")
	params.Set("from[name]", origin)
	params.Set("to[name]", destination)
	params.Set("policy", "0")
	params.Set("type", nativeMode)

	directionURL := "https://ditu.amap.com/dir?" + params.Encode()
	return launchURL(ctx, p.launcher, p.logger, p.ID(), directionURL, origin, destination)
}
