// ABOUTME: NavigationProvider capability interface and shared launch tier
// ABOUTME: Every provider exit is a NavigationOutcome, success or not
package maps

import (
	"context"

	"go.uber.org/zap"

	"github.com/Z0909/heiha/internal/models"
)

// maxURLLength is the point past which browsers start truncating.
const maxURLLength = 2000

// Provider executes navigation for a resolved origin/destination/mode
// triple. Implementations run a fixed three-tier strategy: remote tool
// call, local URL synthesis, OS launch. Nothing escapes the provider
// boundary as an error; every exit point is a fully formed outcome.
type Provider interface {
	ID() models.ProviderID
	OpenNavigation(ctx context.Context, origin, destination string, mode models.TransportMode) *models.NavigationOutcome
}

// launchURL is the shared launch tier. It asks the launcher to open
// the URL and degrades to manual_required when every path fails; the
// URL always rides along so the caller can surface it.
func launchURL(ctx context.Context, launcher Launcher, logger *zap.Logger, id models.ProviderID, url, origin, destination string) *models.NavigationOutcome {
	if len(url) > maxURLLength {
		logger.Warn("navigation url is unusually long",
			zap.String("provider", string(id)), zap.Int("length", len(url)))
	}

	logger.Info("launching navigation url",
		zap.String("provider", string(id)), zap.String("tier", "launch"))

	if err := launcher.OpenURL(ctx, url); err != nil {
		logger.Warn("all launch paths failed",
			zap.String("provider", string(id)), zap.Error(err))
		return &models.NavigationOutcome{
			Success:     false,
			Message:     "无法自动打开导航页面，请手动复制URL",
			MapService:  id,
			Origin:      origin,
			Destination: destination,
			URL:         url,
			Action:      models.ActionManualRequired,
		}
	}

	return &models.NavigationOutcome{
		Success:     true,
		Message:     "已在浏览器中打开导航页面: " + origin + " -> " + destination,
		MapService:  id,
		Origin:      origin,
		Destination: destination,
		URL:         url,
		Action:      models.ActionBrowserOpened,
	}
}

// remoteNavigationURL digs the navigation URL out of a tool result.
// Gateways have shipped both "url" and "navigation_url"; a successful
// result carrying neither counts as a tier failure.
func remoteNavigationURL(result map[string]interface{}) string {
	for _, key := range []string{"url", "navigation_url"} {
		if v, ok := result[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// remoteSucceeded reports whether the tool result claims success and
// carries no application-level error field.
func remoteSucceeded(result map[string]interface{}) bool {
	if _, hasErr := result["error"]; hasErr {
		return false
	}
	ok, _ := result["success"].(bool)
	return ok
}
