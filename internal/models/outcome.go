// ABOUTME: Terminal navigation outcome returned by every provider
// ABOUTME: All provider failure is data here, never an error value
package models

// LaunchAction describes how (or whether) the navigation view was opened.
type LaunchAction string

const (
	// ActionAppOpened means a native map application took the URL.
	ActionAppOpened LaunchAction = "app_opened"
	// ActionBrowserOpened means the default browser took the URL.
	ActionBrowserOpened LaunchAction = "browser_opened"
	// ActionManualRequired is the designed worst case: a usable URL
	// exists but nothing on this host would open it automatically.
	ActionManualRequired LaunchAction = "manual_required"
)

// NavigationOutcome is the single exit type of a provider's
// OpenNavigation. It is fully formed at every exit point, success or
// not, and carries the URL so callers can fall back to manual use.
type NavigationOutcome struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message,omitempty"`
	MapService  ProviderID   `json:"map_service"`
	Origin      string       `json:"origin"`
	Destination string       `json:"destination"`
	URL         string       `json:"url,omitempty"`
	Action      LaunchAction `json:"action,omitempty"`
	Error       string       `json:"error,omitempty"`
}
