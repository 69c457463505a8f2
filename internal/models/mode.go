// ABOUTME: Transport mode enumeration shared by the whole pipeline
// ABOUTME: Provider-native vocabulary lives in the registry, never here
package models

// TransportMode is the provider-agnostic way of getting somewhere.
// The orchestrator only ever speaks TransportMode; each provider's
// native vocabulary is resolved through the registry mode tables.
type TransportMode string

const (
	ModeTransit TransportMode = "transit"
	ModeDriving TransportMode = "driving"
	ModeWalking TransportMode = "walking"
)

// DefaultMode is used whenever the oracle omits or invents a mode.
const DefaultMode = ModeTransit

// ParseTransportMode normalizes a free-form mode string. Unknown
// values fall back to DefaultMode rather than failing: the oracle is
// best-effort and a bad mode should never sink a request.
func ParseTransportMode(s string) TransportMode {
	switch TransportMode(s) {
	case ModeTransit, ModeDriving, ModeWalking:
		return TransportMode(s)
	}
	return DefaultMode
}

// AllModes returns every mode the registry must be able to translate.
func AllModes() []TransportMode {
	return []TransportMode{ModeTransit, ModeDriving, ModeWalking}
}
