// ABOUTME: Intent and address validation results produced by the oracle
// ABOUTME: Both are fail-soft values; an Error field marks oracle trouble
package models

// Intent is the oracle's best-effort structured reading of a request.
// Origin or Destination may be empty, which means the oracle answered
// but could not extract the field. That is a different outcome from an
// oracle failure, which is recorded in Error with Confidence zero.
type Intent struct {
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	MapService    string  `json:"map_service"`
	TransportMode string  `json:"transport_mode"`
	Confidence    float64 `json:"confidence"`
	Error         string  `json:"error,omitempty"`
}

// Provider resolves the oracle's service preference, defaulting when absent.
func (i *Intent) Provider() ProviderID {
	if i.MapService == "" {
		return DefaultProvider
	}
	return ParseProviderID(i.MapService)
}

// Mode resolves the oracle's transport mode, defaulting when absent.
func (i *Intent) Mode() TransportMode {
	if i.TransportMode == "" {
		return DefaultMode
	}
	return ParseTransportMode(i.TransportMode)
}

// AddressValidation is the oracle's verdict on one address. On any
// failure IsValid is false, StandardizedAddress echoes the input, and
// Confidence is zero; the validator never raises past its boundary.
type AddressValidation struct {
	IsValid             bool    `json:"is_valid"`
	StandardizedAddress string  `json:"standardized_address"`
	Confidence          float64 `json:"confidence"`
	Error               string  `json:"error,omitempty"`
}
