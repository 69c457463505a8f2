// ABOUTME: Provider identifiers for the configured mapping services
// ABOUTME: The set is fixed at startup by what the registry holds
package models

// ProviderID names one external mapping service.
type ProviderID string

const (
	ProviderBaidu ProviderID = "baidu_map"
	ProviderAmap  ProviderID = "amap"
)

// DefaultProvider is used when the oracle expresses no preference.
const DefaultProvider = ProviderBaidu

// ParseProviderID normalizes a free-form provider string, accepting the
// short aliases the CLI uses ("b"/"baidu", "g"/"gaode"). Unknown values
// fall back to DefaultProvider.
func ParseProviderID(s string) ProviderID {
	switch s {
	case string(ProviderBaidu), "baidu", "b":
		return ProviderBaidu
	case string(ProviderAmap), "gaode", "g":
		return ProviderAmap
	}
	return DefaultProvider
}
