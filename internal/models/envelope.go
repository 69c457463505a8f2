// ABOUTME: Result envelope returned to every caller of the orchestrator
// ABOUTME: Stop steps tag where a pipeline run terminated early
package models

// StopStep identifies the pipeline step at which a request stopped.
// The steps are mutually exclusive; a successful run carries none.
type StopStep string

const (
	StepIntentAnalysis    StopStep = "intent_analysis"
	StepAddressExtraction StopStep = "address_extraction"
	StepAddressValidation StopStep = "address_validation"
)

// ValidationPair holds the per-address validations for one request.
type ValidationPair struct {
	Origin      *AddressValidation `json:"origin,omitempty"`
	Destination *AddressValidation `json:"destination,omitempty"`
}

// Summary is the caller-facing digest of a completed run.
type Summary struct {
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	MapService    ProviderID    `json:"map_service"`
	TransportMode TransportMode `json:"transport_mode"`
}

// Envelope aggregates everything one orchestration run produced. It is
// the only artifact that leaves the pipeline; its JSON shape is the
// caller compatibility contract and must not change field names.
type Envelope struct {
	Success             bool               `json:"success"`
	RequestID           string             `json:"request_id,omitempty"`
	UserInput           string             `json:"user_input"`
	IntentAnalysis      *Intent            `json:"intent_analysis,omitempty"`
	AddressValidation   *ValidationPair    `json:"address_validation,omitempty"`
	NavigationExecution *NavigationOutcome `json:"navigation_execution,omitempty"`
	Summary             *Summary           `json:"summary,omitempty"`
	Step                StopStep           `json:"step,omitempty"`
	Error               string             `json:"error,omitempty"`
}
