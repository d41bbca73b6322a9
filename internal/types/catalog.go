package types

import "github.com/jonathan/prompt-enhancer/internal/catalog"

// CatalogResponse lists every option a caller can pick from.
type CatalogResponse struct {
	TaskTypes          []catalog.TaskOption         `json:"task_types"`
	SecondaryTaskTypes []catalog.OptionalTaskOption `json:"secondary_task_types"`
	DetailLevels       []catalog.DetailOption       `json:"detail_levels"`
	Tones              []catalog.ToneOption         `json:"tones"`
	GoalTemplates      []catalog.GoalTemplate       `json:"goal_templates"`
	Examples           []catalog.TaskExample        `json:"examples"`
}

// NewCatalogResponse snapshots the option catalog.
func NewCatalogResponse() CatalogResponse {
	return CatalogResponse{
		TaskTypes:          catalog.TaskTypes(),
		SecondaryTaskTypes: catalog.TaskTypesWithNone(),
		DetailLevels:       catalog.DetailLevels(),
		Tones:              catalog.Tones(),
		GoalTemplates:      catalog.GoalTemplates(),
		Examples:           catalog.TaskExamples(),
	}
}

// StatusResponse reports whether AI features are available.
type StatusResponse struct {
	APIKeyConfigured bool   `json:"api_key_configured"`
	Model            string `json:"model,omitempty"`
	Message          string `json:"message,omitempty"`
}
