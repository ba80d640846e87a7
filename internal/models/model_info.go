package models

// ModelInfo describes the model deployed behind the remote endpoint.
type ModelInfo struct {
	Model               string              `json:"model" example:"shuttle-jaguar"`
	Version             string              `json:"version"`
	Parameters          string              `json:"parameters" example:"8B"`
	Format              string              `json:"format"`
	Source              string              `json:"source" example:"volume"`
	Capabilities        []string            `json:"capabilities"`
	RecommendedSettings RecommendedSettings `json:"recommended_settings"`
	VolumePath          string              `json:"volume_path"`
}

type RecommendedSettings struct {
	Height        int     `json:"height"`
	Width         int     `json:"width"`
	GuidanceScale float64 `json:"guidance_scale"`
	NumSteps      int     `json:"num_steps"`
	MaxSeqLength  int     `json:"max_seq_length"`
}

// ReloadResult is the acknowledgement returned by the reload endpoint.
type ReloadResult struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
