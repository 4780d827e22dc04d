package dto

// HealthResponse is returned by the liveness check.
type HealthResponse struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}
