package responses

type Liveness struct {
	Message string `json:"message"`
}

// HealthCheck mirrors the diagnostic object served on /test: a coarse view of
// store connectivity and env presence, with error detail truncated.
type HealthCheck struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
