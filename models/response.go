package models

// ErrorResponse is the body of every failed API call except /api/health.
type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"

	ModeReadOnly = "read-only"
)

// HealthResponse reports whether the database answered a trivial query.
// Mode is only set when healthy, Error only when not.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Mode     string `json:"mode,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Healthy reports whether the response describes a reachable database.
func (h HealthResponse) Healthy() bool {
	return h.Status == StatusHealthy
}
