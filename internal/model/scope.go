package model

// Environment names used by the HTTP server to toggle behavior.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the per-request caller context through usecase calls.
// The engine itself is stateless; the scope exists for logging and for
// collaborators that need to know who asked.
type Scope struct {
	UserID    string
	RequestID string
}
