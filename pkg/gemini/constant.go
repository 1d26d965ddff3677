package gemini

import "time"

const (
	// DefaultModel is the default Gemini model.
	DefaultModel = "gemini-2.5-flash"

	// DefaultAPIURL is the default Gemini API endpoint.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout bounds a single generation call. The parser must never
	// block on the external service indefinitely.
	DefaultTimeout = 30 * time.Second
)
