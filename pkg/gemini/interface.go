package gemini

import "context"

// TextModel is the interface for the Gemini text-understanding client.
// Implementations are safe for concurrent use.
type TextModel interface {
	// GenerateContent sends a generation request to the Gemini API.
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Model returns the model being used.
	Model() string
}
