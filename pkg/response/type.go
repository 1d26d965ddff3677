package response

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

const (
	// MessageSuccess is the message of a successful response.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internals from the caller on 500s.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code for 500 responses.
	InternalServerErrorCode = 500
)
