package planner

import "errors"

// Domain-specific errors for the planner package.
var (
	ErrEmptyInput  = errors.New("input text is empty")
	ErrInvalidTask = errors.New("task is invalid: title must be non-empty and duration positive")
)
