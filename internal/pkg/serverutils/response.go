package serverutils

import "time"

// Response is the uniform envelope every endpoint returns. Message carries
// the stable human-readable outcome, Error the machine-facing detail.
type Response[T any] struct {
	Success   bool      `json:"success"`
	Data      T         `json:"data"`
	Message   string    `json:"message,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success:   true,
		Data:      data,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

func ErrorResponse(message string, detail string) Response[any] {
	return Response[any]{
		Success:   false,
		Message:   message,
		Error:     detail,
		Timestamp: time.Now().UTC(),
	}
}
