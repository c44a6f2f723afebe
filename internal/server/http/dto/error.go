package dto

// ErrorReason carries an optional machine readable failure cause.
type ErrorReason struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ErrorItem is a single failure message.
type ErrorItem struct {
	Message string       `json:"message"`
	Reason  *ErrorReason `json:"reason,omitempty"`
}

// ErrorResponse is the uniform failure payload for all endpoints.
type ErrorResponse struct {
	Errors []ErrorItem `json:"errors"`
}
