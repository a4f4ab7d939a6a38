package api

// ErrorResponse is the error body shape used across the API. Fields is
// populated for validation failures only.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// SuccessResponse is used for simple acknowledgements.
type SuccessResponse struct {
	Message string `json:"message"`
}

// InitializeProfileResponse reports the bootstrapped profile and whether
// it was created on this call.
type InitializeProfileResponse struct {
	User    any  `json:"user"`
	Created bool `json:"created"`
}
