package models

// SuccessResponse is the uniform body of successful mutating requests.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the uniform body of failed requests. Error carries a
// user-facing message only; internal error details stay in the server logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
