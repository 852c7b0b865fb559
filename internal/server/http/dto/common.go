package dto

// ErrorResponse carries a machine-readable error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
