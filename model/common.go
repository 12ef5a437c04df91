package model

// SuccessResponse acknowledges a command that has nothing else to return.
type SuccessResponse struct {
	Success bool `json:"success"`
}
