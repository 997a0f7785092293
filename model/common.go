package model

// Common Response structure for all API calls
type Response struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Fetch Success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}
