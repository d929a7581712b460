package models

import (
	"time"
)

// APIResponse represents a standard API response structure
type APIResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	Data      any       `json:"data,omitempty"`
	Error     *APIError `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// APIError represents an API error response
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ValidationError describes one rejected request field.
type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// NewSuccessResponse creates a successful API response
func NewSuccessResponse(data any, message string) *APIResponse {
	return &APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewErrorResponse creates an error API response
func NewErrorResponse(code, message string, details map[string]string) *APIResponse {
	return &APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
		Timestamp: time.Now(),
	}
}

// HealthCheck represents a health check response
type HealthCheck struct {
	Status     string                     `json:"status"`
	Timestamp  time.Time                  `json:"timestamp"`
	Version    string                     `json:"version"`
	Commit     string                     `json:"commit"`
	Components map[string]ComponentHealth `json:"components"`
}

// ComponentHealth represents health status of a component
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func NewHealthCheck(version, commit string, now time.Time) *HealthCheck {
	return &HealthCheck{
		Status:     "healthy",
		Timestamp:  now,
		Version:    version,
		Commit:     commit,
		Components: make(map[string]ComponentHealth),
	}
}

// AddComponent records a component; any unhealthy component marks the whole check
// unhealthy.
func (h *HealthCheck) AddComponent(name, status, message string) {
	h.Components[name] = ComponentHealth{
		Status:  status,
		Message: message,
	}

	if status != "healthy" {
		h.Status = "unhealthy"
	}
}
