package dtos

// APIResponse is the envelope used by every /api/v1 route. POST /login is
// the one exception: it speaks the raw shapes in login.go.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"responseTime,omitempty"`
	Data         any    `json:"data,omitempty"`
}
