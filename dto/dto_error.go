package dto

// ===== Error Response =====
type ErrorResponse struct {
	Error string `json:"error" example:"Post not found"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Post deleted"`
}
