package dto

// Data Transfer Objects for admin authentication requests and responses

// LoginRequest: payload for admin login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse: response payload after successful authentication
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"` // always "Bearer"
	ExpiresIn int64  `json:"expires_in"` // seconds
}

// VerifyResponse: response payload of GET /api/admin/verify
type VerifyResponse struct {
	Valid    bool   `json:"valid"`
	AdminID  int64  `json:"admin_id"`
	Username string `json:"username"`
}

// SuccessResponse is the acknowledgement body of idempotent mutations
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
