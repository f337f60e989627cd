package dto

// LoginRequest is the JSON body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=1" example:"demo"`
	Password string `json:"password" binding:"required,min=1" example:"demo123"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`                // Signed JWT access token
	TokenType   string `json:"token_type" example:"bearer"` // Always "bearer"
}
