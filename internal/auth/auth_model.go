package auth

type RegisterRequest struct {
	Email           string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password        string `json:"password" binding:"required,min=8,max=72" example:"password123"`
	Name            string `json:"name" binding:"required,max=100" example:"Jane Doe"`
	IntroLine       string `json:"intro_line" binding:"omitempty,max=255"`
	ProfilePhotoURL string `json:"profile_photo_url" binding:"omitempty,max=500"`
	LocationCity    string `json:"location_city" binding:"omitempty,max=100"`
	LocationCountry string `json:"location_country" binding:"omitempty,max=100"`
	WhatsappNumber  string `json:"whatsapp_number" binding:"omitempty,max=30"`
}

// LoginRequest accepts JSON {email,password} as well as the OAuth2 password
// form (username=<email>&password=...).
type LoginRequest struct {
	Email    string `json:"email" form:"username" binding:"required" example:"jane@example.com"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type LogoutRequest struct {
	RefreshToken          string `json:"refresh_token"`           // Optional: specific token to invalidate
	InvalidateAllSessions bool   `json:"invalidate_all_sessions"` // If true, invalidate all of the user's refresh tokens
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}
