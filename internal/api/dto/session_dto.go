package dto

// LoginRequest payload for POST /api/sessions.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest payload for POST /api/drivers. Roles cannot be chosen at registration.
type RegisterRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Status    *string `json:"status"`
	TeamID    *int64  `json:"team_id"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
}

// TokenResponse standard response for auth endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}

// ChangePasswordRequest payload for PUT /api/drivers/:id/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
