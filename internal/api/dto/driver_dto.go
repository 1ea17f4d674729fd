package dto

// UpdateDriverRequest payload.
type UpdateDriverRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Status    *string `json:"status"`
	TeamID    *int64  `json:"team_id"`
}

// DriverResponse never carries the email, roles or password hash.
type DriverResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Status    *string `json:"status"`
	TeamID    *int64  `json:"team_id"`
}
