package dto

import "time"

// TeamRequest payload for create and update.
type TeamRequest struct {
	Name     string    `json:"name"`
	Country  *string   `json:"country"`
	JoinDate time.Time `json:"join_date"`
}

// TeamResponse representation.
type TeamResponse struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Country  *string   `json:"country"`
	JoinDate time.Time `json:"join_date"`
}
