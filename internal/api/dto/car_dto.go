package dto

// CarRequest payload for create and update.
type CarRequest struct {
	Model  string  `json:"model"`
	Weight float64 `json:"weight"`
	Year   int     `json:"year"`
	TeamID int64   `json:"team_id"`
}

// CarResponse representation.
type CarResponse struct {
	ID     int64      `json:"id"`
	Model  string     `json:"model"`
	Weight float64    `json:"weight"`
	Year   int        `json:"year"`
	Team   RefSummary `json:"team"`
}
