package dto

// ResultRequest payload for create and update.
type ResultRequest struct {
	Position int     `json:"position"`
	Points   float64 `json:"points"`
	Status   *string `json:"status"`
	RaceID   int64   `json:"race_id"`
	DriverID int64   `json:"driver_id"`
	CarID    *int64  `json:"car_id"`
}

// ResultResponse representation.
type ResultResponse struct {
	ID       int64   `json:"id"`
	Position int     `json:"position"`
	Points   float64 `json:"points"`
	Status   *string `json:"status"`
	RaceID   int64   `json:"race_id"`
	DriverID int64   `json:"driver_id"`
	CarID    *int64  `json:"car_id"`
}
