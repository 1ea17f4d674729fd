package dto

import "time"

// RaceRequest payload for create and update.
type RaceRequest struct {
	Date      time.Time `json:"date"`
	Laps      int       `json:"laps"`
	CircuitID int64     `json:"circuit_id"`
}

// RaceResponse representation.
type RaceResponse struct {
	ID      int64      `json:"id"`
	Date    time.Time  `json:"date"`
	Laps    int        `json:"laps"`
	Circuit RefSummary `json:"circuit"`
}
