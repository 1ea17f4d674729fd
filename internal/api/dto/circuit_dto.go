package dto

// CircuitRequest payload for create and update.
type CircuitRequest struct {
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Active  *bool  `json:"active"`
}

// CircuitResponse representation.
type CircuitResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
	Active  bool   `json:"active"`
}
