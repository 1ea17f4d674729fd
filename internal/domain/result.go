package domain

// Result is a driver's classification in a race.
type Result struct {
	ID       int64
	Position int
	Points   float64
	Status   *string
	RaceID   int64
	DriverID int64
	CarID    *int64
}
