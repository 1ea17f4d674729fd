package domain

// Circuit is a race track.
type Circuit struct {
	ID      int64
	Name    string
	City    string
	Country string
	Active  bool
}
