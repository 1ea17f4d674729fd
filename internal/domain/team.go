package domain

import "time"

// Team represents a constructor entered in the championship.
type Team struct {
	ID       int64
	Name     string
	Country  *string
	JoinDate time.Time
}

// TeamRef is the slice of a team embedded in a car.
type TeamRef struct {
	ID   int64
	Name string
}
