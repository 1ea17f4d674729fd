package domain

import "time"

// CircuitRef is the slice of a circuit embedded in a race.
type CircuitRef struct {
	ID   int64
	Name string
}

// Race is a single event held on a circuit.
type Race struct {
	ID      int64
	Date    time.Time
	Laps    int
	Circuit CircuitRef
}
