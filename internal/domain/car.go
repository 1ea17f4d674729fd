package domain

// Car is a chassis fielded by a team.
type Car struct {
	ID     int64
	Model  string
	Weight float64
	Year   int
	Team   TeamRef
}
