package domain

// Driver is both a racing driver profile and the credential used to sign in.
type Driver struct {
	ID           int64
	FirstName    string
	LastName     string
	Status       *string
	TeamID       *int64
	Email        string
	PasswordHash string
	Roles        RoleSet
}

// DriverProfile holds the fields a driver may set about themselves.
type DriverProfile struct {
	FirstName string
	LastName  string
	Status    *string
	TeamID    *int64
}
