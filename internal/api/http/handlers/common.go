package handlers

import (
	"net/mail"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"github.com/spec-kit/formula-api/internal/api/dto"
	"github.com/spec-kit/formula-api/internal/domain"
	apperrors "github.com/spec-kit/formula-api/pkg/util"
)

const maxNameLength = 255

func parseID(c *fiber.Ctx, name string) (int64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{name: raw})
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, dest any) error {
	if err := c.BodyParser(dest); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	return nil
}

// fieldErrors collects per-field validation failures.
type fieldErrors map[string]any

func (f fieldErrors) check(ok bool, field, message string) {
	if !ok {
		if _, seen := f[field]; !seen {
			f[field] = message
		}
	}
}

func (f fieldErrors) requireName(field, value string) {
	f.check(value != "", field, "is required")
	f.check(len(value) <= maxNameLength, field, "must be at most 255 characters")
}

func (f fieldErrors) requireEmail(field, value string) {
	// Bare addresses only: no display name, no angle brackets.
	addr, err := mail.ParseAddress(value)
	f.check(err == nil && addr.Address == value, field, "must be a valid email")
}

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return apperrors.NewValidationError("Validation failed", f)
}

func listOf[T, R any](items []T, convert func(T) R) dto.ListResponse[R] {
	return dto.ListResponse[R]{Items: lo.Map(items, func(item T, _ int) R { return convert(item) })}
}

func driverResponse(d domain.Driver) dto.DriverResponse {
	return dto.DriverResponse{
		ID:        d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Status:    d.Status,
		TeamID:    d.TeamID,
	}
}

func circuitResponse(c domain.Circuit) dto.CircuitResponse {
	return dto.CircuitResponse{ID: c.ID, Name: c.Name, City: c.City, Country: c.Country, Active: c.Active}
}

func raceResponse(r domain.Race) dto.RaceResponse {
	return dto.RaceResponse{
		ID:      r.ID,
		Date:    r.Date,
		Laps:    r.Laps,
		Circuit: dto.RefSummary{ID: r.Circuit.ID, Name: r.Circuit.Name},
	}
}

func teamResponse(t domain.Team) dto.TeamResponse {
	return dto.TeamResponse{ID: t.ID, Name: t.Name, Country: t.Country, JoinDate: t.JoinDate}
}

func carResponse(c domain.Car) dto.CarResponse {
	return dto.CarResponse{
		ID:     c.ID,
		Model:  c.Model,
		Weight: c.Weight,
		Year:   c.Year,
		Team:   dto.RefSummary{ID: c.Team.ID, Name: c.Team.Name},
	}
}

func resultResponse(r domain.Result) dto.ResultResponse {
	return dto.ResultResponse{
		ID:       r.ID,
		Position: r.Position,
		Points:   r.Points,
		Status:   r.Status,
		RaceID:   r.RaceID,
		DriverID: r.DriverID,
		CarID:    r.CarID,
	}
}
