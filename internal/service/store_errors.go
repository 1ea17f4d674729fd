package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/formula-api/internal/repository"
	apperrors "github.com/spec-kit/formula-api/pkg/util"
)

var uniqueMessages = map[string]string{
	repository.CircuitNameConstraint: "A circuit with this name already exists",
	repository.TeamNameConstraint:    "A team with this name already exists",
	repository.DriverEmailConstraint: "a credential with this email already exists",
}

// Referenced parent missing on insert or update.
var missingParentMessages = map[string]string{
	"fk_race_circuit":  "This circuit does not exist",
	"fk_result_race":   "This race does not exist",
	"fk_result_driver": "This driver does not exist",
	"fk_result_car":    "This car does not exist",
	"fk_car_team":      "This team does not exist",
	"fk_driver_team":   "This team does not exist",
}

// Parent still referenced on delete.
var linkedChildMessages = map[string]string{
	"fk_race_circuit":  "This circuit does not exist or is still linked to races",
	"fk_result_race":   "This race does not exist or is still linked to results",
	"fk_result_driver": "This driver does not exist or is still linked to results",
	"fk_result_car":    "This car does not exist or is still linked to results",
	"fk_car_team":      "This team does not exist or is still linked to cars",
	"fk_driver_team":   "This team does not exist or is still linked to drivers",
}

func notFoundMessage(entity string) string {
	return "No " + entity + " with this id exists"
}

// translateWriteError maps store errors from reads, inserts and updates onto the error taxonomy.
func translateWriteError(err error, entity string) error {
	if err == nil {
		return nil
	}
	var domainErr *apperrors.DomainError
	switch {
	case errors.As(err, &domainErr):
		return err
	case errors.Is(err, pgx.ErrNoRows):
		return apperrors.NewNotFound(notFoundMessage(entity))
	case errors.Is(err, repository.ErrUniqueViolation):
		msg, ok := uniqueMessages[repository.ConstraintName(err)]
		if !ok {
			msg = "This item already exists"
		}
		return apperrors.NewValidationError(msg, nil)
	case errors.Is(err, repository.ErrForeignKeyViolation):
		msg, ok := missingParentMessages[repository.ConstraintName(err)]
		if !ok {
			msg = "A referenced item does not exist"
		}
		return apperrors.NewNotFound(msg)
	default:
		return apperrors.NewInternalError(err)
	}
}

// translateDeleteError maps store errors from deletes; a remaining reference becomes a conflict.
func translateDeleteError(err error, entity string) error {
	if errors.Is(err, repository.ErrForeignKeyViolation) {
		msg, ok := linkedChildMessages[repository.ConstraintName(err)]
		if !ok {
			msg = "This " + entity + " is still referenced"
		}
		return apperrors.NewConflict(msg, nil)
	}
	return translateWriteError(err, entity)
}

type existenceCheck func(ctx context.Context, id int64) (bool, error)

func ensureExists(ctx context.Context, check existenceCheck, id int64, entity string) error {
	found, err := check(ctx, id)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if !found {
		return apperrors.NewNotFound(notFoundMessage(entity))
	}
	return nil
}
