package auth

import (
	"context"
	"strconv"

	"github.com/spec-kit/formula-api/internal/domain"
	apperrors "github.com/spec-kit/formula-api/pkg/util"
)

// SelfAlias lets a caller address their own driver record without knowing its id.
const SelfAlias = "me"

// ForbiddenMessage is returned when a session lacks a required role.
const ForbiddenMessage = "you are not allowed to view this part of the application"

// OwnerResolver extracts the owner id of the addressed resource.
type OwnerResolver func(ctx context.Context, req Request) (int64, error)

// RequireRole rejects sessions that do not hold role. Must run after RequireAuthentication.
func RequireRole(role domain.Role) Check {
	return func(ctx context.Context, _ Request) (context.Context, error) {
		session, ok := SessionFromContext(ctx)
		if !ok {
			return ctx, apperrors.NewUnauthorized("you need to be signed in")
		}
		if !session.HasRole(role) {
			return ctx, apperrors.NewForbidden(ForbiddenMessage)
		}
		return ctx, nil
	}
}

// RequireOwnerOrRole allows the owner of the resource or any session holding role.
func RequireOwnerOrRole(role domain.Role, owner OwnerResolver, message string) Check {
	return func(ctx context.Context, req Request) (context.Context, error) {
		session, ok := SessionFromContext(ctx)
		if !ok {
			return ctx, apperrors.NewUnauthorized("you need to be signed in")
		}
		ownerID, err := owner(ctx, req)
		if err != nil {
			return ctx, err
		}
		if session.DriverID != ownerID && !session.HasRole(role) {
			return ctx, apperrors.NewForbidden(message)
		}
		return ctx, nil
	}
}

// RequireOwner allows only the owner of the resource, whatever roles the session holds.
func RequireOwner(owner OwnerResolver, message string) Check {
	return func(ctx context.Context, req Request) (context.Context, error) {
		session, ok := SessionFromContext(ctx)
		if !ok {
			return ctx, apperrors.NewUnauthorized("you need to be signed in")
		}
		ownerID, err := owner(ctx, req)
		if err != nil {
			return ctx, err
		}
		if session.DriverID != ownerID {
			return ctx, apperrors.NewForbidden(message)
		}
		return ctx, nil
	}
}

// OwnerFromParam reads the owner id from a path parameter, honoring SelfAlias.
func OwnerFromParam(name string) OwnerResolver {
	return func(ctx context.Context, req Request) (int64, error) {
		return ResolveDriverID(ctx, req.Param(name))
	}
}

// ResolveDriverID parses a driver id path value; SelfAlias maps to the session's driver.
func ResolveDriverID(ctx context.Context, raw string) (int64, error) {
	if raw == SelfAlias {
		session, ok := SessionFromContext(ctx)
		if !ok {
			return 0, apperrors.NewUnauthorized("you need to be signed in")
		}
		return session.DriverID, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{"id": raw})
	}
	return id, nil
}
