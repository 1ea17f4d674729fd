package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

const sessionKey = "auth_session"

// Request is the part of an inbound request the access checks look at.
type Request struct {
	Authorization string
	Param         func(name string) string
}

// Check either passes the request on, possibly with an enriched context, or rejects it.
type Check func(ctx context.Context, req Request) (context.Context, error)

// Chain runs checks in order and stops at the first failure.
func Chain(checks ...Check) Check {
	return func(ctx context.Context, req Request) (context.Context, error) {
		var err error
		for _, check := range checks {
			if ctx, err = check(ctx, req); err != nil {
				return ctx, err
			}
		}
		return ctx, nil
	}
}

// RequireAuthentication resolves the session and attaches it to the context.
func RequireAuthentication(resolver *SessionResolver) Check {
	return func(ctx context.Context, req Request) (context.Context, error) {
		session, err := resolver.Resolve(req.Authorization)
		if err != nil {
			return ctx, err
		}
		return WithSession(ctx, session), nil
	}
}

// Guard adapts a chain of checks to a fiber handler.
func Guard(checks ...Check) fiber.Handler {
	check := Chain(checks...)
	return func(c *fiber.Ctx) error {
		req := Request{
			Authorization: c.Get(fiber.HeaderAuthorization),
			Param:         func(name string) string { return c.Params(name) },
		}
		ctx, err := check(c.UserContext(), req)
		if err != nil {
			return err
		}
		c.SetUserContext(ctx)
		if session, ok := SessionFromContext(ctx); ok {
			c.Locals(sessionKey, session)
		}
		return c.Next()
	}
}

// SessionFromFiber retrieves the session stored by Guard.
func SessionFromFiber(c *fiber.Ctx) (*Session, bool) {
	session, ok := c.Locals(sessionKey).(*Session)
	return session, ok && session != nil
}
