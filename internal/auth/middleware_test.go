package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/formula-api/internal/domain"
	apperrors "github.com/spec-kit/formula-api/pkg/util"
)

const driverInfoMessage = "you are not allowed to view this driver's information"

func params(values map[string]string) func(string) string {
	return func(name string) string { return values[name] }
}

func userCtx(id int64, roles ...domain.Role) context.Context {
	return WithSession(context.Background(), &Session{DriverID: id, Roles: domain.NewRoleSet(roles...)})
}

func TestChainStopsAtFirstFailure(t *testing.T) {
	var calls []string
	pass := func(name string) Check {
		return func(ctx context.Context, _ Request) (context.Context, error) {
			calls = append(calls, name)
			return ctx, nil
		}
	}
	fail := func(ctx context.Context, _ Request) (context.Context, error) {
		calls = append(calls, "fail")
		return ctx, apperrors.NewForbidden(ForbiddenMessage)
	}

	_, err := Chain(pass("first"), fail, pass("never"))(context.Background(), Request{})
	require.Error(t, err)
	assert.Equal(t, []string{"first", "fail"}, calls)
}

func TestRequireRole(t *testing.T) {
	check := RequireRole(domain.RoleAdmin)

	_, err := check(userCtx(1, domain.RoleUser), Request{})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeForbidden))
	assert.Equal(t, ForbiddenMessage, apperrors.ToDomainError(err).Message)

	_, err = check(userCtx(2, domain.RoleUser, domain.RoleAdmin), Request{})
	assert.NoError(t, err)

	_, err = check(context.Background(), Request{})
	assert.True(t, apperrors.Is(err, apperrors.CodeUnauthorized))
}

func TestRequireOwnerOrRole(t *testing.T) {
	check := RequireOwnerOrRole(domain.RoleAdmin, OwnerFromParam("id"), driverInfoMessage)

	tests := []struct {
		name     string
		ctx      context.Context
		id       string
		wantCode string
	}{
		{"self alias", userCtx(1, domain.RoleUser), SelfAlias, ""},
		{"own id", userCtx(1, domain.RoleUser), "1", ""},
		{"someone else", userCtx(1, domain.RoleUser), "2", apperrors.CodeForbidden},
		{"admin on someone else", userCtx(2, domain.RoleUser, domain.RoleAdmin), "1", ""},
		{"invalid id", userCtx(1, domain.RoleUser), "abc", apperrors.CodeValidationFailed},
		{"negative id", userCtx(1, domain.RoleUser), "-4", apperrors.CodeValidationFailed},
		{"no session", context.Background(), "1", apperrors.CodeUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := check(tt.ctx, Request{Param: params(map[string]string{"id": tt.id})})
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.ToDomainError(err).Code)
			if tt.wantCode == apperrors.CodeForbidden {
				assert.Equal(t, driverInfoMessage, apperrors.ToDomainError(err).Message)
			}
		})
	}
}

func TestRequireOwner(t *testing.T) {
	check := RequireOwner(OwnerFromParam("id"), "you can only change your own password")

	_, err := check(userCtx(7, domain.RoleUser), Request{Param: params(map[string]string{"id": "me"})})
	assert.NoError(t, err)

	_, err = check(userCtx(7, domain.RoleUser), Request{Param: params(map[string]string{"id": "7"})})
	assert.NoError(t, err)

	_, err = check(userCtx(1, domain.RoleUser, domain.RoleAdmin), Request{Param: params(map[string]string{"id": "7"})})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeForbidden))

	_, err = check(userCtx(7, domain.RoleUser), Request{Param: params(map[string]string{"id": "abc"})})
	assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
}

func TestAuthDelay(t *testing.T) {
	t.Run("zero delay passes immediately", func(t *testing.T) {
		start := time.Now()
		_, err := AuthDelay(RandomDelay(0))(context.Background(), Request{})
		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("waits the chosen delay", func(t *testing.T) {
		start := time.Now()
		_, err := AuthDelay(func() time.Duration { return 30 * time.Millisecond })(context.Background(), Request{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("stops when the request is cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := AuthDelay(func() time.Duration { return time.Minute })(ctx, Request{})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("random delay stays within bounds", func(t *testing.T) {
		delay := RandomDelay(10 * time.Millisecond)
		for range 100 {
			d := delay()
			assert.GreaterOrEqual(t, d, time.Duration(0))
			assert.LessOrEqual(t, d, 10*time.Millisecond)
		}
	})
}

func newGuardedApp(resolver *SessionResolver) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code, "message": domainErr.Message})
		},
	})

	drivers := app.Group("/drivers", Guard(RequireAuthentication(resolver)))
	drivers.Get("/", Guard(RequireRole(domain.RoleAdmin)), func(c *fiber.Ctx) error {
		return c.SendString("all drivers")
	})
	drivers.Get("/:id", Guard(RequireOwnerOrRole(domain.RoleAdmin, OwnerFromParam("id"), driverInfoMessage)), func(c *fiber.Ctx) error {
		session, ok := SessionFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}
		return c.JSON(fiber.Map{"driver": session.DriverID})
	})
	return app
}

func TestGuardPipeline(t *testing.T) {
	tm := NewTokenManager(testJWTConfig(3600))
	app := newGuardedApp(NewSessionResolver(tm))

	userToken, err := tm.GenerateToken(&domain.Driver{ID: 1, Roles: domain.NewRoleSet(domain.RoleUser)})
	require.NoError(t, err)

	do := func(path, header string) (*http.Response, map[string]any) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		var body map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return resp, body
	}

	resp, _ := do("/drivers/", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := do("/drivers/", "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, ForbiddenMessage, body["message"])

	resp, body = do("/drivers/me", "Bearer "+userToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["driver"])

	resp, body = do("/drivers/2", "Bearer "+userToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, driverInfoMessage, body["message"])
}
