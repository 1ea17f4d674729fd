package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/formula-api/internal/auth"
	"github.com/spec-kit/formula-api/internal/config"
	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/events"
	apperrors "github.com/spec-kit/formula-api/pkg/util"
)

type authFixture struct {
	service *AuthService
	drivers *fakeDriverRepo
	tokens  *auth.TokenManager
	events  []events.EventType
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	passwords, tokens := newTestPolicies()
	f := &authFixture{drivers: newFakeDriverRepo(), tokens: tokens}

	dispatcher := events.NewInMemoryDispatcher()
	for _, eventType := range []events.EventType{
		events.EventCredentialRegistered,
		events.EventLoginSucceeded,
		events.EventLoginFailed,
		events.EventPasswordChanged,
	} {
		dispatcher.Subscribe(eventType, func(_ context.Context, e events.Event) error {
			f.events = append(f.events, e.Type)
			return nil
		})
	}

	f.service = NewAuthService(AuthDependencies{
		DriverRepo: f.drivers,
		Passwords:  passwords,
		Tokens:     tokens,
		Dispatcher: dispatcher,
	})
	return f
}

var newDriverProfile = domain.DriverProfile{FirstName: "New", LastName: "Driver"}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	token, err := f.service.Register(ctx, newDriverProfile, "new.driver@example.com", strongPassword)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	created, err := f.drivers.GetByEmail(ctx, "new.driver@example.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSet{domain.RoleUser}, created.Roles)
	assert.NotEqual(t, strongPassword, created.PasswordHash)

	loginToken, err := f.service.Login(ctx, "new.driver@example.com", strongPassword)
	require.NoError(t, err)

	session, err := f.tokens.VerifyToken(loginToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, session.DriverID)
	assert.Equal(t, domain.RoleSet{domain.RoleUser}, session.Roles)

	assert.Equal(t, []events.EventType{events.EventCredentialRegistered, events.EventLoginSucceeded}, f.events)
}

func TestAuthService_LoginFailuresLookIdentical(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, newDriverProfile, "new.driver@example.com", strongPassword)
	require.NoError(t, err)

	_, unknownErr := f.service.Login(ctx, "nobody@example.com", strongPassword)
	_, wrongErr := f.service.Login(ctx, "new.driver@example.com", "Wrong-Password-Entirely-42")

	for _, err := range []error{unknownErr, wrongErr} {
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeUnauthorized))
	}
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	assert.Equal(t, LoginMismatchMessage, unknownErr.Error())
	assert.Equal(t, []events.EventType{
		events.EventCredentialRegistered,
		events.EventLoginFailed,
		events.EventLoginFailed,
	}, f.events)
}

func TestAuthService_LoginIsCaseSensitiveOnEmail(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, newDriverProfile, "new.driver@example.com", strongPassword)
	require.NoError(t, err)

	_, err = f.service.Login(ctx, "New.Driver@example.com", strongPassword)
	assert.True(t, apperrors.Is(err, apperrors.CodeUnauthorized))
}

func TestAuthService_RegisterWeakPasswordWritesNothing(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.service.Register(context.Background(), newDriverProfile, "new.driver@example.com", weakPassword)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
	assert.Zero(t, f.drivers.writes)
	assert.Empty(t, f.events)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, newDriverProfile, "new.driver@example.com", strongPassword)
	require.NoError(t, err)

	_, err = f.service.Register(ctx, newDriverProfile, "new.driver@example.com", strongPassword)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))
	assert.Equal(t, "a credential with this email already exists", err.Error())
}

func TestAuthService_StoreFailureIsInternal(t *testing.T) {
	f := newAuthFixture(t)
	f.drivers.err = errors.New("connection reset")

	_, err := f.service.Login(context.Background(), "new.driver@example.com", strongPassword)
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, apperrors.CodeInternal, domainErr.Code)
	assert.NotContains(t, domainErr.Message, "connection reset")
}

func TestAuthService_ChangePassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	_, err := f.service.Register(ctx, newDriverProfile, "new.driver@example.com", strongPassword)
	require.NoError(t, err)
	driver, err := f.drivers.GetByEmail(ctx, "new.driver@example.com")
	require.NoError(t, err)

	err = f.service.ChangePassword(ctx, driver.ID, "not-my-password", "Spa-Eau-Rouge-Raidillon-2024")
	assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))

	err = f.service.ChangePassword(ctx, driver.ID, strongPassword, weakPassword)
	assert.True(t, apperrors.Is(err, apperrors.CodeValidationFailed))

	require.NoError(t, f.service.ChangePassword(ctx, driver.ID, strongPassword, "Spa-Eau-Rouge-Raidillon-2024"))

	_, err = f.service.Login(ctx, "new.driver@example.com", strongPassword)
	assert.True(t, apperrors.Is(err, apperrors.CodeUnauthorized))
	_, err = f.service.Login(ctx, "new.driver@example.com", "Spa-Eau-Rouge-Raidillon-2024")
	assert.NoError(t, err)

	err = f.service.ChangePassword(ctx, 999, strongPassword, "Spa-Eau-Rouge-Raidillon-2024")
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}

func TestAuthService_ProvisionAdmin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	cfg := config.BootstrapAdminConfig{
		Email:     "race.control@example.com",
		Password:  strongPassword,
		FirstName: "Race",
		LastName:  "Control",
	}

	require.NoError(t, f.service.ProvisionAdmin(ctx, config.BootstrapAdminConfig{}))
	assert.Zero(t, f.drivers.writes)

	require.NoError(t, f.service.ProvisionAdmin(ctx, cfg))
	require.NoError(t, f.service.ProvisionAdmin(ctx, cfg))
	assert.Equal(t, 1, f.drivers.writes)

	token, err := f.service.Login(ctx, cfg.Email, cfg.Password)
	require.NoError(t, err)
	session, err := f.tokens.VerifyToken(token)
	require.NoError(t, err)
	assert.True(t, session.HasRole(domain.RoleAdmin))
	assert.True(t, session.HasRole(domain.RoleUser))
}
