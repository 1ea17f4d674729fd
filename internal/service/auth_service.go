package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/formula-api/internal/auth"
	"github.com/spec-kit/formula-api/internal/config"
	"github.com/spec-kit/formula-api/internal/domain"
	"github.com/spec-kit/formula-api/internal/events"
	"github.com/spec-kit/formula-api/internal/repository"
	apperrors "github.com/spec-kit/formula-api/pkg/util"
)

// LoginMismatchMessage is returned for unknown emails and wrong passwords alike.
const LoginMismatchMessage = "the given email and password do not match"

// AuthService coordinates registration and login flows.
type AuthService struct {
	drivers    repository.DriverRepository
	passwords  *auth.PasswordPolicy
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	DriverRepo repository.DriverRepository
	Passwords  *auth.PasswordPolicy
	Tokens     *auth.TokenManager
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		drivers:    deps.DriverRepo,
		passwords:  deps.Passwords,
		tokens:     deps.Tokens,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// Login verifies the credential and issues a token carrying its current roles.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	driver, err := s.drivers.GetByEmail(ctx, email)
	if errors.Is(err, pgx.ErrNoRows) {
		s.passwords.VerifyDecoy(password)
		s.publish(ctx, events.EventLoginFailed, nil, events.LoginFailedPayload{Email: email, Reason: "unknown email"})
		return "", apperrors.NewUnauthorized(LoginMismatchMessage)
	}
	if err != nil {
		return "", s.internal("lookup credential", err)
	}

	ok, err := s.passwords.Verify(password, driver.PasswordHash)
	if err != nil {
		return "", s.internal("verify password", err)
	}
	if !ok {
		s.publish(ctx, events.EventLoginFailed, &driver.ID, events.LoginFailedPayload{Email: email, Reason: "wrong password"})
		return "", apperrors.NewUnauthorized(LoginMismatchMessage)
	}

	token, err := s.tokens.GenerateToken(driver)
	if err != nil {
		return "", s.internal("issue token", err)
	}
	s.publish(ctx, events.EventLoginSucceeded, &driver.ID, events.CredentialPayload{Email: driver.Email, Roles: driver.Roles.Strings()})
	return token, nil
}

// Register creates a self-service credential with the user role and returns a token for it.
func (s *AuthService) Register(ctx context.Context, profile domain.DriverProfile, email, password string) (string, error) {
	if err := s.passwords.ValidateStrength(password, profile.FirstName, profile.LastName, email); err != nil {
		return "", err
	}

	driver, err := s.createCredential(ctx, profile, email, password, domain.NewRoleSet(domain.RoleUser))
	if err != nil {
		return "", err
	}

	token, err := s.tokens.GenerateToken(driver)
	if err != nil {
		return "", s.internal("issue token", err)
	}
	s.publish(ctx, events.EventCredentialRegistered, &driver.ID, events.CredentialPayload{Email: driver.Email, Roles: driver.Roles.Strings()})
	return token, nil
}

// ChangePassword replaces the password after checking the current one and the new one's strength.
func (s *AuthService) ChangePassword(ctx context.Context, driverID int64, current, next string) error {
	driver, err := s.drivers.GetByID(ctx, driverID)
	if err != nil {
		return translateWriteError(err, "driver")
	}

	ok, err := s.passwords.Verify(current, driver.PasswordHash)
	if err != nil {
		return s.internal("verify password", err)
	}
	if !ok {
		return apperrors.NewValidationError("the current password is incorrect", nil)
	}
	if err := s.passwords.ValidateStrength(next, driver.FirstName, driver.LastName, driver.Email); err != nil {
		return err
	}

	hash, err := s.passwords.Hash(next)
	if err != nil {
		return s.internal("hash password", err)
	}
	if err := s.drivers.UpdatePassword(ctx, driverID, hash); err != nil {
		return translateWriteError(err, "driver")
	}
	s.publish(ctx, events.EventPasswordChanged, &driver.ID, events.CredentialPayload{Email: driver.Email})
	return nil
}

// ProvisionAdmin seeds the configured administrator unless the email is already taken.
func (s *AuthService) ProvisionAdmin(ctx context.Context, cfg config.BootstrapAdminConfig) error {
	if cfg.Email == "" {
		return nil
	}

	_, err := s.drivers.GetByEmail(ctx, cfg.Email)
	if err == nil {
		s.logger.Info("bootstrap admin already present", zap.String("email", cfg.Email))
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return s.internal("lookup bootstrap admin", err)
	}

	if err := s.passwords.ValidateStrength(cfg.Password, cfg.FirstName, cfg.LastName, cfg.Email); err != nil {
		return err
	}
	profile := domain.DriverProfile{FirstName: cfg.FirstName, LastName: cfg.LastName}
	driver, err := s.createCredential(ctx, profile, cfg.Email, cfg.Password, domain.NewRoleSet(domain.RoleUser, domain.RoleAdmin))
	if err != nil {
		return err
	}

	s.logger.Info("bootstrap admin provisioned", zap.Int64("driver_id", driver.ID))
	s.publish(ctx, events.EventCredentialRegistered, &driver.ID, events.CredentialPayload{Email: driver.Email, Roles: driver.Roles.Strings()})
	return nil
}

func (s *AuthService) createCredential(ctx context.Context, profile domain.DriverProfile, email, password string, roles domain.RoleSet) (*domain.Driver, error) {
	hash, err := s.passwords.Hash(password)
	if err != nil {
		return nil, s.internal("hash password", err)
	}

	driver := &domain.Driver{
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		Status:       profile.Status,
		TeamID:       profile.TeamID,
		Email:        email,
		PasswordHash: hash,
		Roles:        roles,
	}
	if err := s.drivers.Create(ctx, driver); err != nil {
		return nil, translateWriteError(err, "driver")
	}
	return driver, nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, driverID *int64, payload any) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		DriverID:  driverID,
		Timestamp: s.now().UTC(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("audit event not delivered", zap.String("type", string(eventType)), zap.Error(err))
	}
}

func (s *AuthService) internal(step string, err error) error {
	s.logger.Error("auth failure", zap.String("step", step), zap.Error(err))
	return apperrors.NewInternalError(err)
}
