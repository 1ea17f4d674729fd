package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/formula-api/internal/events"
	"github.com/spec-kit/formula-api/internal/observability"
)

// AuditService records auth events in the log and in metrics.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		metrics:    metrics,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventCredentialRegistered, a.handleCredentialRegistered)
	a.dispatcher.Subscribe(events.EventLoginSucceeded, a.handleLoginSucceeded)
	a.dispatcher.Subscribe(events.EventLoginFailed, a.handleLoginFailed)
	a.dispatcher.Subscribe(events.EventPasswordChanged, a.handlePasswordChanged)
}

func (a *AuditService) handleCredentialRegistered(_ context.Context, event events.Event) error {
	a.logger.Info("CredentialRegistered", a.fields(event)...)
	a.metrics.RecordAuthEvent(string(event.Type))
	return nil
}

func (a *AuditService) handleLoginSucceeded(_ context.Context, event events.Event) error {
	a.logger.Info("LoginSucceeded", a.fields(event)...)
	a.metrics.RecordAuthEvent(string(event.Type))
	return nil
}

func (a *AuditService) handleLoginFailed(_ context.Context, event events.Event) error {
	a.logger.Warn("LoginFailed", a.fields(event)...)
	a.metrics.RecordAuthEvent(string(event.Type))
	return nil
}

func (a *AuditService) handlePasswordChanged(_ context.Context, event events.Event) error {
	a.logger.Info("PasswordChanged", a.fields(event)...)
	a.metrics.RecordAuthEvent(string(event.Type))
	return nil
}

func (a *AuditService) fields(event events.Event) []zap.Field {
	fields := []zap.Field{
		zap.String("event_id", event.ID),
		zap.Time("timestamp", event.Timestamp),
		zap.Any("payload", event.Payload),
	}
	if event.DriverID != nil {
		fields = append(fields, zap.Int64("driver_id", *event.DriverID))
	}
	return fields
}
