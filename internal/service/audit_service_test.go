package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/formula-api/internal/events"
	"github.com/spec-kit/formula-api/internal/observability"
)

func TestAuditService_RecordsAuthEvents(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	metrics := observability.NewMetrics("formula_api")
	dispatcher := events.NewInMemoryDispatcher()
	NewAuditService(dispatcher, zap.New(core), metrics).RegisterHandlers()

	passwords, tokens := newTestPolicies()
	service := NewAuthService(AuthDependencies{
		DriverRepo: newFakeDriverRepo(),
		Passwords:  passwords,
		Tokens:     tokens,
		Dispatcher: dispatcher,
	})
	ctx := context.Background()

	_, err := service.Register(ctx, newDriverProfile, "new.driver@example.com", strongPassword)
	require.NoError(t, err)
	_, err = service.Login(ctx, "new.driver@example.com", "Wrong-Password-Again-42")
	require.Error(t, err)

	assert.Equal(t, 1, logs.FilterMessage("CredentialRegistered").Len())
	failed := logs.FilterMessage("LoginFailed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, zapcore.WarnLevel, failed[0].Level)
	for _, entry := range logs.All() {
		assert.NotContains(t, fmt.Sprint(entry.ContextMap()), "Wrong-Password-Again-42")
	}

	count, err := testutil.GatherAndCount(metrics.Registry(), "formula_api_auth_events_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAuditService_NilDispatcher(t *testing.T) {
	assert.NotPanics(t, func() {
		NewAuditService(nil, zap.NewNop(), nil).RegisterHandlers()
	})
}
