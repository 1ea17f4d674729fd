package worker

import (
	"github.com/spec-kit/formula-api/internal/service"
)

// StartAuditWorker registers the auth audit handlers.
func StartAuditWorker(auditService *service.AuditService) {
	if auditService == nil {
		return
	}
	auditService.RegisterHandlers()
}
