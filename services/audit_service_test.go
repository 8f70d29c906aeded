package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuditRecordSkipsIncompleteActor(t *testing.T) {
	svc := NewAuditService()

	// Missing actor or tenant must be swallowed before any DB access
	assert.NoError(t, svc.Record(AuditEntry{
		TenantID: uuid.Must(uuid.NewV7()),
		Action:   "created_reward",
	}))
	assert.NoError(t, svc.Record(AuditEntry{
		ActorID: uuid.Must(uuid.NewV7()),
		Action:  "created_reward",
	}))
}

func TestGetAuditServiceSingleton(t *testing.T) {
	assert.Same(t, GetAuditService(), GetAuditService())
}
