package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Audit outcome values
const (
	AuditStatusSuccess = "success"
	AuditStatusFailed  = "failed"
)

// Audited resource kinds on the admin surface
const (
	AuditResourceReward       = "reward"
	AuditResourceProgramRules = "program_rules"
	AuditResourceTransaction  = "transaction"
	AuditResourceCustomer     = "customer"
)

// AuditLog records one admin mutation: reward edits, program-rule changes,
// recorded transactions. Rows are written best effort after the handler
// runs; a failed write never fails the admin request.
type AuditLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID      `json:"tenant_id" gorm:"column:tenant_id;type:uuid;not null;index:idx_audit_tenant_date,sort:desc"`
	ActorID      uuid.UUID      `json:"actor_id" gorm:"column:actor_id;type:uuid;not null;index"`
	ActorEmail   string         `json:"actor_email" gorm:"column:actor_email;not null"`
	Action       string         `json:"action" gorm:"not null;index"` // created_reward, updated_program_rules, redeemed_reward, ...
	ResourceType string         `json:"resource_type" gorm:"column:resource_type;not null"`
	ResourceID   string         `json:"resource_id" gorm:"column:resource_id"` // empty for collection-level mutations
	Request      datatypes.JSON `json:"request,omitempty" gorm:"type:jsonb"`   // mutation payload as received
	Status       string         `json:"status" gorm:"not null"`
	ErrorMessage string         `json:"error_message,omitempty" gorm:"column:error_message"`
	IPAddress    string         `json:"ip_address" gorm:"column:ip_address"`
	UserAgent    string         `json:"user_agent" gorm:"column:user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_audit_tenant_date,sort:desc"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV7())
	}
	if a.Status == "" {
		a.Status = AuditStatusSuccess
	}
	return nil
}
