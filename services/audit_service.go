package services

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nyashaushe/loyaltAI/config"
	"github.com/nyashaushe/loyaltAI/models"
	"gorm.io/datatypes"
)

// AuditService persists admin-action audit rows.
type AuditService struct{}

// NewAuditService creates a new audit service
func NewAuditService() *AuditService {
	return &AuditService{}
}

// AuditEntry carries one admin mutation to record.
type AuditEntry struct {
	TenantID     uuid.UUID
	ActorID      uuid.UUID
	ActorEmail   string
	Action       string // created_reward, updated_program_rules, ...
	ResourceType string
	ResourceID   string
	Request      []byte // raw mutation payload; stored only when valid JSON
	Status       string
	ErrorMessage string
	Context      *gin.Context // for IP and User-Agent extraction
}

// Record writes the audit row. Best effort throughout: incomplete actor
// info or a failed insert is logged and swallowed, never bubbled up to the
// admin request.
func (s *AuditService) Record(entry AuditEntry) error {
	if entry.ActorID == uuid.Nil || entry.TenantID == uuid.Nil {
		log.Printf("[audit] skipped %s: incomplete actor info", entry.Action)
		return nil
	}

	row := models.AuditLog{
		TenantID:     entry.TenantID,
		ActorID:      entry.ActorID,
		ActorEmail:   entry.ActorEmail,
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		Status:       entry.Status,
		ErrorMessage: entry.ErrorMessage,
	}
	if json.Valid(entry.Request) {
		row.Request = datatypes.JSON(entry.Request)
	}
	if entry.Context != nil {
		row.IPAddress = entry.Context.ClientIP()
		row.UserAgent = entry.Context.GetHeader("User-Agent")
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.LoyaltyGorm.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("[audit] failed to record %s: %v", entry.Action, err)
		return nil
	}

	log.Printf("[audit] %s %s/%s by %s", entry.Action, entry.ResourceType, entry.ResourceID, entry.ActorEmail)
	return nil
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var auditService *AuditService

// GetAuditService returns the global audit service instance
func GetAuditService() *AuditService {
	if auditService == nil {
		auditService = NewAuditService()
	}
	return auditService
}
