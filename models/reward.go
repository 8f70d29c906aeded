package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Reward struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID  `json:"tenantId" gorm:"column:tenant_id;type:uuid;not null;index"`
	Name        string     `json:"name" gorm:"type:varchar(255);not null"`
	Description string     `json:"description" gorm:"type:text;not null"`
	PointsCost  int        `json:"pointsCost" gorm:"column:points_cost;not null"`
	Category    string     `json:"category" gorm:"type:varchar(100);not null"`
	IsActive    bool       `json:"isActive" gorm:"column:is_active;default:true"`
	UsageLimit  *int       `json:"usageLimit,omitempty" gorm:"column:usage_limit"`
	UsageCount  int        `json:"usageCount" gorm:"column:usage_count;not null;default:0"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty" gorm:"column:expiry_date"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Reward) TableName() string {
	return "rewards"
}

func (r *Reward) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// RewardRequest is the create payload. UsageCount always starts at zero
// and is only ever moved by redemptions.
type RewardRequest struct {
	Name        string  `json:"name" binding:"required,min=1"`
	Description string  `json:"description" binding:"required,min=1"`
	PointsCost  int     `json:"points_cost" binding:"required,min=1"`
	Category    string  `json:"category" binding:"required,min=1"`
	IsActive    *bool   `json:"is_active"`
	UsageLimit  *int    `json:"usage_limit"`
	ExpiryDate  *string `json:"expiry_date"`
	TenantID    string  `json:"tenant_id" binding:"required,uuid"`
}

// UpdateRewardRequest is the update payload (same fields plus the id).
type UpdateRewardRequest struct {
	ID string `json:"id" binding:"required,uuid"`
	RewardRequest
}

// RedeemRewardRequest redeems a reward for a customer.
type RedeemRewardRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}
