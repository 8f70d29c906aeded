package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Default program rules, created on first read for a tenant.
const (
	DefaultProgramName        = "Default Loyalty Program"
	DefaultPointsPerDollar    = 2
	DefaultBirthdayBonus      = 250
	DefaultCheckInBonusPoints = 50
	DefaultCheckInRadius      = 150
)

// Program holds the point-earning rules for one tenant.
type Program struct {
	ID                  uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID            uuid.UUID `json:"tenantId" gorm:"column:tenant_id;type:uuid;uniqueIndex;not null"`
	Name                string    `json:"name" gorm:"type:varchar(255);not null"`
	PointsPerDollar     float64   `json:"pointsPerDollar" gorm:"column:points_per_dollar;not null"`
	BirthdayBonus       int       `json:"birthdayBonus" gorm:"column:birthday_bonus;not null"`
	CheckInBonusPoints  int       `json:"checkInBonusPoints" gorm:"column:check_in_bonus_points;not null"`
	CheckInRadiusMeters int       `json:"checkInRadiusMeters" gorm:"column:check_in_radius_meters;not null"`
	CreatedAt           time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt           time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (Program) TableName() string {
	return "programs"
}

func (p *Program) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// DefaultProgram returns the rules a tenant starts with.
func DefaultProgram(tenantID uuid.UUID) Program {
	return Program{
		TenantID:            tenantID,
		Name:                DefaultProgramName,
		PointsPerDollar:     DefaultPointsPerDollar,
		BirthdayBonus:       DefaultBirthdayBonus,
		CheckInBonusPoints:  DefaultCheckInBonusPoints,
		CheckInRadiusMeters: DefaultCheckInRadius,
	}
}

// ProgramRulesRequest is the upsert payload for program rules.
type ProgramRulesRequest struct {
	PointsPerDollar     float64 `json:"points_per_dollar" binding:"min=0"`
	BirthdayBonus       int     `json:"birthday_bonus" binding:"min=0"`
	CheckInBonusPoints  int     `json:"check_in_bonus_points" binding:"min=0"`
	CheckInRadiusMeters int     `json:"check_in_radius_meters" binding:"min=0"`
	TenantID            string  `json:"tenant_id" binding:"required,uuid"`
}
