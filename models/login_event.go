package models

import (
	"time"

	"github.com/google/uuid"
)

// LoginEvent is an audit row written on every successful login or signup.
// Inserted through raw SQL on the hot path; the model exists for migrations.
type LoginEvent struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `json:"userId" gorm:"column:user_id;type:uuid;not null;index"`
	LoggedInAt time.Time `json:"loggedInAt" gorm:"column:logged_in_at;autoCreateTime;index"`
	IPAddress  string    `json:"ipAddress" gorm:"column:ip_address;type:varchar(64)"`
	UserAgent  string    `json:"userAgent" gorm:"column:user_agent;type:text"`
	DeviceType string    `json:"deviceType" gorm:"column:device_type;type:varchar(32)"`
	Browser    string    `json:"browser" gorm:"type:varchar(64)"`
	OS         string    `json:"os" gorm:"type:varchar(64)"`
}

func (LoginEvent) TableName() string {
	return "login_events"
}
