package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Transaction is a purchase or redemption event. Rows are immutable once
// created; redemptions draw from the customer's accumulated balance, so
// points_redeemed may exceed points_earned on the same row.
type Transaction struct {
	ID             uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID       uuid.UUID `json:"tenantId" gorm:"column:tenant_id;type:uuid;not null;index"`
	UserID         uuid.UUID `json:"userId" gorm:"column:user_id;type:uuid;not null;index"`
	Amount         float64   `json:"amount" gorm:"type:numeric(12,2);not null"`
	PointsEarned   int       `json:"pointsEarned" gorm:"column:points_earned;not null;default:0"`
	PointsRedeemed int       `json:"pointsRedeemed" gorm:"column:points_redeemed;not null;default:0"`
	Location       *string   `json:"location,omitempty" gorm:"type:varchar(255)"`
	PaymentMethod  *string   `json:"paymentMethod,omitempty" gorm:"column:payment_method;type:varchar(100)"`
	Timestamp      time.Time `json:"timestamp" gorm:"not null;index"`
}

func (Transaction) TableName() string {
	return "transactions"
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.Must(uuid.NewV7())
	}
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now().UTC()
	}
	return nil
}

// CreateTransactionRequest records a purchase for a customer. Points are
// computed server-side from the tenant's program rules.
type CreateTransactionRequest struct {
	UserID        string  `json:"user_id" binding:"required,uuid"`
	TenantID      string  `json:"tenant_id" binding:"required,uuid"`
	Amount        float64 `json:"amount" binding:"required,gte=0"`
	Location      *string `json:"location"`
	PaymentMethod *string `json:"payment_method"`
}
