package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID `json:"tenantId" gorm:"column:tenant_id;type:uuid;not null;index"`
	Email        string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null"`
	Role         string    `json:"role" gorm:"type:varchar(50);default:'customer';index"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;type:text;not null"`
	Status       string    `json:"status" gorm:"type:varchar(50);default:'active';index"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	// Relationships
	Transactions []Transaction `json:"transactions,omitempty" gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// UserResponse is the public-facing user data
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	TenantID  uuid.UUID `json:"tenant_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		TenantID:  u.TenantID,
		CreatedAt: u.CreatedAt,
	}
}

// CustomerListRow is a customer row for the admin dashboard list,
// with spend/points/visit roll-ups joined in.
type CustomerListRow struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Status     string    `json:"status"`
	TotalSpent float64   `json:"total_spent"`
	Points     int       `json:"points"`
	VisitCount int       `json:"visit_count"`
	JoinDate   time.Time `json:"join_date"`
}

// CustomerStats represents customer dashboard statistics
type CustomerStats struct {
	TotalCustomers               int     `json:"total_customers"`                 // Total active customers
	NewCustomersThisMonth        int     `json:"new_customers_this_month"`        // New customers added this month
	NewCustomersGrowthPercentage float64 `json:"new_customers_growth_percentage"` // % growth from last month
	ActiveCustomers              int     `json:"active_customers"`                // Customers with a transaction in last 90 days
	ActiveCustomersPercentage    float64 `json:"active_customers_percentage"`     // % of total customers
	AvgTransactionValue          float64 `json:"avg_transaction_value"`           // Average amount per transaction
}
