package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment rows are append-only settled ledger entries.
type Payment struct {
	BaseModel
	GymID         string          `gorm:"type:uuid;not null;index" json:"gym_id"`
	MembershipID  string          `gorm:"type:uuid;not null;index" json:"membership_id"`
	Amount        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	PaymentMethod PaymentMethod   `gorm:"size:10;not null" json:"payment_method"`
	Status        PaymentStatus   `gorm:"size:10;not null;index" json:"status"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
}
