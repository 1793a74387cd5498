package models

import "time"

const (
	InvoiceStatusUnpaid = "Unpaid"
	InvoiceStatusPaid   = "Paid"
)

// Invoice bills one Job. PublicToken is generated once at creation and
// is the only key the unauthenticated payment page accepts.
type Invoice struct {
	ID            uint    `gorm:"primaryKey"`
	CompanyID     uint    `gorm:"index;not null"`
	JobID         uint    `gorm:"index;not null"`
	Amount        float64 `gorm:"not null"`
	Status        string  `gorm:"not null;default:Unpaid"`
	DueDate       *string
	CreatedAt     time.Time `gorm:"not null"`
	PaidAt        *time.Time
	PublicToken   string `gorm:"uniqueIndex;not null"`
	CustomerEmail *string
}
