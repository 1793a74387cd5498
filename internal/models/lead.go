package models

import "time"

const (
	LeadStatusNew       = "New"
	LeadStatusContacted = "Contacted"
	LeadStatusScheduled = "Scheduled"
	LeadStatusWon       = "Won"
	LeadStatusLost      = "Lost"
)

// Lead is a prospective customer inquiry prior to scheduling.
type Lead struct {
	ID          uint      `gorm:"primaryKey"`
	CompanyID   uint      `gorm:"index;not null"`
	Name        string    `gorm:"not null"`
	Phone       string    `gorm:"not null"`
	Status      string    `gorm:"not null;default:New"`
	ServiceType *string
	Source      *string
	Address     *string
	Notes       *string
	CreatedAt   time.Time `gorm:"not null"`
}

func ValidLeadStatus(status string) bool {
	switch status {
	case LeadStatusNew, LeadStatusContacted, LeadStatusScheduled, LeadStatusWon, LeadStatusLost:
		return true
	}
	return false
}
