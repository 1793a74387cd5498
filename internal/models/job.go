package models

import "time"

const (
	JobStatusScheduled  = "Scheduled"
	JobStatusInProgress = "In Progress"
	JobStatusCompleted  = "Completed"
	JobStatusCanceled   = "Canceled"
)

// Job is scheduled work for a customer, optionally converted from a Lead.
// LeadID is a back-reference, not ownership; the referenced lead belongs
// to the same company.
type Job struct {
	ID            uint      `gorm:"primaryKey"`
	CompanyID     uint      `gorm:"index;not null"`
	LeadID        *uint     `gorm:"index"`
	CustomerName  string    `gorm:"not null"`
	Status        string    `gorm:"not null;default:Scheduled"`
	ScheduledDate *string
	Technician    *string
	Notes         *string
	CreatedAt     time.Time `gorm:"not null"`
}

func ValidJobStatus(status string) bool {
	switch status {
	case JobStatusScheduled, JobStatusInProgress, JobStatusCompleted, JobStatusCanceled:
		return true
	}
	return false
}
