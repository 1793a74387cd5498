package models

import "time"

// Company is the tenant boundary. Every domain row carries its id.
type Company struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}
