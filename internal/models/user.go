package models

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey"`
	CompanyID    uint      `gorm:"index"`
	Username     string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:admin"`
	CreatedAt    time.Time `gorm:"not null"`
}
