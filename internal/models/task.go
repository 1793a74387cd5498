package models

import "time"

const (
	TaskStatusTodo = "todo"
	TaskStatusDone = "done"
)

type Task struct {
	ID         uint   `gorm:"primaryKey"`
	CompanyID  uint   `gorm:"index;not null"`
	JobID      uint   `gorm:"index;not null"`
	Title      string `gorm:"not null"`
	Status     string `gorm:"not null;default:todo"`
	DueDate    *string
	AssignedTo *string
	CreatedAt  time.Time `gorm:"not null"`
}
