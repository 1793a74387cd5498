package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound covers both a missing row and a row owned by another
	// company; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	ErrInvalidStatus        = errors.New("invalid status")
	ErrNameAndPhoneRequired = errors.New("name and phone are required")
	ErrTitleRequired        = errors.New("task title is required")
	ErrInvalidAmount        = errors.New("amount must be a number")
	ErrAllFieldsRequired    = errors.New("all fields are required")
	ErrUsernameTaken        = errors.New("that username is already taken")
	ErrUsernameReserved     = errors.New("that username is reserved")
	ErrInvalidCredentials   = errors.New("wrong username or password")
)

// asNotFound collapses record-not-found into the tenant-neutral
// sentinel and passes every other error through.
func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
