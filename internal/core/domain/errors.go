package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEventNotFound      = errors.New("event not found")
	ErrScheduleNotFound   = errors.New("schedule not found")
	ErrSlotConflict       = errors.New("time slot already taken")
	ErrValidation         = errors.New("invalid input")
)
