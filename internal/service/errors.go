package service

import "errors"

// Common service errors.
var (
	// ErrUserRequired is returned when an operation needs a registered
	// user and none exists. Category and task creation hit this.
	ErrUserRequired = errors.New("a registered user is required")
)
