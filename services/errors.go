package services

import "errors"

// Service-level failure classes. Controllers map these to HTTP statuses;
// anything else is treated as an internal error and not leaked.
var (
	ErrNotFound          = errors.New("not found")
	ErrNoCurrentGoal     = errors.New("no current goal is set")
	ErrIncompleteProfile = errors.New("your profile is incomplete to create a goal")
	ErrAIUnavailable     = errors.New("ai service unavailable")
)
