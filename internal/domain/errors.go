package domain

import "errors"

var (
	// Validation Errors
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrTitleTooLong      = errors.New("title exceeds 200 characters")
	ErrNoteTooLong       = errors.New("note exceeds 2000 characters")
	ErrInvalidOwnerID    = errors.New("owner ID is required")
	ErrInvalidListID     = errors.New("list ID is required")
	ErrInvalidPriority   = errors.New("invalid priority value")
	ErrUnsupportedColour = errors.New("unsupported colour")
	ErrInvalidOrderIndex = errors.New("order index cannot be negative")
	ErrReminderInPast    = errors.New("reminder cannot be in the past")

	// Lookup errors
	ErrListNotFound = errors.New("todo list not found")
	ErrItemNotFound = errors.New("todo item not found")

	// Authorization errors
	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("forbidden - insufficient permissions")
)
