package domain

import (
	"time"

	"github.com/google/uuid"
)

type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// Item is a single todo entry inside a TodoList.
type Item struct {
	ID         string
	ListID     string
	Title      string
	Note       string
	Priority   Priority
	Reminder   *time.Time
	Done       bool
	OrderIndex int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewItem creates an incomplete item with validation. The caller assigns
// OrderIndex relative to the rest of the list.
func NewItem(listID, title, note string, priority Priority) (*Item, error) {
	if listID == "" {
		return nil, ErrInvalidListID
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateNote(note); err != nil {
		return nil, err
	}
	if !isValidPriority(priority) {
		return nil, ErrInvalidPriority
	}

	now := time.Now().UTC()

	return &Item{
		ID:        uuid.NewString(),
		ListID:    listID,
		Title:     title,
		Note:      note,
		Priority:  priority,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (i *Item) GetID() string { return i.ID }
func (i *Item) GetOrderIndex() int { return i.OrderIndex }
func (i *Item) SetOrderIndex(idx int) { i.OrderIndex = idx }
func (i *Item) IsDone() bool { return i.Done }

// ToggleDone flips the completion flag.
func (i *Item) ToggleDone() {
	i.Done = !i.Done
	i.UpdatedAt = time.Now().UTC()
}

// UpdatePriority changes the priority level
func (i *Item) UpdatePriority(priority Priority) error {
	if !isValidPriority(priority) {
		return ErrInvalidPriority
	}
	i.Priority = priority
	i.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateDescription replaces the title and/or note. Empty values leave the
// current field untouched.
func (i *Item) UpdateDescription(title, note string) error {
	if title != "" {
		if err := validateTitle(title); err != nil {
			return err
		}
	}
	if err := validateNote(note); err != nil {
		return err
	}
	if title != "" {
		i.Title = title
	}
	if note != "" {
		i.Note = note
	}
	i.UpdatedAt = time.Now().UTC()
	return nil
}

// SetReminder sets or clears the reminder
func (i *Item) SetReminder(at *time.Time) error {
	if at != nil && at.Before(time.Now().UTC()) {
		return ErrReminderInPast
	}
	i.Reminder = at
	i.UpdatedAt = time.Now().UTC()
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > 200 {
		return ErrTitleTooLong
	}
	return nil
}

func validateNote(note string) error {
	if len(note) > 2000 {
		return ErrNoteTooLong
	}
	return nil
}

func isValidPriority(p Priority) bool {
	return p >= PriorityLow && p <= PriorityCritical
}
