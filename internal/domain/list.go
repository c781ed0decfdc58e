package domain

import (
	"time"

	"github.com/google/uuid"
)

// TodoList is a named, coloured collection of items owned by one user.
type TodoList struct {
	ID         string
	OwnerID    string
	Title      string
	Colour     Colour
	OrderIndex int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTodoList creates a list with validation
func NewTodoList(ownerID, title, colourCode string) (*TodoList, error) {
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	colour := White
	if colourCode != "" {
		c, err := ColourFrom(colourCode)
		if err != nil {
			return nil, err
		}
		colour = c
	}

	now := time.Now().UTC()

	return &TodoList{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     title,
		Colour:    colour,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (l *TodoList) GetID() string { return l.ID }
func (l *TodoList) GetOrderIndex() int { return l.OrderIndex }
func (l *TodoList) SetOrderIndex(idx int) { l.OrderIndex = idx }

// UpdateTitle updates the title with validation
func (l *TodoList) UpdateTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	l.Title = title
	l.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateColour switches to one of the supported colours
func (l *TodoList) UpdateColour(code string) error {
	c, err := ColourFrom(code)
	if err != nil {
		return err
	}
	l.Colour = c
	l.UpdatedAt = time.Now().UTC()
	return nil
}

// PageResult contains paginated results
type PageResult[T any] struct {
	Items      []T
	TotalItems int64
	Page       int
	PageSize   int
	TotalPages int
}
