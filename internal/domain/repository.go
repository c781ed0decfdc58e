package domain

import "context"

// Repository defines the contract for list and item persistence
type Repository interface {
	// GetList retrieves a list by ID
	GetList(ctx context.Context, id string) (*TodoList, error)

	// ListsByOwner returns every list of a user ordered by order index
	ListsByOwner(ctx context.Context, ownerID string) ([]*TodoList, error)

	// UpsertList inserts or replaces a list
	UpsertList(ctx context.Context, list *TodoList) error

	// DeleteList removes a list together with its items
	DeleteList(ctx context.Context, id string) error

	// UpdateListOrder writes only the order index of the given lists
	UpdateListOrder(ctx context.Context, lists []*TodoList) error

	// GetItem retrieves an item by ID
	GetItem(ctx context.Context, id string) (*Item, error)

	// ItemsByList returns every item of a list ordered by order index
	ItemsByList(ctx context.Context, listID string) ([]*Item, error)

	// UpsertItem inserts or replaces an item
	UpsertItem(ctx context.Context, item *Item) error

	// DeleteItem removes an item
	DeleteItem(ctx context.Context, id string) error

	// UpdateItemOrder writes only the order index of the given items
	UpdateItemOrder(ctx context.Context, items []*Item) error
}
