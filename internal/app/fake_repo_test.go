package app

import (
	"context"
	"sync"

	"github.com/dmehra2102/todoboard/internal/domain"
)

// memRepo is an in-memory domain.Repository. It hands out copies so the
// service cannot mutate stored rows except through the interface.
type memRepo struct {
	mu    sync.Mutex
	lists map[string]domain.TodoList
	items map[string]domain.Item

	listOrderWrites [][]string
	itemOrderWrites [][]string
	listReads       int
	itemReads       int
}

var _ domain.Repository = (*memRepo)(nil)

func newMemRepo() *memRepo {
	return &memRepo{
		lists: make(map[string]domain.TodoList),
		items: make(map[string]domain.Item),
	}
}

func (r *memRepo) GetList(ctx context.Context, id string) (*domain.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.lists[id]
	if !ok {
		return nil, domain.ErrListNotFound
	}
	return &l, nil
}

func (r *memRepo) ListsByOwner(ctx context.Context, ownerID string) ([]*domain.TodoList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listReads++
	var out []*domain.TodoList
	for _, l := range r.lists {
		if l.OwnerID == ownerID {
			c := l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memRepo) UpsertList(ctx context.Context, list *domain.TodoList) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists[list.ID] = *list
	return nil
}

func (r *memRepo) DeleteList(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lists[id]; !ok {
		return domain.ErrListNotFound
	}
	delete(r.lists, id)
	for itemID, it := range r.items {
		if it.ListID == id {
			delete(r.items, itemID)
		}
	}
	return nil
}

func (r *memRepo) UpdateListOrder(ctx context.Context, lists []*domain.TodoList) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(lists))
	for _, l := range lists {
		stored, ok := r.lists[l.ID]
		if !ok {
			continue
		}
		stored.OrderIndex = l.OrderIndex
		r.lists[l.ID] = stored
		ids = append(ids, l.ID)
	}
	r.listOrderWrites = append(r.listOrderWrites, ids)
	return nil
}

func (r *memRepo) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return &it, nil
}

func (r *memRepo) ItemsByList(ctx context.Context, listID string) ([]*domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.itemReads++
	var out []*domain.Item
	for _, it := range r.items {
		if it.ListID == listID {
			c := it
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memRepo) UpsertItem(ctx context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lists[item.ListID]; !ok {
		return domain.ErrListNotFound
	}
	r.items[item.ID] = *item
	return nil
}

func (r *memRepo) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memRepo) UpdateItemOrder(ctx context.Context, items []*domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(items))
	for _, it := range items {
		stored, ok := r.items[it.ID]
		if !ok {
			continue
		}
		stored.OrderIndex = it.OrderIndex
		r.items[it.ID] = stored
		ids = append(ids, it.ID)
	}
	r.itemOrderWrites = append(r.itemOrderWrites, ids)
	return nil
}

func (r *memRepo) addList(id, owner string, idx int) {
	r.lists[id] = domain.TodoList{ID: id, OwnerID: owner, Title: id, Colour: domain.White, OrderIndex: idx}
}

// addItems stores one item per name in list order; a "+" suffix marks it done.
func (r *memRepo) addItems(listID string, names ...string) {
	for i, name := range names {
		done := false
		if n := len(name); n > 0 && name[n-1] == '+' {
			name, done = name[:n-1], true
		}
		r.items[name] = domain.Item{
			ID:         name,
			ListID:     listID,
			Title:      name,
			Priority:   domain.PriorityMedium,
			Done:       done,
			OrderIndex: i,
		}
	}
}

// storedOrder returns the item ids of listID sorted by stored order index.
func (r *memRepo) storedOrder(listID string) []string {
	items, _ := r.ItemsByList(context.Background(), listID)
	out := make([]string, len(items))
	for _, it := range items {
		if it.OrderIndex >= 0 && it.OrderIndex < len(out) {
			out[it.OrderIndex] = it.ID
		}
	}
	return out
}

func (r *memRepo) storedListOrder(owner string) []string {
	lists, _ := r.ListsByOwner(context.Background(), owner)
	out := make([]string, len(lists))
	for _, l := range lists {
		if l.OrderIndex >= 0 && l.OrderIndex < len(out) {
			out[l.OrderIndex] = l.ID
		}
	}
	return out
}
