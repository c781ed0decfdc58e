package app

import (
	"context"
	"fmt"
	"time"

	"github.com/dmehra2102/todoboard/internal/domain"
	"github.com/dmehra2102/todoboard/internal/infrastructure/cache"
	"github.com/dmehra2102/todoboard/pkg/auth"
	"go.uber.org/zap"
)

// CachedTodoService decorates a Service with read caching. Keys include the
// caller's user id so a cached answer is only served to a caller who already
// passed the authorization check for it. Writes drop the affected scopes
// whether or not they fail, since a failed command may have persisted part of
// its work.
type CachedTodoService struct {
	Service

	lists  *cache.Store[[]*domain.TodoList]
	list   *cache.Store[*domain.TodoList]
	items  *cache.Store[*domain.PageResult[*domain.Item]]
	logger *zap.Logger
}

var _ Service = (*CachedTodoService)(nil)

func NewCachedTodoService(inner Service, cfg cache.Config, logger *zap.Logger) *CachedTodoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedTodoService{
		Service: inner,
		lists:   cache.NewStore[[]*domain.TodoList]("user_lists", cfg),
		list:    cache.NewStore[*domain.TodoList]("list", cfg),
		items:   cache.NewStore[*domain.PageResult[*domain.Item]]("list_items", cfg),
		logger:  logger,
	}
}

// Invalidate drops every cached read registered under any of scopes.
func (c *CachedTodoService) Invalidate(scopes ...string) {
	for _, scope := range scopes {
		c.lists.Invalidate(scope)
		c.list.Invalidate(scope)
		c.items.Invalidate(scope)
	}
	c.logger.Debug("cache invalidated", zap.Strings("scopes", scopes))
}

func (c *CachedTodoService) GetUserLists(ctx context.Context) ([]*domain.TodoList, error) {
	userID, ok := callerID(ctx)
	if !ok {
		return c.Service.GetUserLists(ctx)
	}

	key := "lists:" + userID
	if lists, ok := c.lists.Get(key); ok {
		return lists, nil
	}

	lists, err := c.Service.GetUserLists(ctx)
	if err != nil {
		return nil, err
	}

	// Registered under every list too, so an edit to one list by an admin
	// still drops the owner's view.
	scopes := make([]string, 0, len(lists)+1)
	scopes = append(scopes, userScope(userID))
	for _, l := range lists {
		scopes = append(scopes, listScope(l.ID))
	}
	c.lists.Set(key, lists, scopes...)
	return lists, nil
}

func (c *CachedTodoService) GetList(ctx context.Context, listID string) (*domain.TodoList, error) {
	userID, ok := callerID(ctx)
	if !ok {
		return c.Service.GetList(ctx, listID)
	}

	key := fmt.Sprintf("list:%s:%s", userID, listID)
	if list, ok := c.list.Get(key); ok {
		return list, nil
	}

	list, err := c.Service.GetList(ctx, listID)
	if err != nil {
		return nil, err
	}
	c.list.Set(key, list, listScope(listID))
	return list, nil
}

func (c *CachedTodoService) ListItems(ctx context.Context, listID string, page, pageSize int) (*domain.PageResult[*domain.Item], error) {
	userID, ok := callerID(ctx)
	if !ok {
		return c.Service.ListItems(ctx, listID, page, pageSize)
	}

	key := fmt.Sprintf("items:%s:%s:%d:%d", userID, listID, page, pageSize)
	if result, ok := c.items.Get(key); ok {
		return result, nil
	}

	result, err := c.Service.ListItems(ctx, listID, page, pageSize)
	if err != nil {
		return nil, err
	}
	c.items.Set(key, result, listScope(listID))
	return result, nil
}

func (c *CachedTodoService) CreateList(ctx context.Context, title, colourCode string) (*domain.TodoList, error) {
	defer c.invalidateCaller(ctx)
	return c.Service.CreateList(ctx, title, colourCode)
}

func (c *CachedTodoService) DeleteList(ctx context.Context, listID string) error {
	defer c.invalidateCaller(ctx, listScope(listID))
	return c.Service.DeleteList(ctx, listID)
}

func (c *CachedTodoService) UpdateListTitle(ctx context.Context, listID, title string) (*domain.TodoList, error) {
	defer c.Invalidate(listScope(listID))
	return c.Service.UpdateListTitle(ctx, listID, title)
}

func (c *CachedTodoService) UpdateListColour(ctx context.Context, listID, colourCode string) (*domain.TodoList, error) {
	defer c.Invalidate(listScope(listID))
	return c.Service.UpdateListColour(ctx, listID, colourCode)
}

func (c *CachedTodoService) MoveList(ctx context.Context, listID string, newIndex int) ([]*domain.TodoList, error) {
	defer c.invalidateCaller(ctx)
	return c.Service.MoveList(ctx, listID, newIndex)
}

func (c *CachedTodoService) ReorderLists(ctx context.Context, patch map[string]int) ([]*domain.TodoList, error) {
	defer c.invalidateCaller(ctx)
	return c.Service.ReorderLists(ctx, patch)
}

func (c *CachedTodoService) CreateItem(ctx context.Context, listID, title, note string, priority domain.Priority) (*domain.Item, error) {
	defer c.Invalidate(listScope(listID))
	return c.Service.CreateItem(ctx, listID, title, note, priority)
}

func (c *CachedTodoService) DeleteItem(ctx context.Context, listID, itemID string) error {
	defer c.Invalidate(listScope(listID))
	return c.Service.DeleteItem(ctx, listID, itemID)
}

func (c *CachedTodoService) ToggleItemDone(ctx context.Context, listID, itemID string) (*domain.Item, error) {
	defer c.Invalidate(listScope(listID))
	return c.Service.ToggleItemDone(ctx, listID, itemID)
}

func (c *CachedTodoService) UpdateItemPriority(ctx context.Context, listID, itemID string, priority domain.Priority) (*domain.Item, error) {
	defer c.Invalidate(listScope(listID))
	return c.Service.UpdateItemPriority(ctx, listID, itemID, priority)
}

func (c *CachedTodoService) UpdateItemDescription(ctx context.Context, listID, itemID, title, note string) (*domain.Item, error) {
	defer c.Invalidate(listScope(listID))
	return c.Service.UpdateItemDescription(ctx, listID, itemID, title, note)
}

func (c *CachedTodoService) SetItemReminder(ctx context.Context, listID, itemID string, at *time.Time) (*domain.Item, error) {
	defer c.Invalidate(listScope(listID))
	return c.Service.SetItemReminder(ctx, listID, itemID, at)
}

func (c *CachedTodoService) MoveItem(ctx context.Context, listID, itemID string, newIndex int) ([]*domain.Item, error) {
	defer c.Invalidate(listScope(listID))
	return c.Service.MoveItem(ctx, listID, itemID, newIndex)
}

func (c *CachedTodoService) ReorderItems(ctx context.Context, listID string, patch map[string]int) ([]*domain.Item, error) {
	defer c.Invalidate(listScope(listID))
	return c.Service.ReorderItems(ctx, listID, patch)
}

func (c *CachedTodoService) invalidateCaller(ctx context.Context, extra ...string) {
	if userID, ok := callerID(ctx); ok {
		extra = append(extra, userScope(userID))
	}
	c.Invalidate(extra...)
}

func callerID(ctx context.Context) (string, bool) {
	userCtx, err := auth.UserContextFromContext(ctx)
	if err != nil {
		return "", false
	}
	return userCtx.UserID, true
}
