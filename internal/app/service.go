package app

import (
	"context"
	"fmt"
	"time"

	"github.com/dmehra2102/todoboard/internal/domain"
	"github.com/dmehra2102/todoboard/internal/infrastructure/queue"
	"github.com/dmehra2102/todoboard/internal/order"
	"github.com/dmehra2102/todoboard/pkg/auth"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const maxPageSize = 100

// Service is the todo application API used by the transport layer.
type Service interface {
	GetUserLists(ctx context.Context) ([]*domain.TodoList, error)
	GetList(ctx context.Context, listID string) (*domain.TodoList, error)
	CreateList(ctx context.Context, title, colourCode string) (*domain.TodoList, error)
	DeleteList(ctx context.Context, listID string) error
	UpdateListTitle(ctx context.Context, listID, title string) (*domain.TodoList, error)
	UpdateListColour(ctx context.Context, listID, colourCode string) (*domain.TodoList, error)
	MoveList(ctx context.Context, listID string, newIndex int) ([]*domain.TodoList, error)
	ReorderLists(ctx context.Context, patch map[string]int) ([]*domain.TodoList, error)

	ListItems(ctx context.Context, listID string, page, pageSize int) (*domain.PageResult[*domain.Item], error)
	GetItem(ctx context.Context, listID, itemID string) (*domain.Item, error)
	CreateItem(ctx context.Context, listID, title, note string, priority domain.Priority) (*domain.Item, error)
	DeleteItem(ctx context.Context, listID, itemID string) error
	ToggleItemDone(ctx context.Context, listID, itemID string) (*domain.Item, error)
	UpdateItemPriority(ctx context.Context, listID, itemID string, priority domain.Priority) (*domain.Item, error)
	UpdateItemDescription(ctx context.Context, listID, itemID, title, note string) (*domain.Item, error)
	SetItemReminder(ctx context.Context, listID, itemID string, at *time.Time) (*domain.Item, error)
	MoveItem(ctx context.Context, listID, itemID string, newIndex int) ([]*domain.Item, error)
	ReorderItems(ctx context.Context, listID string, patch map[string]int) ([]*domain.Item, error)

	SupportedColours() []domain.Colour
}

// TaskQueue schedules deferred writes. Tasks sharing a key run in submission
// order.
type TaskQueue interface {
	Submit(key, name string, task queue.Task) error
}

// TodoService implements Service on top of a Repository. Order-index changes
// are computed synchronously with the order engine and persisted through the
// task queue, one batch per command.
type TodoService struct {
	repo            domain.Repository
	orderer         *order.Service
	tasks           TaskQueue
	authz           *auth.Authorizer
	logger          *zap.Logger
	tracer          trace.Tracer
	defaultPageSize int

	persisted []func(scopes ...string)
}

func NewTodoService(repo domain.Repository, tasks TaskQueue, authz *auth.Authorizer, logger *zap.Logger, defaultPageSize int) *TodoService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultPageSize <= 0 {
		defaultPageSize = 20
	}
	return &TodoService{
		repo:            repo,
		orderer:         order.NewService(logger.Named("order")),
		tasks:           tasks,
		authz:           authz,
		logger:          logger,
		tracer:          otel.Tracer("todo-service"),
		defaultPageSize: defaultPageSize,
	}
}

// OnOrderPersisted registers fn to run after a queued order write commits,
// with the cache scopes the write touched. Must be called before serving.
func (s *TodoService) OnOrderPersisted(fn func(scopes ...string)) {
	s.persisted = append(s.persisted, fn)
}

func (s *TodoService) GetUserLists(ctx context.Context) ([]*domain.TodoList, error) {
	ctx, span := s.tracer.Start(ctx, "GetUserLists")
	defer span.End()

	userCtx, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("user.id", userCtx.UserID))

	lists, err := s.repo.ListsByOwner(ctx, userCtx.UserID)
	if err != nil {
		return nil, err
	}
	order.SortByOrderIndex(lists)
	return lists, nil
}

func (s *TodoService) GetList(ctx context.Context, listID string) (*domain.TodoList, error) {
	ctx, span := s.tracer.Start(ctx, "GetList")
	defer span.End()

	_, list, err := s.authorizedList(ctx, listID)
	return list, err
}

func (s *TodoService) CreateList(ctx context.Context, title, colourCode string) (*domain.TodoList, error) {
	ctx, span := s.tracer.Start(ctx, "CreateList")
	defer span.End()

	userCtx, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	if !s.authz.CanCreate(userCtx) {
		return nil, domain.ErrForbidden
	}

	list, err := domain.NewTodoList(userCtx.UserID, title, colourCode)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ListsByOwner(ctx, userCtx.UserID)
	if err != nil {
		return nil, err
	}
	list.OrderIndex = len(existing)

	if err := s.repo.UpsertList(ctx, list); err != nil {
		s.logger.Error("failed to persist list",
			zap.Error(err),
			zap.String("list_id", list.ID),
		)
		return nil, err
	}

	s.logger.Info("list created",
		zap.String("list_id", list.ID),
		zap.String("user_id", userCtx.UserID),
		zap.Int("order_index", list.OrderIndex),
	)
	return list, nil
}

func (s *TodoService) DeleteList(ctx context.Context, listID string) error {
	ctx, span := s.tracer.Start(ctx, "DeleteList")
	defer span.End()

	userCtx, list, err := s.authorizedList(ctx, listID)
	if err != nil {
		return err
	}
	if !s.authz.CanDeleteList(userCtx, list) {
		return domain.ErrForbidden
	}

	lists, err := s.repo.ListsByOwner(ctx, list.OwnerID)
	if err != nil {
		return err
	}
	order.SortByOrderIndex(lists)
	before := order.Snapshot(lists)
	remaining := order.RemoveAndCompact(lists, listID)

	if err := s.repo.DeleteList(ctx, listID); err != nil {
		return err
	}

	s.logger.Info("list deleted",
		zap.String("list_id", listID),
		zap.String("user_id", userCtx.UserID),
	)
	return s.persistListOrder(list.OwnerID, "delete", order.OrderChanges(before, remaining))
}

func (s *TodoService) UpdateListTitle(ctx context.Context, listID, title string) (*domain.TodoList, error) {
	ctx, span := s.tracer.Start(ctx, "UpdateListTitle")
	defer span.End()

	return s.updateList(ctx, listID, func(l *domain.TodoList) error { return l.UpdateTitle(title) })
}

func (s *TodoService) UpdateListColour(ctx context.Context, listID, colourCode string) (*domain.TodoList, error) {
	ctx, span := s.tracer.Start(ctx, "UpdateListColour")
	defer span.End()

	return s.updateList(ctx, listID, func(l *domain.TodoList) error { return l.UpdateColour(colourCode) })
}

func (s *TodoService) MoveList(ctx context.Context, listID string, newIndex int) ([]*domain.TodoList, error) {
	ctx, span := s.tracer.Start(ctx, "MoveList")
	defer span.End()

	span.SetAttributes(
		attribute.String("list.id", listID),
		attribute.Int("new_index", newIndex),
	)

	userCtx, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}

	lists, err := s.repo.ListsByOwner(ctx, userCtx.UserID)
	if err != nil {
		return nil, err
	}
	order.SortByOrderIndex(lists)

	if order.Build(lists).IndexOf(listID) < 0 {
		// Not in the caller's workspace: distinguish a missing list from
		// someone else's.
		if _, err := s.repo.GetList(ctx, listID); err != nil {
			return nil, err
		}
		return nil, domain.ErrForbidden
	}

	before := order.Snapshot(lists)
	s.orderer.ReorderLists(lists, listID, newIndex)

	if err := s.persistListOrder(userCtx.UserID, "move", order.OrderChanges(before, lists)); err != nil {
		return nil, err
	}
	return lists, nil
}

func (s *TodoService) ReorderLists(ctx context.Context, patch map[string]int) ([]*domain.TodoList, error) {
	ctx, span := s.tracer.Start(ctx, "ReorderLists")
	defer span.End()

	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	userCtx, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("patch_size", len(patch)))

	lists, err := s.repo.ListsByOwner(ctx, userCtx.UserID)
	if err != nil {
		return nil, err
	}

	changed := order.ApplyPatch(lists, patch)
	if err := s.persistListOrder(userCtx.UserID, "patch", changed); err != nil {
		return nil, err
	}

	order.SortByOrderIndex(lists)
	return lists, nil
}

func (s *TodoService) ListItems(ctx context.Context, listID string, page, pageSize int) (*domain.PageResult[*domain.Item], error) {
	ctx, span := s.tracer.Start(ctx, "ListItems")
	defer span.End()

	if _, _, err := s.authorizedList(ctx, listID); err != nil {
		return nil, err
	}

	items, err := s.repo.ItemsByList(ctx, listID)
	if err != nil {
		return nil, err
	}
	order.SortByOrderIndex(items)

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = s.defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	total := len(items)
	start := min((page-1)*pageSize, total)
	end := min(start+pageSize, total)

	return &domain.PageResult[*domain.Item]{
		Items:      items[start:end],
		TotalItems: int64(total),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (total + pageSize - 1) / pageSize,
	}, nil
}

func (s *TodoService) GetItem(ctx context.Context, listID, itemID string) (*domain.Item, error) {
	ctx, span := s.tracer.Start(ctx, "GetItem")
	defer span.End()

	if _, _, err := s.authorizedList(ctx, listID); err != nil {
		return nil, err
	}
	return s.itemInList(ctx, listID, itemID)
}

func (s *TodoService) CreateItem(ctx context.Context, listID, title, note string, priority domain.Priority) (*domain.Item, error) {
	ctx, span := s.tracer.Start(ctx, "CreateItem")
	defer span.End()

	userCtx, _, err := s.authorizedList(ctx, listID)
	if err != nil {
		return nil, err
	}

	item, err := domain.NewItem(listID, title, note, priority)
	if err != nil {
		return nil, err
	}

	items, before, err := s.loadItems(ctx, listID)
	if err != nil {
		return nil, err
	}

	// Append, then re-bucket so the new pending item lands above done ones.
	item.OrderIndex = len(items)
	items = append(items, item)
	s.orderer.RebucketItems(items)

	if err := s.repo.UpsertItem(ctx, item); err != nil {
		s.logger.Error("failed to persist item",
			zap.Error(err),
			zap.String("item_id", item.ID),
		)
		return nil, err
	}

	s.logger.Info("item created",
		zap.String("item_id", item.ID),
		zap.String("list_id", listID),
		zap.String("user_id", userCtx.UserID),
		zap.Int("order_index", item.OrderIndex),
	)
	return item, s.persistItemOrder(listID, "create", without(order.OrderChanges(before, items), item.ID))
}

func (s *TodoService) DeleteItem(ctx context.Context, listID, itemID string) error {
	ctx, span := s.tracer.Start(ctx, "DeleteItem")
	defer span.End()

	userCtx, _, err := s.authorizedList(ctx, listID)
	if err != nil {
		return err
	}
	if _, err := s.itemInList(ctx, listID, itemID); err != nil {
		return err
	}

	items, err := s.repo.ItemsByList(ctx, listID)
	if err != nil {
		return err
	}
	order.SortByOrderIndex(items)
	before := order.Snapshot(items)
	remaining := order.RemoveAndCompact(items, itemID)

	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return err
	}

	s.logger.Info("item deleted",
		zap.String("item_id", itemID),
		zap.String("list_id", listID),
		zap.String("user_id", userCtx.UserID),
	)
	return s.persistItemOrder(listID, "delete", order.OrderChanges(before, remaining))
}

func (s *TodoService) ToggleItemDone(ctx context.Context, listID, itemID string) (*domain.Item, error) {
	ctx, span := s.tracer.Start(ctx, "ToggleItemDone")
	defer span.End()

	if _, _, err := s.authorizedList(ctx, listID); err != nil {
		return nil, err
	}

	items, before, err := s.loadItems(ctx, listID)
	if err != nil {
		return nil, err
	}
	item := findItem(items, itemID)
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	item.ToggleDone()
	s.orderer.RebucketItems(items)

	if err := s.repo.UpsertItem(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Debug("item toggled",
		zap.String("item_id", itemID),
		zap.Bool("done", item.Done),
		zap.Int("order_index", item.OrderIndex),
	)
	return item, s.persistItemOrder(listID, "toggle", without(order.OrderChanges(before, items), item.ID))
}

func (s *TodoService) UpdateItemPriority(ctx context.Context, listID, itemID string, priority domain.Priority) (*domain.Item, error) {
	ctx, span := s.tracer.Start(ctx, "UpdateItemPriority")
	defer span.End()

	return s.updateItem(ctx, listID, itemID, func(i *domain.Item) error { return i.UpdatePriority(priority) })
}

func (s *TodoService) UpdateItemDescription(ctx context.Context, listID, itemID, title, note string) (*domain.Item, error) {
	ctx, span := s.tracer.Start(ctx, "UpdateItemDescription")
	defer span.End()

	return s.updateItem(ctx, listID, itemID, func(i *domain.Item) error { return i.UpdateDescription(title, note) })
}

func (s *TodoService) SetItemReminder(ctx context.Context, listID, itemID string, at *time.Time) (*domain.Item, error) {
	ctx, span := s.tracer.Start(ctx, "SetItemReminder")
	defer span.End()

	return s.updateItem(ctx, listID, itemID, func(i *domain.Item) error { return i.SetReminder(at) })
}

func (s *TodoService) MoveItem(ctx context.Context, listID, itemID string, newIndex int) ([]*domain.Item, error) {
	ctx, span := s.tracer.Start(ctx, "MoveItem")
	defer span.End()

	span.SetAttributes(
		attribute.String("list.id", listID),
		attribute.String("item.id", itemID),
		attribute.Int("new_index", newIndex),
	)

	if _, _, err := s.authorizedList(ctx, listID); err != nil {
		return nil, err
	}

	items, before, err := s.loadItems(ctx, listID)
	if err != nil {
		return nil, err
	}
	if findItem(items, itemID) == nil {
		return nil, domain.ErrItemNotFound
	}

	s.orderer.ReorderItems(items, itemID, newIndex)

	if err := s.persistItemOrder(listID, "move", order.OrderChanges(before, items)); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *TodoService) ReorderItems(ctx context.Context, listID string, patch map[string]int) ([]*domain.Item, error) {
	ctx, span := s.tracer.Start(ctx, "ReorderItems")
	defer span.End()

	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	if _, _, err := s.authorizedList(ctx, listID); err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("patch_size", len(patch)))

	items, err := s.repo.ItemsByList(ctx, listID)
	if err != nil {
		return nil, err
	}

	changed := order.ApplyPatch(items, patch)
	if err := s.persistItemOrder(listID, "patch", changed); err != nil {
		return nil, err
	}

	order.SortByOrderIndex(items)
	return items, nil
}

func (s *TodoService) SupportedColours() []domain.Colour {
	return domain.SupportedColours()
}

func (s *TodoService) updateList(ctx context.Context, listID string, mutate func(*domain.TodoList) error) (*domain.TodoList, error) {
	_, list, err := s.authorizedList(ctx, listID)
	if err != nil {
		return nil, err
	}
	if err := mutate(list); err != nil {
		return nil, err
	}
	if err := s.repo.UpsertList(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *TodoService) updateItem(ctx context.Context, listID, itemID string, mutate func(*domain.Item) error) (*domain.Item, error) {
	if _, _, err := s.authorizedList(ctx, listID); err != nil {
		return nil, err
	}
	item, err := s.itemInList(ctx, listID, itemID)
	if err != nil {
		return nil, err
	}
	if err := mutate(item); err != nil {
		return nil, err
	}
	if err := s.repo.UpsertItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *TodoService) authorizedList(ctx context.Context, listID string) (*auth.UserContext, *domain.TodoList, error) {
	userCtx, err := callerFrom(ctx)
	if err != nil {
		return nil, nil, err
	}
	if listID == "" {
		return nil, nil, domain.ErrInvalidListID
	}

	list, err := s.repo.GetList(ctx, listID)
	if err != nil {
		return nil, nil, err
	}
	if !s.authz.CanAccessList(userCtx, list) {
		return nil, nil, domain.ErrForbidden
	}
	return userCtx, list, nil
}

func (s *TodoService) itemInList(ctx context.Context, listID, itemID string) (*domain.Item, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.ListID != listID {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

// loadItems returns the list's items in order together with a snapshot of
// their stored indices. A stored ordering that is not dense is repaired in
// memory, so the repair is persisted with the command's own order write.
func (s *TodoService) loadItems(ctx context.Context, listID string) ([]*domain.Item, map[string]int, error) {
	items, err := s.repo.ItemsByList(ctx, listID)
	if err != nil {
		return nil, nil, err
	}
	order.SortByOrderIndex(items)
	before := order.Snapshot(items)

	if err := order.CheckContiguous(items); err != nil {
		s.logger.Warn("repairing item order",
			zap.String("list_id", listID),
			zap.Error(err),
		)
		s.orderer.RebucketItems(items)
	}
	return items, before, nil
}

func (s *TodoService) persistListOrder(ownerID, operation string, changed []*domain.TodoList) error {
	reorderOperationsTotal.WithLabelValues("list", operation).Inc()
	if len(changed) == 0 {
		return nil
	}

	batch := make([]*domain.TodoList, len(changed))
	scopes := []string{userScope(ownerID)}
	for i, l := range changed {
		c := *l
		batch[i] = &c
		scopes = append(scopes, listScope(l.ID))
	}

	return s.submitOrderWrite("update_list_order", "list", len(batch), func(ctx context.Context) error {
		return s.repo.UpdateListOrder(ctx, batch)
	}, scopes)
}

func (s *TodoService) persistItemOrder(listID, operation string, changed []*domain.Item) error {
	reorderOperationsTotal.WithLabelValues("item", operation).Inc()
	if len(changed) == 0 {
		return nil
	}

	batch := make([]*domain.Item, len(changed))
	for i, it := range changed {
		c := *it
		batch[i] = &c
	}

	return s.submitOrderWrite("update_item_order", "item", len(batch), func(ctx context.Context) error {
		return s.repo.UpdateItemOrder(ctx, batch)
	}, []string{listScope(listID)})
}

func (s *TodoService) submitOrderWrite(name, collection string, size int, write queue.Task, scopes []string) error {
	orderIndexWrites.WithLabelValues(collection).Add(float64(size))

	// The first scope is the collection the batch belongs to.
	err := s.tasks.Submit(scopes[0], name, func(ctx context.Context) error {
		if err := write(ctx); err != nil {
			return err
		}
		for _, fn := range s.persisted {
			fn(scopes...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s: %w", name, err)
	}
	return nil
}

func callerFrom(ctx context.Context) (*auth.UserContext, error) {
	userCtx, err := auth.UserContextFromContext(ctx)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return userCtx, nil
}

func validatePatch(patch map[string]int) error {
	for _, idx := range patch {
		if idx < 0 {
			return domain.ErrInvalidOrderIndex
		}
	}
	return nil
}

func findItem(items []*domain.Item, id string) *domain.Item {
	for _, it := range items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

func without(items []*domain.Item, id string) []*domain.Item {
	out := items[:0:0]
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}
