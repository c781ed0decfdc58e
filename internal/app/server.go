package app

import (
	"context"
	"errors"

	todov1 "github.com/dmehra2102/todoboard/api/todo/v1"
	"github.com/dmehra2102/todoboard/internal/domain"
	"github.com/dmehra2102/todoboard/internal/infrastructure/queue"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TodoServiceServer adapts a Service to the gRPC API.
type TodoServiceServer struct {
	todov1.UnimplementedTodoServiceServer
	svc    Service
	logger *zap.Logger
}

func NewTodoServiceServer(svc Service, logger *zap.Logger) *TodoServiceServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TodoServiceServer{
		svc:    svc,
		logger: logger,
	}
}

func (s *TodoServiceServer) GetUserLists(ctx context.Context, req *todov1.GetUserListsRequest) (*todov1.GetUserListsResponse, error) {
	lists, err := s.svc.GetUserLists(ctx)
	if err != nil {
		return nil, s.fail("GetUserLists", err)
	}
	return &todov1.GetUserListsResponse{Lists: mapLists(lists)}, nil
}

func (s *TodoServiceServer) GetList(ctx context.Context, req *todov1.GetListRequest) (*todov1.GetListResponse, error) {
	list, err := s.svc.GetList(ctx, req.ListId)
	if err != nil {
		return nil, s.fail("GetList", err)
	}
	return &todov1.GetListResponse{List: mapList(list)}, nil
}

func (s *TodoServiceServer) CreateList(ctx context.Context, req *todov1.CreateListRequest) (*todov1.CreateListResponse, error) {
	list, err := s.svc.CreateList(ctx, req.Title, req.ColourCode)
	if err != nil {
		return nil, s.fail("CreateList", err)
	}
	return &todov1.CreateListResponse{List: mapList(list)}, nil
}

func (s *TodoServiceServer) DeleteList(ctx context.Context, req *todov1.DeleteListRequest) (*todov1.DeleteListResponse, error) {
	if err := s.svc.DeleteList(ctx, req.ListId); err != nil {
		return nil, s.fail("DeleteList", err)
	}
	return &todov1.DeleteListResponse{Success: true}, nil
}

func (s *TodoServiceServer) UpdateListTitle(ctx context.Context, req *todov1.UpdateListTitleRequest) (*todov1.UpdateListResponse, error) {
	list, err := s.svc.UpdateListTitle(ctx, req.ListId, req.Title)
	if err != nil {
		return nil, s.fail("UpdateListTitle", err)
	}
	return &todov1.UpdateListResponse{List: mapList(list)}, nil
}

func (s *TodoServiceServer) UpdateListColour(ctx context.Context, req *todov1.UpdateListColourRequest) (*todov1.UpdateListResponse, error) {
	list, err := s.svc.UpdateListColour(ctx, req.ListId, req.ColourCode)
	if err != nil {
		return nil, s.fail("UpdateListColour", err)
	}
	return &todov1.UpdateListResponse{List: mapList(list)}, nil
}

func (s *TodoServiceServer) MoveList(ctx context.Context, req *todov1.MoveListRequest) (*todov1.ReorderListsResponse, error) {
	lists, err := s.svc.MoveList(ctx, req.ListId, int(req.NewIndex))
	if err != nil {
		return nil, s.fail("MoveList", err)
	}
	return &todov1.ReorderListsResponse{Lists: mapLists(lists)}, nil
}

func (s *TodoServiceServer) ReorderLists(ctx context.Context, req *todov1.ReorderListsRequest) (*todov1.ReorderListsResponse, error) {
	lists, err := s.svc.ReorderLists(ctx, mapPatch(req.Order))
	if err != nil {
		return nil, s.fail("ReorderLists", err)
	}
	return &todov1.ReorderListsResponse{Lists: mapLists(lists)}, nil
}

func (s *TodoServiceServer) ListItems(ctx context.Context, req *todov1.ListItemsRequest) (*todov1.ListItemsResponse, error) {
	result, err := s.svc.ListItems(ctx, req.ListId, int(req.Page), int(req.PageSize))
	if err != nil {
		return nil, s.fail("ListItems", err)
	}
	return &todov1.ListItemsResponse{
		Items: mapItems(result.Items),
		PageInfo: &todov1.PageInfo{
			Page:       int32(result.Page),
			PageSize:   int32(result.PageSize),
			TotalItems: result.TotalItems,
			TotalPages: int32(result.TotalPages),
		},
	}, nil
}

func (s *TodoServiceServer) GetItem(ctx context.Context, req *todov1.GetItemRequest) (*todov1.ItemResponse, error) {
	item, err := s.svc.GetItem(ctx, req.ListId, req.ItemId)
	if err != nil {
		return nil, s.fail("GetItem", err)
	}
	return &todov1.ItemResponse{Item: mapItem(item)}, nil
}

func (s *TodoServiceServer) CreateItem(ctx context.Context, req *todov1.CreateItemRequest) (*todov1.ItemResponse, error) {
	item, err := s.svc.CreateItem(ctx, req.ListId, req.Title, req.Note, mapProtoPriority(req.Priority))
	if err != nil {
		return nil, s.fail("CreateItem", err)
	}
	return &todov1.ItemResponse{Item: mapItem(item)}, nil
}

func (s *TodoServiceServer) DeleteItem(ctx context.Context, req *todov1.DeleteItemRequest) (*todov1.DeleteItemResponse, error) {
	if err := s.svc.DeleteItem(ctx, req.ListId, req.ItemId); err != nil {
		return nil, s.fail("DeleteItem", err)
	}
	return &todov1.DeleteItemResponse{Success: true}, nil
}

func (s *TodoServiceServer) ToggleItemDone(ctx context.Context, req *todov1.ToggleItemDoneRequest) (*todov1.ItemResponse, error) {
	item, err := s.svc.ToggleItemDone(ctx, req.ListId, req.ItemId)
	if err != nil {
		return nil, s.fail("ToggleItemDone", err)
	}
	return &todov1.ItemResponse{Item: mapItem(item)}, nil
}

func (s *TodoServiceServer) UpdateItemPriority(ctx context.Context, req *todov1.UpdateItemPriorityRequest) (*todov1.ItemResponse, error) {
	priority := mapProtoPriority(req.Priority)
	if req.Priority == todov1.Priority_PRIORITY_UNSPECIFIED {
		// An explicit update must name a level.
		priority = 0
	}
	item, err := s.svc.UpdateItemPriority(ctx, req.ListId, req.ItemId, priority)
	if err != nil {
		return nil, s.fail("UpdateItemPriority", err)
	}
	return &todov1.ItemResponse{Item: mapItem(item)}, nil
}

func (s *TodoServiceServer) UpdateItemDescription(ctx context.Context, req *todov1.UpdateItemDescriptionRequest) (*todov1.ItemResponse, error) {
	item, err := s.svc.UpdateItemDescription(ctx, req.ListId, req.ItemId, req.Title, req.Note)
	if err != nil {
		return nil, s.fail("UpdateItemDescription", err)
	}
	return &todov1.ItemResponse{Item: mapItem(item)}, nil
}

func (s *TodoServiceServer) SetItemReminder(ctx context.Context, req *todov1.SetItemReminderRequest) (*todov1.ItemResponse, error) {
	item, err := s.svc.SetItemReminder(ctx, req.ListId, req.ItemId, req.Reminder)
	if err != nil {
		return nil, s.fail("SetItemReminder", err)
	}
	return &todov1.ItemResponse{Item: mapItem(item)}, nil
}

func (s *TodoServiceServer) MoveItem(ctx context.Context, req *todov1.MoveItemRequest) (*todov1.ItemsResponse, error) {
	items, err := s.svc.MoveItem(ctx, req.ListId, req.ItemId, int(req.NewIndex))
	if err != nil {
		return nil, s.fail("MoveItem", err)
	}
	return &todov1.ItemsResponse{Items: mapItems(items)}, nil
}

func (s *TodoServiceServer) ReorderItems(ctx context.Context, req *todov1.ReorderItemsRequest) (*todov1.ItemsResponse, error) {
	items, err := s.svc.ReorderItems(ctx, req.ListId, mapPatch(req.Order))
	if err != nil {
		return nil, s.fail("ReorderItems", err)
	}
	return &todov1.ItemsResponse{Items: mapItems(items)}, nil
}

func (s *TodoServiceServer) SupportedColours(ctx context.Context, req *todov1.SupportedColoursRequest) (*todov1.SupportedColoursResponse, error) {
	colours := s.svc.SupportedColours()
	out := make([]*todov1.Colour, len(colours))
	for i, c := range colours {
		out[i] = mapColour(c)
	}
	return &todov1.SupportedColoursResponse{Colours: out}, nil
}

// fail logs unexpected errors and converts err to a gRPC status.
func (s *TodoServiceServer) fail(method string, err error) error {
	st := mapDomainError(err)
	if status.Code(st) == codes.Internal {
		s.logger.Error("request failed",
			zap.String("method", method),
			zap.Error(err),
		)
	}
	return st
}

func mapDomainError(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrTitleTooLong),
		errors.Is(err, domain.ErrNoteTooLong),
		errors.Is(err, domain.ErrInvalidOwnerID),
		errors.Is(err, domain.ErrInvalidListID),
		errors.Is(err, domain.ErrInvalidPriority),
		errors.Is(err, domain.ErrUnsupportedColour),
		errors.Is(err, domain.ErrInvalidOrderIndex),
		errors.Is(err, domain.ErrReminderInPast):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrListNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, queue.ErrQueueFull):
		return status.Error(codes.ResourceExhausted, "too many pending writes, retry later")
	case errors.Is(err, queue.ErrQueueClosed):
		return status.Error(codes.Unavailable, "server is shutting down")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "request timed out")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

func mapPatch(order map[string]int32) map[string]int {
	patch := make(map[string]int, len(order))
	for id, idx := range order {
		patch[id] = int(idx)
	}
	return patch
}

func mapColour(c domain.Colour) *todov1.Colour {
	return &todov1.Colour{Code: c.Code, Name: c.Name}
}

func mapList(l *domain.TodoList) *todov1.TodoList {
	return &todov1.TodoList{
		Id:         l.ID,
		OwnerId:    l.OwnerID,
		Title:      l.Title,
		Colour:     mapColour(l.Colour),
		OrderIndex: int32(l.OrderIndex),
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func mapLists(lists []*domain.TodoList) []*todov1.TodoList {
	out := make([]*todov1.TodoList, len(lists))
	for i, l := range lists {
		out[i] = mapList(l)
	}
	return out
}

func mapItem(it *domain.Item) *todov1.Item {
	return &todov1.Item{
		Id:         it.ID,
		ListId:     it.ListID,
		Title:      it.Title,
		Note:       it.Note,
		Priority:   mapDomainPriority(it.Priority),
		Reminder:   it.Reminder,
		Done:       it.Done,
		OrderIndex: int32(it.OrderIndex),
		CreatedAt:  it.CreatedAt,
		UpdatedAt:  it.UpdatedAt,
	}
}

func mapItems(items []*domain.Item) []*todov1.Item {
	out := make([]*todov1.Item, len(items))
	for i, it := range items {
		out[i] = mapItem(it)
	}
	return out
}

func mapDomainPriority(p domain.Priority) todov1.Priority {
	switch p {
	case domain.PriorityLow:
		return todov1.Priority_PRIORITY_LOW
	case domain.PriorityMedium:
		return todov1.Priority_PRIORITY_MEDIUM
	case domain.PriorityHigh:
		return todov1.Priority_PRIORITY_HIGH
	case domain.PriorityCritical:
		return todov1.Priority_PRIORITY_CRITICAL
	default:
		return todov1.Priority_PRIORITY_UNSPECIFIED
	}
}

func mapProtoPriority(p todov1.Priority) domain.Priority {
	switch p {
	case todov1.Priority_PRIORITY_LOW:
		return domain.PriorityLow
	case todov1.Priority_PRIORITY_HIGH:
		return domain.PriorityHigh
	case todov1.Priority_PRIORITY_CRITICAL:
		return domain.PriorityCritical
	default:
		return domain.PriorityMedium
	}
}
