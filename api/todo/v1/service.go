package todov1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "todoboard.v1.TodoService"

const (
	TodoService_GetUserLists_FullMethodName          = "/todoboard.v1.TodoService/GetUserLists"
	TodoService_GetList_FullMethodName               = "/todoboard.v1.TodoService/GetList"
	TodoService_CreateList_FullMethodName            = "/todoboard.v1.TodoService/CreateList"
	TodoService_DeleteList_FullMethodName            = "/todoboard.v1.TodoService/DeleteList"
	TodoService_UpdateListTitle_FullMethodName       = "/todoboard.v1.TodoService/UpdateListTitle"
	TodoService_UpdateListColour_FullMethodName      = "/todoboard.v1.TodoService/UpdateListColour"
	TodoService_MoveList_FullMethodName              = "/todoboard.v1.TodoService/MoveList"
	TodoService_ReorderLists_FullMethodName          = "/todoboard.v1.TodoService/ReorderLists"
	TodoService_ListItems_FullMethodName             = "/todoboard.v1.TodoService/ListItems"
	TodoService_GetItem_FullMethodName               = "/todoboard.v1.TodoService/GetItem"
	TodoService_CreateItem_FullMethodName            = "/todoboard.v1.TodoService/CreateItem"
	TodoService_DeleteItem_FullMethodName            = "/todoboard.v1.TodoService/DeleteItem"
	TodoService_ToggleItemDone_FullMethodName        = "/todoboard.v1.TodoService/ToggleItemDone"
	TodoService_UpdateItemPriority_FullMethodName    = "/todoboard.v1.TodoService/UpdateItemPriority"
	TodoService_UpdateItemDescription_FullMethodName = "/todoboard.v1.TodoService/UpdateItemDescription"
	TodoService_SetItemReminder_FullMethodName       = "/todoboard.v1.TodoService/SetItemReminder"
	TodoService_MoveItem_FullMethodName              = "/todoboard.v1.TodoService/MoveItem"
	TodoService_ReorderItems_FullMethodName          = "/todoboard.v1.TodoService/ReorderItems"
	TodoService_SupportedColours_FullMethodName      = "/todoboard.v1.TodoService/SupportedColours"
)

// TodoServiceServer is the server API for TodoService.
type TodoServiceServer interface {
	GetUserLists(context.Context, *GetUserListsRequest) (*GetUserListsResponse, error)
	GetList(context.Context, *GetListRequest) (*GetListResponse, error)
	CreateList(context.Context, *CreateListRequest) (*CreateListResponse, error)
	DeleteList(context.Context, *DeleteListRequest) (*DeleteListResponse, error)
	UpdateListTitle(context.Context, *UpdateListTitleRequest) (*UpdateListResponse, error)
	UpdateListColour(context.Context, *UpdateListColourRequest) (*UpdateListResponse, error)
	MoveList(context.Context, *MoveListRequest) (*ReorderListsResponse, error)
	ReorderLists(context.Context, *ReorderListsRequest) (*ReorderListsResponse, error)
	ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error)
	GetItem(context.Context, *GetItemRequest) (*ItemResponse, error)
	CreateItem(context.Context, *CreateItemRequest) (*ItemResponse, error)
	DeleteItem(context.Context, *DeleteItemRequest) (*DeleteItemResponse, error)
	ToggleItemDone(context.Context, *ToggleItemDoneRequest) (*ItemResponse, error)
	UpdateItemPriority(context.Context, *UpdateItemPriorityRequest) (*ItemResponse, error)
	UpdateItemDescription(context.Context, *UpdateItemDescriptionRequest) (*ItemResponse, error)
	SetItemReminder(context.Context, *SetItemReminderRequest) (*ItemResponse, error)
	MoveItem(context.Context, *MoveItemRequest) (*ItemsResponse, error)
	ReorderItems(context.Context, *ReorderItemsRequest) (*ItemsResponse, error)
	SupportedColours(context.Context, *SupportedColoursRequest) (*SupportedColoursResponse, error)
}

// UnimplementedTodoServiceServer can be embedded to have forward compatible
// implementations.
type UnimplementedTodoServiceServer struct{}

func (UnimplementedTodoServiceServer) GetUserLists(context.Context, *GetUserListsRequest) (*GetUserListsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetUserLists not implemented")
}

func (UnimplementedTodoServiceServer) GetList(context.Context, *GetListRequest) (*GetListResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetList not implemented")
}

func (UnimplementedTodoServiceServer) CreateList(context.Context, *CreateListRequest) (*CreateListResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateList not implemented")
}

func (UnimplementedTodoServiceServer) DeleteList(context.Context, *DeleteListRequest) (*DeleteListResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteList not implemented")
}

func (UnimplementedTodoServiceServer) UpdateListTitle(context.Context, *UpdateListTitleRequest) (*UpdateListResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateListTitle not implemented")
}

func (UnimplementedTodoServiceServer) UpdateListColour(context.Context, *UpdateListColourRequest) (*UpdateListResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateListColour not implemented")
}

func (UnimplementedTodoServiceServer) MoveList(context.Context, *MoveListRequest) (*ReorderListsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MoveList not implemented")
}

func (UnimplementedTodoServiceServer) ReorderLists(context.Context, *ReorderListsRequest) (*ReorderListsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReorderLists not implemented")
}

func (UnimplementedTodoServiceServer) ListItems(context.Context, *ListItemsRequest) (*ListItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListItems not implemented")
}

func (UnimplementedTodoServiceServer) GetItem(context.Context, *GetItemRequest) (*ItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetItem not implemented")
}

func (UnimplementedTodoServiceServer) CreateItem(context.Context, *CreateItemRequest) (*ItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateItem not implemented")
}

func (UnimplementedTodoServiceServer) DeleteItem(context.Context, *DeleteItemRequest) (*DeleteItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteItem not implemented")
}

func (UnimplementedTodoServiceServer) ToggleItemDone(context.Context, *ToggleItemDoneRequest) (*ItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ToggleItemDone not implemented")
}

func (UnimplementedTodoServiceServer) UpdateItemPriority(context.Context, *UpdateItemPriorityRequest) (*ItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateItemPriority not implemented")
}

func (UnimplementedTodoServiceServer) UpdateItemDescription(context.Context, *UpdateItemDescriptionRequest) (*ItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UpdateItemDescription not implemented")
}

func (UnimplementedTodoServiceServer) SetItemReminder(context.Context, *SetItemReminderRequest) (*ItemResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SetItemReminder not implemented")
}

func (UnimplementedTodoServiceServer) MoveItem(context.Context, *MoveItemRequest) (*ItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MoveItem not implemented")
}

func (UnimplementedTodoServiceServer) ReorderItems(context.Context, *ReorderItemsRequest) (*ItemsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReorderItems not implemented")
}

func (UnimplementedTodoServiceServer) SupportedColours(context.Context, *SupportedColoursRequest) (*SupportedColoursResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SupportedColours not implemented")
}

func RegisterTodoServiceServer(s grpc.ServiceRegistrar, srv TodoServiceServer) {
	s.RegisterService(&TodoService_ServiceDesc, srv)
}

// unaryHandler adapts a typed method to a grpc method handler, decoding the
// request and routing it through the server's interceptor chain.
func unaryHandler[Req, Resp any](fullMethod string, call func(TodoServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TodoServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TodoServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var TodoService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TodoServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetUserLists",
			Handler:    unaryHandler(TodoService_GetUserLists_FullMethodName, TodoServiceServer.GetUserLists),
		},
		{
			MethodName: "GetList",
			Handler:    unaryHandler(TodoService_GetList_FullMethodName, TodoServiceServer.GetList),
		},
		{
			MethodName: "CreateList",
			Handler:    unaryHandler(TodoService_CreateList_FullMethodName, TodoServiceServer.CreateList),
		},
		{
			MethodName: "DeleteList",
			Handler:    unaryHandler(TodoService_DeleteList_FullMethodName, TodoServiceServer.DeleteList),
		},
		{
			MethodName: "UpdateListTitle",
			Handler:    unaryHandler(TodoService_UpdateListTitle_FullMethodName, TodoServiceServer.UpdateListTitle),
		},
		{
			MethodName: "UpdateListColour",
			Handler:    unaryHandler(TodoService_UpdateListColour_FullMethodName, TodoServiceServer.UpdateListColour),
		},
		{
			MethodName: "MoveList",
			Handler:    unaryHandler(TodoService_MoveList_FullMethodName, TodoServiceServer.MoveList),
		},
		{
			MethodName: "ReorderLists",
			Handler:    unaryHandler(TodoService_ReorderLists_FullMethodName, TodoServiceServer.ReorderLists),
		},
		{
			MethodName: "ListItems",
			Handler:    unaryHandler(TodoService_ListItems_FullMethodName, TodoServiceServer.ListItems),
		},
		{
			MethodName: "GetItem",
			Handler:    unaryHandler(TodoService_GetItem_FullMethodName, TodoServiceServer.GetItem),
		},
		{
			MethodName: "CreateItem",
			Handler:    unaryHandler(TodoService_CreateItem_FullMethodName, TodoServiceServer.CreateItem),
		},
		{
			MethodName: "DeleteItem",
			Handler:    unaryHandler(TodoService_DeleteItem_FullMethodName, TodoServiceServer.DeleteItem),
		},
		{
			MethodName: "ToggleItemDone",
			Handler:    unaryHandler(TodoService_ToggleItemDone_FullMethodName, TodoServiceServer.ToggleItemDone),
		},
		{
			MethodName: "UpdateItemPriority",
			Handler:    unaryHandler(TodoService_UpdateItemPriority_FullMethodName, TodoServiceServer.UpdateItemPriority),
		},
		{
			MethodName: "UpdateItemDescription",
			Handler:    unaryHandler(TodoService_UpdateItemDescription_FullMethodName, TodoServiceServer.UpdateItemDescription),
		},
		{
			MethodName: "SetItemReminder",
			Handler:    unaryHandler(TodoService_SetItemReminder_FullMethodName, TodoServiceServer.SetItemReminder),
		},
		{
			MethodName: "MoveItem",
			Handler:    unaryHandler(TodoService_MoveItem_FullMethodName, TodoServiceServer.MoveItem),
		},
		{
			MethodName: "ReorderItems",
			Handler:    unaryHandler(TodoService_ReorderItems_FullMethodName, TodoServiceServer.ReorderItems),
		},
		{
			MethodName: "SupportedColours",
			Handler:    unaryHandler(TodoService_SupportedColours_FullMethodName, TodoServiceServer.SupportedColours),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "todoboard/v1/todo.proto",
}

// TodoServiceClient is the client API for TodoService. Every call is sent
// with the JSON content-subtype.
type TodoServiceClient interface {
	GetUserLists(ctx context.Context, in *GetUserListsRequest, opts ...grpc.CallOption) (*GetUserListsResponse, error)
	GetList(ctx context.Context, in *GetListRequest, opts ...grpc.CallOption) (*GetListResponse, error)
	CreateList(ctx context.Context, in *CreateListRequest, opts ...grpc.CallOption) (*CreateListResponse, error)
	DeleteList(ctx context.Context, in *DeleteListRequest, opts ...grpc.CallOption) (*DeleteListResponse, error)
	UpdateListTitle(ctx context.Context, in *UpdateListTitleRequest, opts ...grpc.CallOption) (*UpdateListResponse, error)
	UpdateListColour(ctx context.Context, in *UpdateListColourRequest, opts ...grpc.CallOption) (*UpdateListResponse, error)
	MoveList(ctx context.Context, in *MoveListRequest, opts ...grpc.CallOption) (*ReorderListsResponse, error)
	ReorderLists(ctx context.Context, in *ReorderListsRequest, opts ...grpc.CallOption) (*ReorderListsResponse, error)
	ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error)
	GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*ItemResponse, error)
	CreateItem(ctx context.Context, in *CreateItemRequest, opts ...grpc.CallOption) (*ItemResponse, error)
	DeleteItem(ctx context.Context, in *DeleteItemRequest, opts ...grpc.CallOption) (*DeleteItemResponse, error)
	ToggleItemDone(ctx context.Context, in *ToggleItemDoneRequest, opts ...grpc.CallOption) (*ItemResponse, error)
	UpdateItemPriority(ctx context.Context, in *UpdateItemPriorityRequest, opts ...grpc.CallOption) (*ItemResponse, error)
	UpdateItemDescription(ctx context.Context, in *UpdateItemDescriptionRequest, opts ...grpc.CallOption) (*ItemResponse, error)
	SetItemReminder(ctx context.Context, in *SetItemReminderRequest, opts ...grpc.CallOption) (*ItemResponse, error)
	MoveItem(ctx context.Context, in *MoveItemRequest, opts ...grpc.CallOption) (*ItemsResponse, error)
	ReorderItems(ctx context.Context, in *ReorderItemsRequest, opts ...grpc.CallOption) (*ItemsResponse, error)
	SupportedColours(ctx context.Context, in *SupportedColoursRequest, opts ...grpc.CallOption) (*SupportedColoursResponse, error)
}

type todoServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTodoServiceClient(cc grpc.ClientConnInterface) TodoServiceClient {
	return &todoServiceClient{cc}
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *todoServiceClient) GetUserLists(ctx context.Context, in *GetUserListsRequest, opts ...grpc.CallOption) (*GetUserListsResponse, error) {
	out := new(GetUserListsResponse)
	if err := c.cc.Invoke(ctx, TodoService_GetUserLists_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) GetList(ctx context.Context, in *GetListRequest, opts ...grpc.CallOption) (*GetListResponse, error) {
	out := new(GetListResponse)
	if err := c.cc.Invoke(ctx, TodoService_GetList_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) CreateList(ctx context.Context, in *CreateListRequest, opts ...grpc.CallOption) (*CreateListResponse, error) {
	out := new(CreateListResponse)
	if err := c.cc.Invoke(ctx, TodoService_CreateList_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) DeleteList(ctx context.Context, in *DeleteListRequest, opts ...grpc.CallOption) (*DeleteListResponse, error) {
	out := new(DeleteListResponse)
	if err := c.cc.Invoke(ctx, TodoService_DeleteList_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) UpdateListTitle(ctx context.Context, in *UpdateListTitleRequest, opts ...grpc.CallOption) (*UpdateListResponse, error) {
	out := new(UpdateListResponse)
	if err := c.cc.Invoke(ctx, TodoService_UpdateListTitle_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) UpdateListColour(ctx context.Context, in *UpdateListColourRequest, opts ...grpc.CallOption) (*UpdateListResponse, error) {
	out := new(UpdateListResponse)
	if err := c.cc.Invoke(ctx, TodoService_UpdateListColour_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) MoveList(ctx context.Context, in *MoveListRequest, opts ...grpc.CallOption) (*ReorderListsResponse, error) {
	out := new(ReorderListsResponse)
	if err := c.cc.Invoke(ctx, TodoService_MoveList_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) ReorderLists(ctx context.Context, in *ReorderListsRequest, opts ...grpc.CallOption) (*ReorderListsResponse, error) {
	out := new(ReorderListsResponse)
	if err := c.cc.Invoke(ctx, TodoService_ReorderLists_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) ListItems(ctx context.Context, in *ListItemsRequest, opts ...grpc.CallOption) (*ListItemsResponse, error) {
	out := new(ListItemsResponse)
	if err := c.cc.Invoke(ctx, TodoService_ListItems_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) GetItem(ctx context.Context, in *GetItemRequest, opts ...grpc.CallOption) (*ItemResponse, error) {
	out := new(ItemResponse)
	if err := c.cc.Invoke(ctx, TodoService_GetItem_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) CreateItem(ctx context.Context, in *CreateItemRequest, opts ...grpc.CallOption) (*ItemResponse, error) {
	out := new(ItemResponse)
	if err := c.cc.Invoke(ctx, TodoService_CreateItem_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) DeleteItem(ctx context.Context, in *DeleteItemRequest, opts ...grpc.CallOption) (*DeleteItemResponse, error) {
	out := new(DeleteItemResponse)
	if err := c.cc.Invoke(ctx, TodoService_DeleteItem_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) ToggleItemDone(ctx context.Context, in *ToggleItemDoneRequest, opts ...grpc.CallOption) (*ItemResponse, error) {
	out := new(ItemResponse)
	if err := c.cc.Invoke(ctx, TodoService_ToggleItemDone_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) UpdateItemPriority(ctx context.Context, in *UpdateItemPriorityRequest, opts ...grpc.CallOption) (*ItemResponse, error) {
	out := new(ItemResponse)
	if err := c.cc.Invoke(ctx, TodoService_UpdateItemPriority_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) UpdateItemDescription(ctx context.Context, in *UpdateItemDescriptionRequest, opts ...grpc.CallOption) (*ItemResponse, error) {
	out := new(ItemResponse)
	if err := c.cc.Invoke(ctx, TodoService_UpdateItemDescription_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) SetItemReminder(ctx context.Context, in *SetItemReminderRequest, opts ...grpc.CallOption) (*ItemResponse, error) {
	out := new(ItemResponse)
	if err := c.cc.Invoke(ctx, TodoService_SetItemReminder_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) MoveItem(ctx context.Context, in *MoveItemRequest, opts ...grpc.CallOption) (*ItemsResponse, error) {
	out := new(ItemsResponse)
	if err := c.cc.Invoke(ctx, TodoService_MoveItem_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) ReorderItems(ctx context.Context, in *ReorderItemsRequest, opts ...grpc.CallOption) (*ItemsResponse, error) {
	out := new(ItemsResponse)
	if err := c.cc.Invoke(ctx, TodoService_ReorderItems_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *todoServiceClient) SupportedColours(ctx context.Context, in *SupportedColoursRequest, opts ...grpc.CallOption) (*SupportedColoursResponse, error) {
	out := new(SupportedColoursResponse)
	if err := c.cc.Invoke(ctx, TodoService_SupportedColours_FullMethodName, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
