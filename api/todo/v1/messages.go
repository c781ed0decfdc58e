package todov1

import "time"

type Priority int32

const (
	Priority_PRIORITY_UNSPECIFIED Priority = 0
	Priority_PRIORITY_LOW         Priority = 1
	Priority_PRIORITY_MEDIUM      Priority = 2
	Priority_PRIORITY_HIGH        Priority = 3
	Priority_PRIORITY_CRITICAL    Priority = 4
)

type Colour struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type TodoList struct {
	Id         string    `json:"id"`
	OwnerId    string    `json:"owner_id"`
	Title      string    `json:"title"`
	Colour     *Colour   `json:"colour,omitempty"`
	OrderIndex int32     `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Item struct {
	Id         string     `json:"id"`
	ListId     string     `json:"list_id"`
	Title      string     `json:"title"`
	Note       string     `json:"note,omitempty"`
	Priority   Priority   `json:"priority"`
	Reminder   *time.Time `json:"reminder,omitempty"`
	Done       bool       `json:"done"`
	OrderIndex int32      `json:"order_index"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type PageInfo struct {
	Page       int32 `json:"page"`
	PageSize   int32 `json:"page_size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int32 `json:"total_pages"`
}

type GetUserListsRequest struct{}

type GetUserListsResponse struct {
	Lists []*TodoList `json:"lists"`
}

type GetListRequest struct {
	ListId string `json:"list_id"`
}

type GetListResponse struct {
	List *TodoList `json:"list"`
}

type CreateListRequest struct {
	Title      string `json:"title"`
	ColourCode string `json:"colour_code,omitempty"`
}

type CreateListResponse struct {
	List *TodoList `json:"list"`
}

type DeleteListRequest struct {
	ListId string `json:"list_id"`
}

type DeleteListResponse struct {
	Success bool `json:"success"`
}

type UpdateListTitleRequest struct {
	ListId string `json:"list_id"`
	Title  string `json:"title"`
}

type UpdateListColourRequest struct {
	ListId     string `json:"list_id"`
	ColourCode string `json:"colour_code"`
}

type UpdateListResponse struct {
	List *TodoList `json:"list"`
}

type MoveListRequest struct {
	ListId   string `json:"list_id"`
	NewIndex int32  `json:"new_index"`
}

type ReorderListsRequest struct {
	// Order maps list id to its new order index. Ids that are not the
	// caller's lists are ignored.
	Order map[string]int32 `json:"order"`
}

type ReorderListsResponse struct {
	Lists []*TodoList `json:"lists"`
}

type ListItemsRequest struct {
	ListId   string `json:"list_id"`
	Page     int32  `json:"page"`
	PageSize int32  `json:"page_size"`
}

type ListItemsResponse struct {
	Items    []*Item   `json:"items"`
	PageInfo *PageInfo `json:"page_info"`
}

type GetItemRequest struct {
	ListId string `json:"list_id"`
	ItemId string `json:"item_id"`
}

type CreateItemRequest struct {
	ListId   string   `json:"list_id"`
	Title    string   `json:"title"`
	Note     string   `json:"note,omitempty"`
	Priority Priority `json:"priority"`
}

type ItemResponse struct {
	Item *Item `json:"item"`
}

type DeleteItemRequest struct {
	ListId string `json:"list_id"`
	ItemId string `json:"item_id"`
}

type DeleteItemResponse struct {
	Success bool `json:"success"`
}

type ToggleItemDoneRequest struct {
	ListId string `json:"list_id"`
	ItemId string `json:"item_id"`
}

type UpdateItemPriorityRequest struct {
	ListId   string   `json:"list_id"`
	ItemId   string   `json:"item_id"`
	Priority Priority `json:"priority"`
}

type UpdateItemDescriptionRequest struct {
	ListId string `json:"list_id"`
	ItemId string `json:"item_id"`
	Title  string `json:"title,omitempty"`
	Note   string `json:"note,omitempty"`
}

type SetItemReminderRequest struct {
	ListId   string     `json:"list_id"`
	ItemId   string     `json:"item_id"`
	Reminder *time.Time `json:"reminder,omitempty"`
}

type MoveItemRequest struct {
	ListId   string `json:"list_id"`
	ItemId   string `json:"item_id"`
	NewIndex int32  `json:"new_index"`
}

type ReorderItemsRequest struct {
	ListId string           `json:"list_id"`
	Order  map[string]int32 `json:"order"`
}

type ItemsResponse struct {
	Items []*Item `json:"items"`
}

type SupportedColoursRequest struct{}

type SupportedColoursResponse struct {
	Colours []*Colour `json:"colours"`
}
