package order

import (
	"testing"

	"github.com/dmehra2102/todoboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newItems(names ...string) []*domain.Item {
	out := make([]*domain.Item, 0, len(names))
	for i, s := range names {
		item := &domain.Item{ID: s, OrderIndex: i}
		if len(s) > 1 && s[len(s)-1] == '+' {
			item.ID = s[:len(s)-1]
			item.Done = true
		}
		out = append(out, item)
	}
	return out
}

func newLists(names ...string) []*domain.TodoList {
	out := make([]*domain.TodoList, len(names))
	for i, n := range names {
		out[i] = &domain.TodoList{ID: n, OrderIndex: i}
	}
	return out
}

func TestService_ReorderItems(t *testing.T) {
	svc := NewService(zaptest.NewLogger(t))
	items := newItems("A", "B", "C", "D+")
	alias := items[:2]

	svc.ReorderItems(items, "C", 0)

	assert.Equal(t, []string{"C", "A", "B", "D"}, ids(items))
	assert.Equal(t, []int{0, 1, 2, 3}, indices(items))
	assert.Equal(t, []string{"C", "A"}, ids(alias), "caller's backing array is rewritten in place")
}

func TestService_ReorderItems_DoneItemReturnsToBottom(t *testing.T) {
	svc := NewService(nil)
	items := newItems("A", "B", "C+")

	svc.ReorderItems(items, "C", 0)

	assert.Equal(t, []string{"A", "B", "C"}, ids(items))
	assert.Equal(t, []int{0, 1, 2}, indices(items))
}

func TestService_ReorderItems_PendingItemCannotSinkBelowDone(t *testing.T) {
	svc := NewService(nil)
	items := newItems("A", "B", "C+", "D+")

	svc.ReorderItems(items, "A", 3)

	assert.Equal(t, []string{"B", "A", "C", "D"}, ids(items))
	assert.Equal(t, []int{0, 1, 2, 3}, indices(items))
}

func TestService_ReorderItems_Clamps(t *testing.T) {
	svc := NewService(nil)

	low := newItems("A", "B", "C")
	svc.ReorderItems(low, "B", -5)
	assert.Equal(t, []string{"B", "A", "C"}, ids(low))

	high := newItems("A", "B", "C")
	svc.ReorderItems(high, "A", 999)
	assert.Equal(t, []string{"B", "C", "A"}, ids(high))
}

func TestService_ReorderItems_MissingIDOnlyRebuckets(t *testing.T) {
	svc := NewService(zaptest.NewLogger(t))

	sorted := newItems("A", "B", "C+")
	svc.ReorderItems(sorted, "ghost", 0)
	assert.Equal(t, []string{"A", "B", "C"}, ids(sorted))
	assert.Equal(t, []int{0, 1, 2}, indices(sorted))

	unsorted := newItems("A+", "B")
	svc.ReorderItems(unsorted, "ghost", 0)
	assert.Equal(t, []string{"B", "A"}, ids(unsorted))
}

func TestService_ReorderItems_Empty(t *testing.T) {
	svc := NewService(nil)
	var items []*domain.Item

	svc.ReorderItems(items, "A", 0)
	assert.Empty(t, items)
}

func TestService_ReorderLists(t *testing.T) {
	svc := NewService(zaptest.NewLogger(t))
	lists := newLists("work", "home", "groceries")

	svc.ReorderLists(lists, "groceries", 0)

	assert.Equal(t, []string{"groceries", "work", "home"}, ids(lists))
	assert.Equal(t, []int{0, 1, 2}, indices(lists))
}

func TestService_ReorderLists_MissingIDIsNoop(t *testing.T) {
	svc := NewService(nil)
	lists := newLists("work", "home")

	svc.ReorderLists(lists, "ghost", 0)

	assert.Equal(t, []string{"work", "home"}, ids(lists))
	assert.Equal(t, []int{0, 1}, indices(lists))
}

func TestService_RebucketItems(t *testing.T) {
	svc := NewService(nil)
	items := newItems("A+", "B", "C+", "D")

	svc.RebucketItems(items)

	assert.Equal(t, []string{"B", "D", "A", "C"}, ids(items))
	require.NoError(t, CheckContiguous(items))
}

func TestRemoveAndCompact(t *testing.T) {
	items := newItems("A", "B", "C", "D")

	rest := RemoveAndCompact(items, "B")

	assert.Equal(t, []string{"A", "C", "D"}, ids(rest))
	assert.Equal(t, []int{0, 1, 2}, indices(rest))
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(items), "input order is untouched")
}

func TestRemoveAndCompact_UnknownID(t *testing.T) {
	items := newItems("A", "B")
	items[1].OrderIndex = 5

	rest := RemoveAndCompact(items, "Z")

	assert.Equal(t, []string{"A", "B"}, ids(rest))
	assert.Equal(t, []int{0, 1}, indices(rest))
}
