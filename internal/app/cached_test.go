package app

import (
	"testing"
	"time"

	"github.com/dmehra2102/todoboard/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newCachedService(t *testing.T) (*CachedTodoService, *TodoService, *memRepo) {
	t.Helper()
	svc, repo := newTestService(t)
	cached := NewCachedTodoService(svc, cache.Config{MaxSize: 100, TTL: time.Minute}, zaptest.NewLogger(t))
	svc.OnOrderPersisted(cached.Invalidate)
	return cached, svc, repo
}

func TestCached_GetUserListsHitsRepoOnce(t *testing.T) {
	cached, _, repo := newCachedService(t)
	repo.addList("a", "u1", 0)

	for i := 0; i < 3; i++ {
		lists, err := cached.GetUserLists(asUser("u1"))
		require.NoError(t, err)
		assert.Len(t, lists, 1)
	}
	assert.Equal(t, 1, repo.listReads)
}

func TestCached_KeysArePerUser(t *testing.T) {
	cached, _, repo := newCachedService(t)
	repo.addList("a", "u1", 0)
	repo.addItems("a", "A")

	_, err := cached.ListItems(asUser("u1"), "a", 1, 10)
	require.NoError(t, err)

	_, err = cached.ListItems(asUser("u2"), "a", 1, 10)
	assert.Error(t, err)
}

func TestCached_ItemWriteInvalidatesList(t *testing.T) {
	cached, _, repo := newCachedService(t)
	repo.addList("l1", "u1", 0)
	repo.addItems("l1", "A", "B", "C")

	page, err := cached.ListItems(asUser("u1"), "l1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, itemIDs(page.Items))

	_, err = cached.MoveItem(asUser("u1"), "l1", "C", 0)
	require.NoError(t, err)

	page, err = cached.ListItems(asUser("u1"), "l1", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, itemIDs(page.Items))
}

func TestCached_AdminEditDropsOwnerView(t *testing.T) {
	cached, _, repo := newCachedService(t)
	repo.addList("l1", "u1", 0)

	lists, err := cached.GetUserLists(asUser("u1"))
	require.NoError(t, err)
	assert.Equal(t, "l1", lists[0].Title)

	_, err = cached.UpdateListTitle(asUser("root", "admin"), "l1", "Renamed")
	require.NoError(t, err)

	lists, err = cached.GetUserLists(asUser("u1"))
	require.NoError(t, err)
	assert.Equal(t, "Renamed", lists[0].Title)
}

func TestCached_CreateListInvalidatesCaller(t *testing.T) {
	cached, _, repo := newCachedService(t)
	repo.addList("a", "u1", 0)

	_, err := cached.GetUserLists(asUser("u1"))
	require.NoError(t, err)

	_, err = cached.CreateList(asUser("u1"), "Second", "")
	require.NoError(t, err)

	lists, err := cached.GetUserLists(asUser("u1"))
	require.NoError(t, err)
	assert.Len(t, lists, 2)
}

func TestCached_PersistHookInvalidates(t *testing.T) {
	cached, svc, repo := newCachedService(t)
	repo.addList("l1", "u1", 0)
	repo.addItems("l1", "A", "B")

	_, err := cached.GetList(asUser("u1"), "l1")
	require.NoError(t, err)
	assert.Equal(t, 1, cached.list.Len())

	// Bypass the decorator: only the persistence hook can drop the entry.
	_, err = svc.MoveItem(asUser("u1"), "l1", "A", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, cached.list.Len())
}
