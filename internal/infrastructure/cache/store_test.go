package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetSet(t *testing.T) {
	s := NewStore[string]("test-getset", Config{MaxSize: 10, TTL: time.Minute})

	_, ok := s.Get("k")
	assert.False(t, ok)

	s.Set("k", "v", "user:1")
	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	assert.Equal(t, 1.0, testutil.ToFloat64(cacheLookupsTotal.WithLabelValues("test-getset", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(cacheLookupsTotal.WithLabelValues("test-getset", "miss")))
}

func TestStore_InvalidateScope(t *testing.T) {
	s := NewStore[int]("test-scope", Config{MaxSize: 10, TTL: time.Minute})

	s.Set("lists:u1", 1, "user:u1")
	s.Set("items:l1:p1", 2, "user:u1", "list:l1")
	s.Set("items:l2:p1", 3, "user:u1", "list:l2")
	s.Set("lists:u2", 4, "user:u2")

	s.Invalidate("list:l1")
	_, ok := s.Get("items:l1:p1")
	assert.False(t, ok)
	_, ok = s.Get("items:l2:p1")
	assert.True(t, ok)

	s.Invalidate("user:u1")
	assert.Equal(t, 1, s.Len())
	_, ok = s.Get("lists:u2")
	assert.True(t, ok)
}

func TestStore_InvalidateUnknownScope(t *testing.T) {
	s := NewStore[int]("test-unknown", Config{MaxSize: 10, TTL: time.Minute})
	s.Set("a", 1, "x")

	s.Invalidate("nope")
	assert.Equal(t, 1, s.Len())
}

func TestStore_Expires(t *testing.T) {
	s := NewStore[int]("test-ttl", Config{MaxSize: 10, TTL: 20 * time.Millisecond})
	s.Set("a", 1)

	assert.Eventually(t, func() bool {
		_, ok := s.Get("a")
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestStore_EvictedKeysLeaveRegistry(t *testing.T) {
	s := NewStore[int]("test-evict", Config{MaxSize: 10, TTL: time.Minute})

	for i := 0; i < 10000; i++ {
		s.Set(fmt.Sprintf("items:l1:%d:20", i), i, "list:l1", "user:u1")
	}

	assert.Equal(t, 10, s.Len())
	assert.Equal(t, 10, s.trackedKeys())
	assert.Len(t, s.scopes["list:l1"], 10)

	s.Invalidate("list:l1")
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.trackedKeys())
	assert.Empty(t, s.scopes)
}

func TestStore_ExpiredKeysLeaveRegistry(t *testing.T) {
	s := NewStore[int]("test-expire-registry", Config{MaxSize: 10, TTL: 20 * time.Millisecond})
	s.Set("a", 1, "x")
	s.Set("b", 2, "x", "y")

	assert.Eventually(t, func() bool {
		return s.trackedKeys() == 0
	}, time.Second, 10*time.Millisecond)
	assert.Empty(t, s.scopes)
}

func TestStore_ResetKeepsLatestScopes(t *testing.T) {
	s := NewStore[int]("test-rescope", Config{MaxSize: 10, TTL: time.Minute})
	s.Set("k", 1, "old")
	s.Set("k", 2, "new")

	s.Invalidate("old")
	v, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	s.Invalidate("new")
	_, ok = s.Get("k")
	assert.False(t, ok)
}
