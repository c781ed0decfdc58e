package cache

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "read_cache_lookups_total",
			Help: "Read cache lookups by cache name and result",
		},
		[]string{"cache", "result"},
	)

	cacheInvalidationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "read_cache_invalidated_keys_total",
			Help: "Keys removed from the read cache by scope invalidation",
		},
		[]string{"cache"},
	)
)

type Config struct {
	MaxSize int
	TTL     time.Duration
}

// Store is a TTL-bounded LRU keyed by string. Each key is registered under a
// scope (a user or a list) so a write can drop every key it affects. The
// registry belongs to the Store; there is no process-wide key list.
//
// Lock order is mu, then the LRU's own lock, then evictMu. The eviction
// callback runs under the LRU lock, so it only queues the key; the registry is
// cleaned up the next time mu is taken.
type Store[V any] struct {
	name string
	lru  *expirable.LRU[string, V]

	mu        sync.Mutex
	scopes    map[string]map[string]struct{}
	keyScopes map[string][]string

	evictMu sync.Mutex
	evicted []string
}

func NewStore[V any](name string, cfg Config) *Store[V] {
	size := cfg.MaxSize
	if size <= 0 {
		size = 1000
	}
	s := &Store[V]{
		name:      name,
		scopes:    make(map[string]map[string]struct{}),
		keyScopes: make(map[string][]string),
	}
	s.lru = expirable.NewLRU[string, V](size, s.onEvict, cfg.TTL)
	return s
}

func (s *Store[V]) Get(key string) (V, bool) {
	v, ok := s.lru.Get(key)
	if ok {
		cacheLookupsTotal.WithLabelValues(s.name, "hit").Inc()
	} else {
		cacheLookupsTotal.WithLabelValues(s.name, "miss").Inc()
	}
	return v, ok
}

// Set stores value under key and records key against every given scope,
// replacing any scopes the key had before.
func (s *Store[V]) Set(key string, value V, scopes ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reapLocked()

	s.forgetLocked(key)
	for _, scope := range scopes {
		keys, ok := s.scopes[scope]
		if !ok {
			keys = make(map[string]struct{})
			s.scopes[scope] = keys
		}
		keys[key] = struct{}{}
	}
	if len(scopes) > 0 {
		s.keyScopes[key] = scopes
	}

	s.lru.Add(key, value)
}

// Invalidate removes every key registered under scope.
func (s *Store[V]) Invalidate(scope string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reapLocked()

	for key := range s.scopes[scope] {
		s.forgetLocked(key)
		if s.lru.Remove(key) {
			cacheInvalidationsTotal.WithLabelValues(s.name).Inc()
		}
	}
}

func (s *Store[V]) Len() int {
	return s.lru.Len()
}

// trackedKeys reports how many keys the scope registry holds.
func (s *Store[V]) trackedKeys() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reapLocked()
	return len(s.keyScopes)
}

func (s *Store[V]) onEvict(key string, _ V) {
	s.evictMu.Lock()
	s.evicted = append(s.evicted, key)
	s.evictMu.Unlock()
}

// reapLocked drops evicted keys from the registry. A key that was evicted and
// then stored again is still live and keeps its scopes.
func (s *Store[V]) reapLocked() {
	s.evictMu.Lock()
	evicted := s.evicted
	s.evicted = nil
	s.evictMu.Unlock()

	for _, key := range evicted {
		if !s.lru.Contains(key) {
			s.forgetLocked(key)
		}
	}
}

func (s *Store[V]) forgetLocked(key string) {
	for _, scope := range s.keyScopes[key] {
		keys := s.scopes[scope]
		delete(keys, key)
		if len(keys) == 0 {
			delete(s.scopes, scope)
		}
	}
	delete(s.keyScopes, key)
}
