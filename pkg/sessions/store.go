package sessions

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	lastSeen time.Time
	// ttl > 0 заменяет ttl хранилища для этой записи.
	ttl time.Duration
}

// Store - потокобезопасное хранилище с вытеснением по простою.
// Время простоя отсчитывается от последнего Put или Get.
type Store[V any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*entry[V]
}

func New[V any](ttl time.Duration) *Store[V] {
	return NewWithClock[V](ttl, time.Now)
}

func NewWithClock[V any](ttl time.Duration, now func() time.Time) *Store[V] {
	return &Store[V]{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]*entry[V]),
	}
}

func (s *Store[V]) Put(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = &entry[V]{value: value, lastSeen: s.now()}
}

// PutWithTTL кладёт запись со своим временем простоя.
// ttl <= 0 означает ttl хранилища.
func (s *Store[V]) PutWithTTL(key string, value V, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = &entry[V]{value: value, lastSeen: s.now(), ttl: ttl}
}

func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok || s.expired(e) {
		var zero V
		return zero, false
	}
	e.lastSeen = s.now()
	return e.value, true
}

// GetOrCreate возвращает значение по ключу или кладёт созданное create.
// create вызывается под блокировкой и не должен обращаться к Store.
func (s *Store[V]) GetOrCreate(key string, create func() V) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok && !s.expired(e) {
		e.lastSeen = s.now()
		return e.value, false
	}

	value := create()
	s.entries[key] = &entry[V]{value: value, lastSeen: s.now()}
	return value, true
}

func (s *Store[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}

// EvictExpired удаляет простаивающие записи и возвращает их значения,
// чтобы вызывающий мог их закрыть.
func (s *Store[V]) EvictExpired() []V {
	s.mu.Lock()
	defer s.mu.Unlock()

	var evicted []V
	for key, e := range s.entries {
		if s.expired(e) {
			evicted = append(evicted, e.value)
			delete(s.entries, key)
		}
	}
	return evicted
}

func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

func (s *Store[V]) TTL() time.Duration {
	return s.ttl
}

func (s *Store[V]) expired(e *entry[V]) bool {
	ttl := s.ttl
	if e.ttl > 0 {
		ttl = e.ttl
	}
	return ttl > 0 && s.now().Sub(e.lastSeen) > ttl
}
