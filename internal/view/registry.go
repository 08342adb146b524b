package view

import (
	"time"

	"storefront/pkg/sessions"
)

// HeaderViewID - заголовок, по которому клиент возвращается к своему экземпляру view.
const HeaderViewID = "X-View-ID"

type Closer interface {
	Close()
}

// Registry держит экземпляры view по id. Простаивающие закрываются в EvictIdle.
type Registry[V Closer] struct {
	store  *sessions.Store[V]
	create func() V
}

func NewRegistry[V Closer](idleTTL time.Duration, create func() V) *Registry[V] {
	return &Registry[V]{
		store:  sessions.New[V](idleTTL),
		create: create,
	}
}

// Acquire возвращает view по id или создаёт новый.
// Пустой id даёт одноразовый view, который не запоминается.
func (r *Registry[V]) Acquire(id string) V {
	if id == "" {
		return r.create()
	}

	v, _ := r.store.GetOrCreate(id, r.create)
	return v
}

func (r *Registry[V]) Lookup(id string) (V, bool) {
	if id == "" {
		var zero V
		return zero, false
	}
	return r.store.Get(id)
}

// Release закрывает view: его незавершённые загрузки будут отброшены.
func (r *Registry[V]) Release(id string) {
	v, ok := r.store.Get(id)
	if !ok {
		return
	}
	r.store.Delete(id)
	v.Close()
}

func (r *Registry[V]) EvictIdle() int {
	evicted := r.store.EvictExpired()
	for _, v := range evicted {
		v.Close()
	}
	return len(evicted)
}

func (r *Registry[V]) Len() int {
	return r.store.Len()
}
