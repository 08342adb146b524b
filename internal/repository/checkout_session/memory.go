package checkout_session

import (
	"context"
	"sync"
	"time"

	"storefront/internal/entities"
	"storefront/internal/service/checkout"
	"storefront/pkg/sessions"
)

// Memory хранит сессии в памяти процесса. Подходит для одного инстанса.
type Memory struct {
	store      *sessions.Store[entities.CheckoutSession]
	idleTTL    time.Duration
	paymentTTL time.Duration

	mu     sync.Mutex
	claims map[string]struct{}
}

func NewMemory(ttl time.Duration, opts ...Option) *Memory {
	o := newOptions(opts)
	return &Memory{
		store:      sessions.NewWithClock[entities.CheckoutSession](ttl, o.now),
		idleTTL:    ttl,
		paymentTTL: o.paymentTTL,
		claims:     make(map[string]struct{}),
	}
}

func (r *Memory) Save(_ context.Context, session entities.CheckoutSession) error {
	r.store.PutWithTTL(session.ID, session.Clone(), ttlFor(session, r.idleTTL, r.paymentTTL))
	return nil
}

func (r *Memory) Get(_ context.Context, id string) (*entities.CheckoutSession, error) {
	session, ok := r.store.Get(id)
	if !ok {
		return nil, checkout.ErrSessionNotFound
	}

	clone := session.Clone()
	return &clone, nil
}

// Claim захватывает сессию. false - её уже разрешает другой вызов.
func (r *Memory) Claim(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, busy := r.claims[id]; busy {
		return false, nil
	}
	r.claims[id] = struct{}{}
	return true, nil
}

func (r *Memory) Release(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.claims, id)
	return nil
}

// EvictExpired удаляет брошенные сессии и возвращает их количество.
func (r *Memory) EvictExpired(_ context.Context) (int, error) {
	return len(r.store.EvictExpired()), nil
}

func (r *Memory) Len() int {
	return r.store.Len()
}
