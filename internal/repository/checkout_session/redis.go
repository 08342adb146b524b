package checkout_session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"storefront/internal/entities"
	"storefront/internal/service/checkout"
)

const (
	keyPrefix      = "checkout:session:"
	claimKeyPrefix = "checkout:claim:"
)

// Redis хранит сессии в redis, чтобы их видели все инстансы.
// Брошенные сессии удаляет сам redis по TTL ключа.
type Redis struct {
	client     redis.Cmdable
	ttl        time.Duration
	paymentTTL time.Duration
	claimTTL   time.Duration
}

func NewRedis(client redis.Cmdable, ttl time.Duration, opts ...Option) *Redis {
	o := newOptions(opts)
	return &Redis{
		client:     client,
		ttl:        ttl,
		paymentTTL: o.paymentTTL,
		claimTTL:   o.claimTTL,
	}
}

func sessionKey(id string) string {
	return keyPrefix + id
}

func claimKey(id string) string {
	return claimKeyPrefix + id
}

func (r *Redis) Save(ctx context.Context, session entities.CheckoutSession) error {
	raw, err := json.Marshal(FromDomain(&session))
	if err != nil {
		return fmt.Errorf("checkout session repository, marshal %s: %w", session.ID, err)
	}

	if err := r.client.Set(ctx, sessionKey(session.ID), raw, ttlFor(session, r.ttl, r.paymentTTL)).Err(); err != nil {
		return fmt.Errorf("checkout session repository, save %s: %w", session.ID, err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, id string) (*entities.CheckoutSession, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, checkout.ErrSessionNotFound
		}
		return nil, fmt.Errorf("checkout session repository, get %s: %w", id, err)
	}

	var model SessionRedis
	if err := json.Unmarshal(raw, &model); err != nil {
		return nil, fmt.Errorf("checkout session repository, unmarshal %s: %w", id, err)
	}

	return ToDomain(&model)
}

// Claim захватывает сессию через SET NX, захват виден всем инстансам.
// Ключ истекает через claimTTL, если держатель упал, не отпустив его.
func (r *Redis) Claim(ctx context.Context, id string) (bool, error) {
	ok, err := r.client.SetNX(ctx, claimKey(id), 1, r.claimTTL).Result()
	if err != nil {
		return false, fmt.Errorf("checkout session repository, claim %s: %w", id, err)
	}
	return ok, nil
}

func (r *Redis) Release(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, claimKey(id)).Err(); err != nil {
		return fmt.Errorf("checkout session repository, release %s: %w", id, err)
	}
	return nil
}

// EvictExpired ничего не делает: ключи истекают в redis.
func (r *Redis) EvictExpired(context.Context) (int, error) {
	return 0, nil
}
