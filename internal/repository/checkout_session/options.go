package checkout_session

import (
	"time"

	"storefront/internal/entities"
)

const (
	// DefaultPaymentTTL - сколько живёт сессия, ожидающая ответа виджета оплаты.
	DefaultPaymentTTL = 24 * time.Hour
	// DefaultClaimTTL - срок захвата сессии на время разрешения оплаты.
	DefaultClaimTTL = 2 * time.Minute
)

type options struct {
	paymentTTL time.Duration
	claimTTL   time.Duration
	now        func() time.Time
}

type Option func(*options)

// WithPaymentTTL задаёт срок жизни сессий, по которым может прийти оплата.
func WithPaymentTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.paymentTTL = ttl
	}
}

func WithClaimTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.claimTTL = ttl
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(opts []Option) options {
	o := options{
		paymentTTL: DefaultPaymentTTL,
		claimTTL:   DefaultClaimTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ttlFor: пока оплата в полёте, сессия живёт не меньше paymentTTL,
// иначе виджет вернётся к уже вытесненной сессии.
func ttlFor(session entities.CheckoutSession, idle, payment time.Duration) time.Duration {
	if idle <= 0 {
		return 0
	}
	switch session.State {
	case entities.CheckoutSubmitting, entities.CheckoutPaymentSucceeded, entities.CheckoutSubmittingOrder:
		if payment > idle {
			return payment
		}
	}
	return idle
}
