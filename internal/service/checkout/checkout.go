package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"storefront/internal/entities"
	"storefront/internal/gateway/payment/paystack"
	"storefront/pkg/logger"
)

// Flow ведёт сессию оформления заказа:
//
//	filling_form -> submitting -> payment_succeeded -> submitting_order -> order_saved | order_save_failed
//	filling_form -> submitting -> payment_cancelled -> filling_form
//
// Сессия разрешается результатом виджета не более одного раза.
type Flow struct {
	log      flowLogger
	orders   OrderGateway
	payments PaymentGateway
	sessions SessionStore

	now   func() time.Time
	newID func() string
}

type Option func(*Flow)

func WithClock(now func() time.Time) Option {
	return func(f *Flow) {
		f.now = now
	}
}

func New(log flowLogger, orders OrderGateway, payments PaymentGateway, sessions SessionStore, opts ...Option) *Flow {
	f := &Flow{
		log:      log,
		orders:   orders,
		payments: payments,
		sessions: sessions,
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

type BeginRequest struct {
	// SessionID - повторная отправка формы после отмены оплаты.
	SessionID string
	Form      entities.CheckoutForm
	Cart      entities.Cart
}

// Begin проверяет форму и корзину и готовит параметры виджета оплаты.
// При ошибке валидации никаких запросов не делается и сессия не меняется.
func (f *Flow) Begin(ctx context.Context, req BeginRequest) (*entities.CheckoutSession, error) {
	if verr := validate(req.Form, req.Cart); verr != nil {
		CheckoutOutcomesTotal.WithLabelValues("validation_failed").Inc()
		f.log.Warn("checkout validation failed",
			logger.NewField("validation_failed", true),
			logger.NewField("fields", strings.Join(verr.Fields, ",")),
		)
		return nil, verr
	}

	var session *entities.CheckoutSession
	if req.SessionID != "" {
		existing, err := f.sessions.Get(ctx, req.SessionID)
		if err != nil {
			return nil, fmt.Errorf("begin checkout: %w", err)
		}
		if existing.State != entities.CheckoutFillingForm {
			return nil, fmt.Errorf("begin checkout: session %s in state %s: %w", existing.ID, existing.State, ErrSessionResolved)
		}
		session = existing
	}

	amount, err := req.Cart.Subtotal()
	if err != nil {
		return nil, fmt.Errorf("begin checkout: %w", err)
	}

	setup, err := f.payments.Setup(ctx, paystack.SetupRequest{
		Email:           strings.TrimSpace(req.Form.Email),
		Amount:          amount,
		Phone:           strings.TrimSpace(req.Form.Phone),
		Name:            req.Form.FullName(),
		DeliveryAddress: req.Form.Address.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("begin checkout: payment setup: %w", err)
	}

	now := f.now()
	if session == nil {
		session = &entities.CheckoutSession{
			ID:        f.newID(),
			State:     entities.CheckoutFillingForm,
			History:   []entities.CheckoutState{entities.CheckoutFillingForm},
			CreatedAt: now,
		}
	}
	session.Form = req.Form
	session.Cart = req.Cart
	session.Payment = setup
	session.Message = ""
	session.Transition(entities.CheckoutSubmitting, now)

	if err := f.sessions.Save(ctx, *session); err != nil {
		return nil, fmt.Errorf("begin checkout: save session: %w", err)
	}

	CheckoutOutcomesTotal.WithLabelValues("begun").Inc()
	f.log.Info("checkout awaiting payment",
		logger.NewField("session_id", session.ID),
		logger.NewField("payment_reference", setup.Reference),
		logger.NewField("amount", amount.StringFixed(2)),
	)

	return session, nil
}

func (f *Flow) Get(ctx context.Context, sessionID string) (*entities.CheckoutSession, error) {
	session, err := f.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get checkout session: %w", err)
	}
	return session, nil
}

// Resolve применяет результат виджета оплаты к сессии в состоянии submitting.
func (f *Flow) Resolve(ctx context.Context, sessionID string, outcome Outcome) (*entities.CheckoutSession, error) {
	if outcome.Kind != OutcomeSucceeded && outcome.Kind != OutcomeCancelled {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome.Kind)
	}
	if outcome.Kind == OutcomeSucceeded && strings.TrimSpace(outcome.Reference) == "" {
		return nil, fmt.Errorf("%w: empty payment reference", ErrInvalidOutcome)
	}

	reference := strings.TrimSpace(outcome.Reference)

	claimed, err := f.sessions.Claim(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("resolve checkout: %w", err)
	}
	if !claimed {
		return nil, fmt.Errorf("resolve checkout: session %s: %w", sessionID, ErrSessionResolved)
	}
	defer f.release(ctx, sessionID)

	session, err := f.sessions.Get(ctx, sessionID)
	if err != nil {
		if outcome.Kind == OutcomeSucceeded && errors.Is(err, ErrSessionNotFound) {
			// деньги списаны, а форму и корзину взять негде
			return f.reconciliationHazard(ctx, &entities.CheckoutSession{
				ID:               sessionID,
				PaymentReference: reference,
			}, err)
		}
		return nil, fmt.Errorf("resolve checkout: %w", err)
	}
	if session.State != entities.CheckoutSubmitting {
		return nil, fmt.Errorf("resolve checkout: session %s in state %s: %w", session.ID, session.State, ErrSessionResolved)
	}

	if outcome.Kind == OutcomeCancelled {
		return f.cancel(ctx, session)
	}

	if expected := session.Payment.Reference; expected != "" && reference != expected {
		f.log.Error("payment reference does not match checkout session",
			logger.NewField("session_id", session.ID),
			logger.NewField("expected_reference", expected),
			logger.NewField("payment_reference", reference),
		)
		CheckoutOutcomesTotal.WithLabelValues("reference_mismatch").Inc()
		return nil, fmt.Errorf("resolve checkout: session %s, reference %q: %w", session.ID, reference, ErrReferenceMismatch)
	}

	return f.submitOrder(ctx, session, reference)
}

func (f *Flow) release(ctx context.Context, sessionID string) {
	if err := f.sessions.Release(context.WithoutCancel(ctx), sessionID); err != nil {
		f.log.Warn("checkout session release failed",
			logger.NewField("session_id", sessionID),
			logger.NewField("error", err),
		)
	}
}

func (f *Flow) cancel(ctx context.Context, session *entities.CheckoutSession) (*entities.CheckoutSession, error) {
	session.Transition(entities.CheckoutPaymentCancelled, f.now())
	session.Transition(entities.CheckoutFillingForm, f.now())
	session.Message = MessagePaymentClosed

	if err := f.sessions.Save(ctx, *session); err != nil {
		return nil, fmt.Errorf("resolve checkout: save session: %w", err)
	}

	CheckoutOutcomesTotal.WithLabelValues("cancelled").Inc()
	f.log.Info("checkout payment cancelled", logger.NewField("session_id", session.ID))

	return session, nil
}

func (f *Flow) submitOrder(ctx context.Context, session *entities.CheckoutSession, reference string) (*entities.CheckoutSession, error) {
	session.PaymentReference = reference
	session.Transition(entities.CheckoutPaymentSucceeded, f.now())
	session.Transition(entities.CheckoutSubmittingOrder, f.now())

	// оплата уже прошла: заказ отправляем, даже если сессию сохранить не удалось
	if err := f.sessions.Save(ctx, *session); err != nil {
		f.log.Warn("checkout session save failed before order submission",
			logger.NewField("session_id", session.ID),
			logger.NewField("error", err),
		)
	}

	order, err := f.orders.CreateOrder(context.WithoutCancel(ctx), newOrder(session))
	if err != nil {
		return f.reconciliationHazard(ctx, session, err)
	}

	session.Order = order
	session.Message = "Order placed! Reference: " + reference
	session.Transition(entities.CheckoutOrderSaved, f.now())

	if err := f.sessions.Save(ctx, *session); err != nil {
		f.log.Error("checkout session save failed after order was saved",
			logger.NewField("session_id", session.ID),
			logger.NewField("payment_reference", reference),
			logger.NewField("error", err),
		)
	}

	CheckoutOutcomesTotal.WithLabelValues("order_saved").Inc()
	f.log.Info("checkout order saved",
		logger.NewField("session_id", session.ID),
		logger.NewField("payment_reference", reference),
	)

	return session, nil
}

func (f *Flow) reconciliationHazard(ctx context.Context, session *entities.CheckoutSession, cause error) (*entities.CheckoutSession, error) {
	session.Message = MessageReconciliation
	session.Transition(entities.CheckoutOrderSaveFailed, f.now())

	CheckoutOutcomesTotal.WithLabelValues("order_save_failed").Inc()
	ReconciliationHazardsTotal.Inc()
	f.log.Error("payment succeeded but order was not saved",
		logger.NewField("reconciliation_hazard", true),
		logger.NewField("session_id", session.ID),
		logger.NewField("payment_reference", session.PaymentReference),
		logger.NewField("email", session.Form.Email),
		logger.NewField("amount", session.Payment.Amount.StringFixed(2)),
		logger.NewField("error", cause),
	)

	if err := f.sessions.Save(context.WithoutCancel(ctx), *session); err != nil {
		f.log.Error("checkout session save failed",
			logger.NewField("reconciliation_hazard", true),
			logger.NewField("session_id", session.ID),
			logger.NewField("error", err),
		)
	}

	return session, &ReconciliationError{
		SessionID: session.ID,
		Reference: session.PaymentReference,
		Cause:     cause,
	}
}

func newOrder(session *entities.CheckoutSession) entities.NewOrder {
	items := make([]entities.CartItem, 0, len(session.Cart))
	for _, item := range session.Cart {
		items = append(items, entities.CartItem{
			ID:       item.ID,
			Title:    item.Title,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}

	form := session.Form
	return entities.NewOrder{
		Email:            strings.TrimSpace(form.Email),
		Name:             form.FullName(),
		Phone:            strings.TrimSpace(form.Phone),
		Address:          form.Address,
		Items:            items,
		Total:            session.Payment.Amount,
		PaymentReference: session.PaymentReference,
	}
}

// UserMessage - текст для покупателя, если он предусмотрен для ошибки.
func UserMessage(err error) (string, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message, true
	}
	if errors.Is(err, ErrReconciliation) {
		return MessageReconciliation, true
	}
	return "", false
}
