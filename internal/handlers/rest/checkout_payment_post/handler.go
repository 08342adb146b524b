package checkout_payment_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"storefront/internal/handlers/rest/dto"
	"storefront/internal/handlers/rest/respond"
	"storefront/internal/service/checkout"
	"storefront/pkg/logger"
)

// Handler принимает результат виджета оплаты из браузера:
// {"status":"success","reference":"..."} или {"status":"cancelled"}.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "checkout_payment_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["session"]

	var req dto.PaymentOutcome
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.write(w, http.StatusBadRequest, dto.Error{Error: "invalid request body"})
		return
	}

	session, err := h.service.Resolve(r.Context(), sessionID, toOutcome(req))
	if err != nil {
		var recErr *checkout.ReconciliationError
		switch {
		case errors.As(err, &recErr):
			failure := dto.CheckoutFailure{
				Error: dto.Error{
					Error:          err.Error(),
					Message:        checkout.MessageReconciliation,
					Reconciliation: true,
				},
			}
			if session != nil {
				s := dto.FromSession(session)
				failure.Session = &s
			}
			h.write(w, http.StatusBadGateway, failure)
		case errors.Is(err, checkout.ErrInvalidOutcome):
			h.write(w, http.StatusBadRequest, dto.Error{Error: err.Error()})
		case errors.Is(err, checkout.ErrSessionNotFound):
			h.write(w, http.StatusNotFound, dto.Error{Error: err.Error()})
		case errors.Is(err, checkout.ErrSessionResolved):
			h.write(w, http.StatusConflict, dto.Error{Error: err.Error()})
		default:
			h.log.Error("resolve checkout",
				logger.NewField("session_id", sessionID),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.write(w, http.StatusOK, dto.FromSession(session))
}

// toOutcome: "closed" - так виджет сообщает о закрытии окна без оплаты.
func toOutcome(req dto.PaymentOutcome) checkout.Outcome {
	switch strings.ToLower(strings.TrimSpace(req.Status)) {
	case string(checkout.OutcomeSucceeded):
		return checkout.Succeeded(req.Reference)
	case string(checkout.OutcomeCancelled), "closed":
		return checkout.Cancelled()
	default:
		return checkout.Outcome{Kind: checkout.OutcomeKind(req.Status)}
	}
}

func (h *Handler) write(w http.ResponseWriter, status int, body any) {
	if err := respond.JSON(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
