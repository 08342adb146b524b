package checkout_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/gateway/payment/paystack"
	"storefront/internal/handlers/rest/dto"
	"storefront/internal/handlers/rest/respond"
	"storefront/internal/service/checkout"
	"storefront/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "checkout_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.write(w, http.StatusBadRequest, dto.Error{Error: "invalid request body"})
		return
	}

	session, err := h.service.Begin(r.Context(), checkout.BeginRequest{
		SessionID: req.SessionID,
		Form:      dto.ToCheckoutForm(req),
		Cart:      dto.ToCart(req.Items),
	})
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.As(err, &verr):
			h.write(w, http.StatusBadRequest, dto.Error{
				Error:   err.Error(),
				Message: verr.Message,
				Fields:  verr.Fields,
			})
		case errors.Is(err, paystack.ErrInvalidAmount):
			h.write(w, http.StatusBadRequest, dto.Error{Error: err.Error()})
		case errors.Is(err, checkout.ErrSessionNotFound):
			h.write(w, http.StatusNotFound, dto.Error{Error: err.Error()})
		case errors.Is(err, checkout.ErrSessionResolved):
			h.write(w, http.StatusConflict, dto.Error{Error: err.Error()})
		default:
			h.log.Error("begin checkout", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.write(w, http.StatusCreated, dto.FromSession(session))
}

func (h *Handler) write(w http.ResponseWriter, status int, body any) {
	if err := respond.JSON(w, status, body); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
