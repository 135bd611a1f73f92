package payment_reference_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/dto"
	"fulfillment/internal/pkg/actorheader"
	"fulfillment/internal/service/lifecycle"
	"fulfillment/internal/service/verification"
	"fulfillment/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, err := actorheader.FromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	globalID := mux.Vars(r)["order_id"]

	reference, err := h.service.GenerateReference(r.Context(), actor, globalID)
	if err != nil {
		switch {
		case errors.Is(err, verification.ErrInvalidGlobalID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrNotPermitted):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, lifecycle.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, verification.ErrNotCashOnDelivery),
			errors.Is(err, lifecycle.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PaymentReferenceResponse{
		Reference: reference,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
