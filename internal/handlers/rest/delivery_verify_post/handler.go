package delivery_verify_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/dto"
	"fulfillment/internal/entities"
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

	var verifyDTO dto.VerifyPaymentRequest
	err = json.NewDecoder(r.Body).Decode(&verifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	globalID := mux.Vars(r)["order_id"]

	proof := entities.PaymentProof{
		EnteredOrderID: verifyDTO.EnteredOrderID,
	}
	if verifyDTO.CashConfirmed != nil {
		proof.CashConfirmed = *verifyDTO.CashConfirmed
	}

	orderEntity, err := h.service.VerifyAndComplete(r.Context(), actor, globalID, proof)
	if err != nil {
		switch {
		case errors.Is(err, verification.ErrInvalidGlobalID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrNotPermitted):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, lifecycle.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		// неуспех верификации и неуспех перехода различимы для клиента:
		// первый безопасно повторять с новым вводом, второй - нет
		case errors.Is(err, verification.ErrVerificationFailed):
			w.WriteHeader(http.StatusUnprocessableEntity)
		case errors.Is(err, lifecycle.ErrInvalidTransition),
			errors.Is(err, lifecycle.ErrPaymentUnverified):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromOrder(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
