package delivery_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/dto"
	"fulfillment/internal/entities"
	"fulfillment/internal/pkg/actorheader"
	"fulfillment/internal/service/lifecycle"
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

	var statusDTO dto.DeliveryStatusRequest
	err = json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	globalID := mux.Vars(r)["order_id"]
	target := entities.DeliveryStatusType(statusDTO.Status)

	// запись верификации сюда не передать: delivered достижим только
	// через verify-payment
	orderEntity, err := h.service.Transition(r.Context(), actor, globalID, target, nil)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrInvalidGlobalID),
			errors.Is(err, lifecycle.ErrUnknownStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrNotPermitted):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, lifecycle.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
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
