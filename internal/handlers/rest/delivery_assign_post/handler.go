package delivery_assign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/dto"
	"fulfillment/internal/pkg/actorheader"
	"fulfillment/internal/service/assignment"
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

	var assignDTO dto.DeliveryAssignRequest
	err = json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	globalID := mux.Vars(r)["order_id"]

	orderEntity, err := h.service.Assign(r.Context(), actor, globalID, assignDTO.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidGlobalID),
			errors.Is(err, assignment.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrNotPermitted):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, lifecycle.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, lifecycle.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, assignment.ErrNoEligibleCourier):
			w.WriteHeader(http.StatusUnprocessableEntity)
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
