package deliveries_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"fulfillment/internal/dto"
	"fulfillment/internal/entities"
	"fulfillment/internal/pkg/actorheader"
	"fulfillment/internal/service/listing"
	"fulfillment/pkg/debounce"
	"fulfillment/pkg/logger"
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

	page, pageSize, err := paging(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	filter := entities.DeliveryFilter{
		Status: queryOrAll(r, "status"),
		Type:   queryOrAll(r, "type"),
		Search: r.URL.Query().Get("search"),
	}

	deliveryPage, err := h.service.Search(r.Context(), actor, page, pageSize, filter)
	if err != nil {
		switch {
		case errors.Is(err, listing.ErrInvalidPage),
			errors.Is(err, listing.ErrInvalidPageSize),
			errors.Is(err, listing.ErrUnknownFilter):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, listing.ErrNotPermitted):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, debounce.ErrSuperseded):
			// ответ уехал более свежему запросу того же поиска
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryListResponse{
		Items:         dto.FromOrders(deliveryPage.Items),
		Page:          deliveryPage.Page,
		PageSize:      deliveryPage.PageSize,
		TotalMatching: deliveryPage.TotalMatching,
		TotalPages:    deliveryPage.TotalPages,
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

func paging(r *http.Request) (page, pageSize int, err error) {
	page = 1
	if value := r.URL.Query().Get("page"); value != "" {
		page, err = strconv.Atoi(value)
		if err != nil {
			return 0, 0, err
		}
	}

	if value := r.URL.Query().Get("page_size"); value != "" {
		pageSize, err = strconv.Atoi(value)
		if err != nil {
			return 0, 0, err
		}
	}

	return page, pageSize, nil
}

func queryOrAll(r *http.Request, key string) string {
	if value := r.URL.Query().Get(key); value != "" {
		return value
	}
	return entities.FilterAll
}
