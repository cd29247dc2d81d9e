package shipments_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"shipping/internal/entities"
	"shipping/internal/generated/dto"
	"shipping/internal/handlers/rest/conv"
	"shipping/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	page, err := parsePage(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shipments, total, err := h.service.ListShipments(r.Context(), filter, page)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.ShipmentList{
		Items: make([]dto.Shipment, 0, len(shipments)),
		Total: total,
	}
	for i := range shipments {
		response.Items = append(response.Items, conv.ToShipmentDTO(&shipments[i]))
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

func parseFilter(r *http.Request) (entities.ShipmentFilter, error) {
	var filter entities.ShipmentFilter
	query := r.URL.Query()

	if raw := query.Get("ownerId"); raw != "" {
		ownerID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entities.ShipmentFilter{}, err
		}
		filter.OwnerID = &ownerID
	}
	if raw := query.Get("status"); raw != "" {
		status := entities.ShipmentStatusType(raw)
		filter.Status = &status
	}
	if raw := query.Get("type"); raw != "" {
		shipmentType := entities.ShipmentType(raw)
		filter.Type = &shipmentType
	}
	if raw := query.Get("isDraft"); raw != "" {
		isDraft, err := strconv.ParseBool(raw)
		if err != nil {
			return entities.ShipmentFilter{}, err
		}
		filter.IsDraft = &isDraft
	}

	return filter, nil
}

func parsePage(r *http.Request) (entities.Page, error) {
	query := r.URL.Query()

	var limit int64
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entities.Page{}, err
		}
		limit = parsed
	}

	pageNumber := int64(1)
	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entities.Page{}, err
		}
		if parsed < 1 {
			return entities.Page{}, errors.New("page must be positive")
		}
		pageNumber = parsed
	}

	var offset int64
	if limit > 0 {
		offset = (pageNumber - 1) * limit
	}

	return entities.Page{Offset: offset, Limit: limit}, nil
}
