package shipment_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipping/internal/generated/dto"
	"shipping/internal/handlers/rest/conv"
	"shipping/internal/service/shipment"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requesterID, err := parseRequesterID(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var shipmentUpdateDTO dto.ShipmentUpdate
	err = json.NewDecoder(r.Body).Decode(&shipmentUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateShipment(r.Context(), id, conv.ToShipmentModify(shipmentUpdateDTO), requesterID)
	if err != nil {
		switch {
		case shipment.IsValidationError(err):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrNotOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, shipment.ErrShipmentLocked),
			errors.Is(err, shipment.ErrShipmentCommitted),
			errors.Is(err, shipment.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := conv.ToShipmentDTO(updated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseRequesterID(r *http.Request) (*int64, error) {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		return nil, nil
	}

	requesterID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &requesterID, nil
}
