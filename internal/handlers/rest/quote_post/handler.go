package quote_post

import (
	"encoding/json"
	"net/http"

	"shipping/internal/entities"
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
	var quoteRequestDTO dto.QuoteRequest
	err := json.NewDecoder(r.Body).Decode(&quoteRequestDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	quote, err := h.service.QuoteShipment(
		entities.ShipmentType(quoteRequestDTO.Type),
		entities.InsuranceType(quoteRequestDTO.Insurance),
		conv.ToPackageEntities(quoteRequestDTO.Packages),
		quoteRequestDTO.PickupDate,
	)
	if err != nil {
		switch {
		case shipment.IsValidationError(err):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.QuoteResponse{
		Cost:              dto.Cost(quote.Cost),
		EstimatedDelivery: quote.EstimatedDelivery,
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
