package payment_verify_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipping/internal/generated/dto"
	"shipping/internal/handlers/rest/conv"
	"shipping/internal/service/payment"
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
	idStr := mux.Vars(r)["shipmentID"]
	shipmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var paymentVerifyDTO dto.PaymentVerifyRequest
	err = json.NewDecoder(r.Body).Decode(&paymentVerifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.VerifyPayment(
		r.Context(),
		shipmentID,
		paymentVerifyDTO.Verified,
		paymentVerifyDTO.Notes,
		paymentVerifyDTO.RejectionReason,
		paymentVerifyDTO.AdminID,
	)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrMissingRejectionReason):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, payment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, payment.ErrInvalidPaymentState):
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
