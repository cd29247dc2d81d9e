package payment_init_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipping/internal/entities"
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

	var paymentInitDTO dto.PaymentInitRequest
	err = json.NewDecoder(r.Body).Decode(&paymentInitDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	bankDetails := entities.BankDetails{
		AccountName: paymentInitDTO.AccountName,
		BankName:    paymentInitDTO.BankName,
	}

	updated, err := h.service.InitializePayment(r.Context(), shipmentID, bankDetails)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrMissingBankDetails):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, payment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, payment.ErrDraftShipment),
			errors.Is(err, payment.ErrInvalidPaymentState):
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
