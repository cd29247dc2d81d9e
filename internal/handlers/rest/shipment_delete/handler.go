package shipment_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"shipping/internal/service/shipment"
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

	err = h.service.DeleteDraft(r.Context(), id, requesterID)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrNotOwner):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, shipment.ErrNotDraft):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
