package notifications_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"shipping/internal/entities"
	"shipping/internal/generated/dto"
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
	query := r.URL.Query()

	userID, err := strconv.ParseInt(query.Get("userId"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var page entities.Page
	if raw := query.Get("limit"); raw != "" {
		limit, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		page.Limit = limit
	}
	if raw := query.Get("offset"); raw != "" {
		offset, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		page.Offset = offset
	}

	notifications, err := h.service.ListNotifications(r.Context(), userID, page)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.NotificationList{
		Items: make([]dto.Notification, 0, len(notifications)),
	}
	for _, n := range notifications {
		response.Items = append(response.Items, dto.Notification{
			ID:        n.ID,
			UserID:    n.UserID,
			Type:      n.Type.String(),
			Data:      n.Data,
			Priority:  n.Priority.String(),
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
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
