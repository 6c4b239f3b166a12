package notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/M-U-C-K-A/matcha/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// List returns the caller's feed, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	notifications, err := h.service.List(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list notifications")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"count":         len(notifications),
		"notifications": notifications,
	})
}

// UnreadCount returns how many feed entries are still unread.
func (h *Handler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	count, err := h.service.CountUnread(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count notifications")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]int64{"unread": count})
}

// MarkRead flags a single entry as read.
func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	notificationID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || notificationID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid notification id")
		return
	}

	if err := h.service.MarkRead(r.Context(), userID, notificationID); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to mark notification")
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "Notification read")
}

// MarkAllRead flags every unread entry as read.
func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.MarkAllRead(r.Context(), userID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to mark notifications")
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "All notifications read")
}
