package conversation

import (
	"encoding/json"
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

// Send delivers a message to the user in the URL, opening the
// conversation if needed.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	recipientID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || recipientID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid recipient id")
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	message, err := h.service.SendMessage(r.Context(), userID, recipientID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfTarget):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrTargetNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrBlocked):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send message")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, message)
}

// List returns the caller's conversations, most recently active first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	conversations, err := h.service.ListConversations(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list conversations")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, ConversationListResponse{
		Count:         len(conversations),
		Conversations: conversations,
	})
}

// Messages returns the newest messages of one conversation.
func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	conversationID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || conversationID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid conversation id")
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

	messages, err := h.service.ListMessages(r.Context(), userID, conversationID, limit)
	if err != nil {
		switch {
		case errors.Is(err, ErrConversationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ErrNotParticipant):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list messages")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, MessageListResponse{
		Count:    len(messages),
		Messages: messages,
	})
}
