package moderation

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

// Block hides the target user from the caller and vice versa.
func (h *Handler) Block(w http.ResponseWriter, r *http.Request) {
	userID, targetID, ok := h.actorAndTarget(w, r)
	if !ok {
		return
	}

	if err := h.service.BlockUser(r.Context(), userID, targetID); err != nil {
		h.respondModerationError(w, err)
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "User blocked")
}

// Unblock removes an existing block.
func (h *Handler) Unblock(w http.ResponseWriter, r *http.Request) {
	userID, targetID, ok := h.actorAndTarget(w, r)
	if !ok {
		return
	}

	if err := h.service.UnblockUser(r.Context(), userID, targetID); err != nil {
		if errors.Is(err, ErrBlockNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		h.respondModerationError(w, err)
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "User unblocked")
}

// ListBlocks returns the caller's active blocks.
func (h *Handler) ListBlocks(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	blocks, err := h.service.ListBlocks(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list blocks")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, BlockListResponse{
		Count:  len(blocks),
		Blocks: blocks,
	})
}

// Report flags the target user with a free-form reason.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	userID, targetID, ok := h.actorAndTarget(w, r)
	if !ok {
		return
	}

	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.ReportUser(r.Context(), userID, targetID, req.Reason); err != nil {
		h.respondModerationError(w, err)
		return
	}

	utils.RespondWithMessage(w, http.StatusCreated, "Report submitted")
}

func (h *Handler) actorAndTarget(w http.ResponseWriter, r *http.Request) (int64, int64, bool) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return 0, 0, false
	}

	targetID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || targetID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid target id")
		return 0, 0, false
	}

	return userID, targetID, true
}

func (h *Handler) respondModerationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSelfTarget):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTargetNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Moderation action failed")
	}
}
