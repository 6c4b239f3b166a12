package engagement

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

// Like records a like and reports whether it formed a match.
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	userID, targetID, ok := h.actorAndTarget(w, r)
	if !ok {
		return
	}

	result, err := h.service.LikeProfile(r.Context(), userID, targetID)
	if err != nil {
		h.respondEngagementError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

// Unlike withdraws a like.
func (h *Handler) Unlike(w http.ResponseWriter, r *http.Request) {
	userID, targetID, ok := h.actorAndTarget(w, r)
	if !ok {
		return
	}

	if err := h.service.UnlikeProfile(r.Context(), userID, targetID); err != nil {
		if errors.Is(err, ErrLikeNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		h.respondEngagementError(w, err)
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "Like removed")
}

// ListLikers returns who liked the caller.
func (h *Handler) ListLikers(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	likes, err := h.service.ListLikers(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list likes")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(likes),
		"likes": likes,
	})
}

// View records that the caller opened the target's profile.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	userID, targetID, ok := h.actorAndTarget(w, r)
	if !ok {
		return
	}

	if err := h.service.RecordProfileView(r.Context(), userID, targetID); err != nil {
		h.respondEngagementError(w, err)
		return
	}

	utils.RespondWithMessage(w, http.StatusCreated, "View recorded")
}

// ListViewers returns who viewed the caller's profile.
func (h *Handler) ListViewers(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	views, err := h.service.ListViewers(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list views")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(views),
		"views": views,
	})
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

func (h *Handler) respondEngagementError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrSelfTarget):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrTargetNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Engagement action failed")
	}
}
