package matching

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/M-U-C-K-A/matcha/internal/common/utils"
)

type Handler struct {
	service      Service
	defaultLimit int
}

func NewHandler(service Service, defaultLimit int) *Handler {
	return &Handler{service: service, defaultLimit: defaultLimit}
}

// GetCandidates returns the ranked candidate list for the
// authenticated user. An optional ?limit= query parameter trims the
// list; the ranking itself is always computed in full.
func (h *Handler) GetCandidates(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit := h.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	candidates, err := h.service.GetCandidates(r.Context(), userID, limit)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequester):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrRequesterNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to rank candidates")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, CandidateListResponse{
		Count:      len(candidates),
		Candidates: candidates,
	})
}
