package profile

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

// GetMe returns the authenticated user's own profile.
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		h.respondProfileError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// GetByID returns any profile by numeric id.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid profile id")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), id)
	if err != nil {
		h.respondProfileError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// GetByUsername returns a profile by its unique username.
func (h *Handler) GetByUsername(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]
	if username == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid username")
		return
	}

	profile, err := h.service.GetProfileByUsername(r.Context(), username)
	if err != nil {
		h.respondProfileError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// Update applies a partial edit to the authenticated user's profile.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, ErrNothingToUpdate) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.respondProfileError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// ListTags returns the full tag catalogue.
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.ListTags(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list tags")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, tags)
}

// SetTags replaces the authenticated user's interest tags.
func (h *Handler) SetTags(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("userID").(int64)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SetTagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tags, err := h.service.SetTags(r.Context(), userID, &req)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to set tags")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"tags": tags})
}

func (h *Handler) respondProfileError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrProfileNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load profile")
}
