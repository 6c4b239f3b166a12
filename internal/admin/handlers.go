package admin

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

// ListTables returns the inspectable tables.
func (h *Handler) ListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.service.ListTables(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list tables")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"tables": tables})
}

// InspectTable returns one page of rows from an allow-listed table.
func (h *Handler) InspectTable(w http.ResponseWriter, r *http.Request) {
	table := mux.Vars(r)["table"]

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid page")
			return
		}
		page = parsed
	}

	pageSize := 0
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid page size")
			return
		}
		pageSize = parsed
	}

	result, err := h.service.InspectTable(r.Context(), table, page, pageSize)
	if err != nil {
		if errors.Is(err, ErrTableNotAllowed) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to inspect table")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}
