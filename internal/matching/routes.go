package matching

import (
	"github.com/gorilla/mux"

	"github.com/M-U-C-K-A/matcha/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/matching").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/candidates", handler.GetCandidates).Methods("GET")
}
