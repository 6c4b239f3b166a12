package moderation

import (
	"github.com/gorilla/mux"

	"github.com/M-U-C-K-A/matcha/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/moderation").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/blocks", handler.ListBlocks).Methods("GET")
	api.HandleFunc("/blocks/{id:[0-9]+}", handler.Block).Methods("POST")
	api.HandleFunc("/blocks/{id:[0-9]+}", handler.Unblock).Methods("DELETE")
	api.HandleFunc("/reports/{id:[0-9]+}", handler.Report).Methods("POST")
}
