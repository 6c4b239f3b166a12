package conversation

import (
	"github.com/gorilla/mux"

	"github.com/M-U-C-K-A/matcha/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/conversations").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.List).Methods("GET")
	api.HandleFunc("/with/{id:[0-9]+}", handler.Send).Methods("POST")
	api.HandleFunc("/{id:[0-9]+}/messages", handler.Messages).Methods("GET")
}
