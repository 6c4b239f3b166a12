package profile

import (
	"github.com/gorilla/mux"

	"github.com/M-U-C-K-A/matcha/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/profiles").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/me", handler.GetMe).Methods("GET")
	api.HandleFunc("/me", handler.Update).Methods("PATCH")
	api.HandleFunc("/me/tags", handler.SetTags).Methods("PUT")
	api.HandleFunc("/tags", handler.ListTags).Methods("GET")
	api.HandleFunc("/{id:[0-9]+}", handler.GetByID).Methods("GET")
	api.HandleFunc("/by-username/{username}", handler.GetByUsername).Methods("GET")
}
