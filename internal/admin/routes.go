package admin

import (
	"github.com/gorilla/mux"

	"github.com/M-U-C-K-A/matcha/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/admin").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/tables", handler.ListTables).Methods("GET")
	api.HandleFunc("/tables/{table}", handler.InspectTable).Methods("GET")
}
