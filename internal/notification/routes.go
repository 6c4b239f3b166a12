package notification

import (
	"github.com/gorilla/mux"

	"github.com/M-U-C-K-A/matcha/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/notifications").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("", handler.List).Methods("GET")
	api.HandleFunc("/unread", handler.UnreadCount).Methods("GET")
	api.HandleFunc("/read-all", handler.MarkAllRead).Methods("POST")
	api.HandleFunc("/{id:[0-9]+}/read", handler.MarkRead).Methods("POST")
}
