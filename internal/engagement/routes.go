package engagement

import (
	"github.com/gorilla/mux"

	"github.com/M-U-C-K-A/matcha/internal/auth"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authMiddleware *auth.Middleware) {
	api := router.PathPrefix("/api/v1/engagement").Subrouter()
	api.Use(authMiddleware.Authenticate)

	api.HandleFunc("/likes", handler.ListLikers).Methods("GET")
	api.HandleFunc("/likes/{id:[0-9]+}", handler.Like).Methods("POST")
	api.HandleFunc("/likes/{id:[0-9]+}", handler.Unlike).Methods("DELETE")
	api.HandleFunc("/views", handler.ListViewers).Methods("GET")
	api.HandleFunc("/views/{id:[0-9]+}", handler.View).Methods("POST")
}
