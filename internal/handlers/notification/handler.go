package notification

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Upgrader accepts websocket connections for the event stream.
type Upgrader interface {
	ServeWS(w http.ResponseWriter, r *http.Request)
}

type Handler struct {
	hub Upgrader
}

func New(hub Upgrader) Handler {
	return Handler{hub: hub}
}

// Router mounts the event stream. It is public and sits outside /api.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/ws", handler.hub.ServeWS)
}
