package analytics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetDashboard)
	r.Get("/days/{date}", h.GetDayAgenda)
	return r
}
