package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-lock-keeper/internal/utils"
	"github.com/MKhiriev/go-lock-keeper/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/vaults", func(r chi.Router) {
		// routes without authorization
		r.Get("/", h.listVaults)
		r.Get("/{id}", h.getVault)
		r.Get("/{id}/beneficiaries/{address}", h.beneficiaryState)
		r.Get("/{id}/owner", h.ownerState)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/fixed", h.createFixedLock)
			r.Post("/vesting", h.createVesting)
			r.Post("/{id}/withdraw", h.withdraw)
			r.Post("/{id}/reclaim", h.reclaim)
		})
	})

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: ErrRouteNotFound.Error()}, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{Error: ErrMethodNotAllowed.Error()}, http.StatusMethodNotAllowed)
}
