package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/api/version", h.getServerVersion)

	// Everything below requires the gateway-established identity.
	router.Group(func(r chi.Router) {
		r.Use(h.withIdentity)

		r.Get("/api/banks", h.listBanks)
		r.Get("/api/banks/{bankID}", h.getBank)

		r.Route("/api/connections", func(r chi.Router) {
			r.Post("/", h.createConnection)
			r.Get("/", h.listConnections)

			r.Route("/{connectionID}", func(r chi.Router) {
				r.Get("/", h.getConnection)
				r.Delete("/", h.deleteConnection)
				r.Patch("/alias", h.updateAlias)
				r.Post("/deactivate", h.deactivateConnection)

				r.Post("/login/initiate", h.initiateLogin)
				r.Post("/login/finalize", h.finalizeLogin)

				r.Get("/accounts", h.fetchAccounts)
				r.Get("/accounts/{accountID}/transactions", h.fetchTransactions)
			})
		})

		r.Route("/api/credentials", func(r chi.Router) {
			r.Post("/", h.storeCredential)
			r.Get("/{keyType}", h.retrieveCredential)
		})
	})

	return router
}
