package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dfcarvalho/posto/internal/http/directory"
	"github.com/dfcarvalho/posto/internal/http/importcsv"
	"github.com/dfcarvalho/posto/internal/http/records"
	"github.com/dfcarvalho/posto/internal/http/report"
)

func New(
	importV1 *importcsv.Handler,
	reportV1 *report.Handler,
	directoryV1 *directory.Handler,
	recordsV1 *records.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/import", importV1.Routes)

		r.Route("/report", reportV1.Routes)

		r.Route("/directory", directoryV1.Routes)

		r.Route("/records", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			recordsV1.Routes(r)
		})
	})

	return router
}
