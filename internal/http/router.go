package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nicholasDWinters/biztime-exercise/internal/http/company"
	"github.com/nicholasDWinters/biztime-exercise/internal/http/importcsv"
	"github.com/nicholasDWinters/biztime-exercise/internal/http/industry"
	"github.com/nicholasDWinters/biztime-exercise/internal/http/invoice"
)

func New(
	companies *company.Handler,
	invoices *invoice.Handler,
	industries *industry.Handler,
	imports *importcsv.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/companies", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		companies.Routes(r)
	})

	router.Route("/invoices", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		invoices.Routes(r)
	})

	router.Route("/industries", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		industries.Routes(r)
	})

	router.Route("/import", imports.Routes)

	return router
}
