package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hortivise/payment-module/src/internal/adapter/http/middleware"
	"github.com/hortivise/payment-module/src/internal/commons"
)

const bannerMessage = "Hortivise REST API's is Started."

type RouteRegistrar interface {
	RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler)
}

func New(authMiddleware func(http.Handler) http.Handler, registrars ...RouteRegistrar) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Metrics)
	r.Use(chimw.Recoverer)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusNotFound, commons.MessageNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, commons.MessageMethodNotAllowed)
	})

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusOK, bannerMessage)
	})
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeMessage(w, http.StatusOK, "ok")
	})
	r.Handle("/metrics", promhttp.Handler())
	registerSwaggerRoutes(r)

	for _, registrar := range registrars {
		if registrar != nil {
			registrar.RegisterRoutes(r, authMiddleware)
		}
	}

	return r
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(commons.MessageResponse(message).WithCode(status))
}
