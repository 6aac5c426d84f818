package controller

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/usecase/service_interfaces"
)

type ConsultantController struct {
	service service_interfaces.ConsultantService
}

func NewConsultantController(service service_interfaces.ConsultantService) *ConsultantController {
	return &ConsultantController{service: service}
}

func (c *ConsultantController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/v1/consultants", func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Get("/", c.all)
		r.Post("/", c.create)
		r.Get("/onboarding", c.onboardingLink)
		r.Get("/{id}", c.single)
		r.Delete("/{id}", c.delete)
	})
}

func (c *ConsultantController) all(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.All(r.Context())
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *ConsultantController) single(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.Single(r.Context(), chi.URLParam(r, "id"))
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *ConsultantController) create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	req, ok := bindJSON[models.CreateConsultantRequest](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.Create(r.Context(), req)
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *ConsultantController) onboardingLink(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.OnboardingLink(r.Context(), r.URL.Query().Get("account_id"))
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *ConsultantController) delete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.Delete(r.Context(), chi.URLParam(r, "id"))
	respond(w, r, start, response, err, http.StatusOK)
}
