package controller

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/usecase/service_interfaces"
)

type ProductController struct {
	service service_interfaces.ProductService
}

func NewProductController(service service_interfaces.ProductService) *ProductController {
	return &ProductController{service: service}
}

func (c *ProductController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/v1/products", func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Get("/", c.all)
		r.Post("/", c.create)
		r.Get("/{id}", c.single)
		r.Put("/{id}", c.update)
		r.Delete("/{id}", c.delete)
	})
}

func (c *ProductController) all(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.All(r.Context())
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *ProductController) single(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.Single(r.Context(), chi.URLParam(r, "id"))
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *ProductController) create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	req, ok := bindJSON[models.CreateProductRequest](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.Create(r.Context(), req)
	respond(w, r, start, response, err, http.StatusCreated)
}

func (c *ProductController) update(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	req, ok := bindJSON[models.UpdateProductRequest](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *ProductController) delete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.Delete(r.Context(), chi.URLParam(r, "id"))
	respond(w, r, start, response, err, http.StatusOK)
}
