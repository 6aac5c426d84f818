package controller

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/usecase/service_interfaces"
)

type UserController struct {
	service service_interfaces.UserService
}

func NewUserController(service service_interfaces.UserService) *UserController {
	return &UserController{service: service}
}

func (c *UserController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/v1/users", func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Get("/", c.all)
		r.Get("/{id}", c.single)
		r.Put("/{id}", c.update)
		r.Delete("/{id}", c.delete)
	})
}

func (c *UserController) all(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.All(r.Context())
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *UserController) single(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.Single(r.Context(), chi.URLParam(r, "id"))
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *UserController) update(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	req, ok := bindJSON[models.UpdateUserRequest](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.Update(r.Context(), chi.URLParam(r, "id"), req)
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *UserController) delete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	response, err := c.service.Delete(r.Context(), chi.URLParam(r, "id"))
	respond(w, r, start, response, err, http.StatusOK)
}
