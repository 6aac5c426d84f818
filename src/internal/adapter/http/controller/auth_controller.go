package controller

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hortivise/payment-module/src/internal/adapter/http/middleware"
	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/commons"
	"github.com/hortivise/payment-module/src/internal/domain"
	"github.com/hortivise/payment-module/src/internal/usecase/service_interfaces"
)

type AuthController struct {
	service service_interfaces.AuthService
}

func NewAuthController(service service_interfaces.AuthService) *AuthController {
	return &AuthController{service: service}
}

// RegisterRoutes mounts the auth routes. Only login is public; registering
// a user needs an authenticated caller.
func (c *AuthController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", c.login)

		r.Group(func(r chi.Router) {
			if authMiddleware != nil {
				r.Use(authMiddleware)
			}
			r.Get("/", c.authenticated)
			r.Post("/register", c.register)
			r.Post("/logout", c.logout)
		})
	})
}

func (c *AuthController) login(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	req, ok := bindJSON[models.LoginRequest](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.Login(r.Context(), req)
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *AuthController) register(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	req, ok := bindJSON[models.RegisterRequest](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.Register(r.Context(), req)
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *AuthController) authenticated(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		respond(w, r, start, commons.ErrorResponse[struct{}](commons.MessageUnauthorized), domain.ErrUnauthorized, http.StatusOK)
		return
	}

	response, err := c.service.Authenticated(r.Context(), user)
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *AuthController) logout(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		respond(w, r, start, commons.ErrorResponse[struct{}](commons.MessageUnauthorized), domain.ErrUnauthorized, http.StatusOK)
		return
	}

	response, err := c.service.Logout(r.Context(), token)
	respond(w, r, start, response, err, http.StatusOK)
}
