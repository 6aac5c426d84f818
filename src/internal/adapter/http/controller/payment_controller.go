package controller

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/usecase/service_interfaces"
)

type PaymentController struct {
	service service_interfaces.PaymentService
}

func NewPaymentController(service service_interfaces.PaymentService) *PaymentController {
	return &PaymentController{service: service}
}

func (c *PaymentController) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/v1/payment", func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}
		r.Post("/charge", c.charge)
		r.Get("/verify", c.verify)
		r.Post("/refund", c.refund)
		r.Post("/partial-refund", c.partialRefund)
		r.Post("/release", c.release)
	})
}

func (c *PaymentController) charge(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	req, ok := bindJSON[models.ChargeRequest](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.Charge(r.Context(), req, idempotencyKey(r))
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *PaymentController) verify(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	req := models.VerifyRequest{SessionID: r.URL.Query().Get("session_id")}
	if err := req.Validate(); err != nil {
		respondValidation(w, r, start, err)
		return
	}

	response, err := c.service.Verify(r.Context(), req)
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *PaymentController) refund(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	req, ok := bindJSON[models.RefundRequest](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.Refund(r.Context(), req, idempotencyKey(r))
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *PaymentController) partialRefund(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	req, ok := bindJSON[models.PartialRefundRequest](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.PartialRefund(r.Context(), req, idempotencyKey(r))
	respond(w, r, start, response, err, http.StatusOK)
}

func (c *PaymentController) release(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	req, ok := bindJSON[models.ReleaseRequest](w, r, start)
	if !ok {
		return
	}

	response, err := c.service.Release(r.Context(), req, idempotencyKey(r))
	respond(w, r, start, response, err, http.StatusOK)
}
