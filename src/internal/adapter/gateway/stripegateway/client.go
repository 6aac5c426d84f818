package stripegateway

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"

	"github.com/hortivise/payment-module/src/internal/logger"
)

var (
	gatewayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_gateway_requests_total",
		Help: "Payment gateway calls, labeled by operation and outcome",
	}, []string{"operation", "outcome"})

	gatewayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "payment_gateway_request_duration_seconds",
		Help:    "Latency distribution of payment gateway calls",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"operation"})
)

// Client implements the domain gateway interfaces on top of the Stripe API.
// It holds its own API handle; nothing is read from or written to the
// package-level stripe.Key.
type Client struct {
	api *client.API
}

func New(apiKey string) *Client {
	return &Client{api: client.New(apiKey, nil)}
}

// NewWithBackends points the client at custom backends, e.g. stripe-mock or
// an httptest server.
func NewWithBackends(apiKey string, backends *stripe.Backends) *Client {
	return &Client{api: client.New(apiKey, backends)}
}

func params(ctx context.Context) stripe.Params {
	return stripe.Params{Context: ctx}
}

func listParams(ctx context.Context) stripe.ListParams {
	return stripe.ListParams{Context: ctx}
}

// call runs one gateway operation, records metrics and translates the error.
func call[T any](operation string, fn func() (T, error)) (T, error) {
	start := time.Now()
	result, err := fn()
	gatewayRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	if err != nil {
		gwErr := translateError(err)
		gatewayRequestsTotal.WithLabelValues(operation, string(gwErr.Kind)).Inc()
		logger.Error("payment gateway call failed", gwErr, logger.Fields{
			"operation":  operation,
			"kind":       gwErr.Kind,
			"code":       gwErr.Code,
			"status":     gwErr.Status,
			"durationMs": time.Since(start).Milliseconds(),
		})
		var zero T
		return zero, gwErr
	}

	gatewayRequestsTotal.WithLabelValues(operation, "ok").Inc()
	return result, nil
}
