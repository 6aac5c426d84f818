package stripegateway

import (
	"errors"
	"net/http"

	"github.com/stripe/stripe-go/v74"

	"github.com/hortivise/payment-module/src/internal/domain"
)

func translateError(err error) *domain.GatewayError {
	var gwErr *domain.GatewayError
	if errors.As(err, &gwErr) {
		return gwErr
	}

	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return &domain.GatewayError{
			Kind:    domain.GatewayErrorConnection,
			Message: err.Error(),
			Err:     err,
		}
	}

	return &domain.GatewayError{
		Kind:    kindFor(stripeErr),
		Code:    string(stripeErr.Code),
		Message: stripeErr.Msg,
		Status:  stripeErr.HTTPStatusCode,
		Err:     err,
	}
}

func kindFor(e *stripe.Error) domain.GatewayErrorKind {
	switch e.Code {
	case stripe.ErrorCodeChargeAlreadyRefunded:
		return domain.GatewayErrorAlreadyRefunded
	case stripe.ErrorCodeResourceMissing:
		return domain.GatewayErrorNotFound
	}

	switch e.HTTPStatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.GatewayErrorAuthentication
	case http.StatusTooManyRequests:
		return domain.GatewayErrorRateLimit
	case http.StatusNotFound:
		return domain.GatewayErrorNotFound
	}

	switch e.Type {
	case stripe.ErrorTypeCard:
		return domain.GatewayErrorCard
	case stripe.ErrorTypeInvalidRequest, stripe.ErrorTypeIdempotency:
		return domain.GatewayErrorInvalidRequest
	default:
		return domain.GatewayErrorAPI
	}
}
