package domain

import (
	"errors"
	"net/http"
	"strings"
)

var ErrRecordNotFound = errors.New("Record not found")
var ErrEmailTaken = errors.New("Email already exists")
var ErrInvalidCredentials = errors.New("Invalid user credentials")
var ErrUnauthorized = errors.New("Unauthorized access")

// ValidationError is returned for malformed input and for workflow checks
// that must be reported to the client as a bad request.
type ValidationError struct {
	Message string
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Details, "; ")
}

func NewValidationError(message string, details ...string) *ValidationError {
	return &ValidationError{Message: message, Details: details}
}

type GatewayErrorKind string

const (
	GatewayErrorInvalidRequest  GatewayErrorKind = "invalid_request"
	GatewayErrorNotFound        GatewayErrorKind = "not_found"
	GatewayErrorAlreadyRefunded GatewayErrorKind = "already_refunded"
	GatewayErrorCard            GatewayErrorKind = "card"
	GatewayErrorAuthentication  GatewayErrorKind = "authentication"
	GatewayErrorRateLimit       GatewayErrorKind = "rate_limit"
	GatewayErrorAPI             GatewayErrorKind = "api"
	GatewayErrorConnection      GatewayErrorKind = "connection"
)

// GatewayError carries a failure reported by the payment gateway. Status is
// the HTTP status the gateway answered with, zero when none was reported.
type GatewayError struct {
	Kind    GatewayErrorKind
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Code != "" {
		return "payment gateway " + string(e.Kind) + " (" + e.Code + "): " + e.Message
	}
	return "payment gateway " + string(e.Kind) + ": " + e.Message
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func (e *GatewayError) HTTPStatus() int {
	if e.Status >= 400 && e.Status <= 599 {
		return e.Status
	}
	return http.StatusInternalServerError
}

func IsGatewayNotFound(err error) bool {
	var gwErr *GatewayError
	return errors.As(err, &gwErr) && gwErr.Kind == GatewayErrorNotFound
}
