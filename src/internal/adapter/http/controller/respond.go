package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/hortivise/payment-module/src/internal/commons"
	"github.com/hortivise/payment-module/src/internal/domain"
	"github.com/hortivise/payment-module/src/internal/logger"
)

const idempotencyKeyHeader = "Idempotency-Key"

type validatable[T any] interface {
	*T
	Validate() error
}

// bindJSON decodes and validates the request body. On failure it has
// already written the 400 response.
func bindJSON[T any, P validatable[T]](w http.ResponseWriter, r *http.Request, start time.Time) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		response := commons.ErrorResponse[struct{}](commons.MessageInvalidRequestBody).WithCode(http.StatusBadRequest)
		writeJSON(w, http.StatusBadRequest, response)
		logResponse(r, http.StatusBadRequest, response, start)
		return req, false
	}
	logRequest(r, req)

	if err := P(&req).Validate(); err != nil {
		respondValidation(w, r, start, err)
		return req, false
	}
	return req, true
}

// respond writes the service envelope with the status derived from err.
func respond[T any](w http.ResponseWriter, r *http.Request, start time.Time, response commons.Response[T], err error, successStatus int) {
	status := successStatus
	if err != nil {
		status = statusFor(err)
		logError(r, err, logger.Fields{"message": response.Message})
	}

	response = response.WithCode(status)
	writeJSON(w, status, response)
	logResponse(r, status, response, start)
}

func statusFor(err error) int {
	var validationErr *domain.ValidationError
	var gwErr *domain.GatewayError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRecordNotFound), domain.IsGatewayNotFound(err):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &gwErr):
		return gwErr.HTTPStatus()
	default:
		return http.StatusInternalServerError
	}
}

func idempotencyKey(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(idempotencyKeyHeader))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondValidation(w http.ResponseWriter, r *http.Request, start time.Time, err error) {
	vErr := domain.NewValidationError(commons.MessageValidationFailed, err.Error())
	respond(w, r, start, commons.ErrorResponse[struct{}](vErr.Error()), vErr, http.StatusOK)
}
