package services

import (
	"errors"

	"github.com/hortivise/payment-module/src/internal/commons"
	"github.com/hortivise/payment-module/src/internal/domain"
)

func failure[T any](err error) commons.Response[T] {
	return commons.ErrorResponse[T](failureMessage(err))
}

// failureMessage picks the client-facing message for err. Gateway messages
// are passed through; anything unrecognised gets the generic message.
func failureMessage(err error) string {
	var validationErr *domain.ValidationError
	var gwErr *domain.GatewayError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.Is(err, domain.ErrRecordNotFound), domain.IsGatewayNotFound(err):
		return commons.MessageNotFound
	case errors.Is(err, domain.ErrEmailTaken):
		return commons.MessageConflict
	case errors.Is(err, domain.ErrInvalidCredentials):
		return domain.ErrInvalidCredentials.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return commons.MessageUnauthorized
	case errors.As(err, &gwErr) && gwErr.Message != "":
		return gwErr.Message
	default:
		return commons.MessageInternalServerError
	}
}
