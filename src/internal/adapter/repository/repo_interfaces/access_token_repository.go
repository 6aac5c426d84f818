package repo_interfaces

import (
	"context"

	"github.com/hortivise/payment-module/src/internal/domain"
)

type AccessTokenRepository interface {
	Create(ctx context.Context, token domain.AccessToken) (domain.AccessToken, error)
	GetByID(ctx context.Context, id string) (domain.AccessToken, error)
	Touch(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
