package service_interfaces

import (
	"context"

	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/commons"
	"github.com/hortivise/payment-module/src/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (commons.Response[models.UserResponse], error)
	Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.TokenResponse], error)
	Logout(ctx context.Context, token domain.AccessToken) (commons.Response[struct{}], error)
	Authenticated(ctx context.Context, user domain.User) (commons.Response[models.UserResponse], error)
}

// Authenticator resolves a bearer token for the auth middleware.
type Authenticator interface {
	Authenticate(ctx context.Context, bearer string) (domain.User, domain.AccessToken, error)
}
