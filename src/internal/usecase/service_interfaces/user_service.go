package service_interfaces

import (
	"context"

	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/commons"
)

type UserService interface {
	All(ctx context.Context) (commons.Response[[]models.UserResponse], error)
	Single(ctx context.Context, id string) (commons.Response[models.UserResponse], error)
	Update(ctx context.Context, id string, req models.UpdateUserRequest) (commons.Response[models.UserResponse], error)
	Delete(ctx context.Context, id string) (commons.Response[models.UserResponse], error)
}
