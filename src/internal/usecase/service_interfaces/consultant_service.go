package service_interfaces

import (
	"context"

	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/commons"
)

type ConsultantService interface {
	All(ctx context.Context) (commons.Response[[]models.ConsultantResponse], error)
	Single(ctx context.Context, accountID string) (commons.Response[models.ConsultantResponse], error)
	Create(ctx context.Context, req models.CreateConsultantRequest) (commons.Response[models.ConsultantResponse], error)
	OnboardingLink(ctx context.Context, accountID string) (commons.Response[string], error)
	Delete(ctx context.Context, accountID string) (commons.Response[models.DeleteConsultantResponse], error)
}
