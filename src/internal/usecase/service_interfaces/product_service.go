package service_interfaces

import (
	"context"

	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/commons"
)

type ProductService interface {
	All(ctx context.Context) (commons.Response[[]models.ProductResponse], error)
	Single(ctx context.Context, id string) (commons.Response[models.ProductResponse], error)
	Create(ctx context.Context, req models.CreateProductRequest) (commons.Response[models.ProductResponse], error)
	Update(ctx context.Context, id string, req models.UpdateProductRequest) (commons.Response[models.ProductResponse], error)
	Delete(ctx context.Context, id string) (commons.Response[models.DeleteProductResponse], error)
}
