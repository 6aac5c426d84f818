package services

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/commons"
	"github.com/hortivise/payment-module/src/internal/domain"
	"github.com/hortivise/payment-module/src/internal/logger"
)

const (
	MsgInvalidProductID = "Valid product ID should start with prod_"

	productStatusActive   = "active"
	productStatusArchived = "archived"

	priceLookupConcurrency = 5
)

type ProductService struct {
	gateway  domain.CatalogGateway
	currency string
}

func NewProductService(gateway domain.CatalogGateway, currency string) *ProductService {
	return &ProductService{gateway: gateway, currency: domain.NormalizeCurrency(currency)}
}

// All lists every product with its first active price.
func (s *ProductService) All(ctx context.Context) (commons.Response[[]models.ProductResponse], error) {
	products, err := s.gateway.ListProducts(ctx)
	if err != nil {
		return failure[[]models.ProductResponse](err), err
	}

	out := make([]models.ProductResponse, len(products))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(priceLookupConcurrency)
	for i, product := range products {
		i, product := i, product
		g.Go(func() error {
			price, err := s.firstActivePrice(gctx, product.ID)
			if err != nil {
				return err
			}
			out[i] = productResponse(product, price)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return failure[[]models.ProductResponse](err), err
	}

	logger.Info("product service list success", logger.Fields{
		"count": len(out),
	})

	return commons.SuccessResponse(commons.MessageOK, out), nil
}

func (s *ProductService) Single(ctx context.Context, id string) (commons.Response[models.ProductResponse], error) {
	if err := checkProductID(id); err != nil {
		return failure[models.ProductResponse](err), err
	}

	product, err := s.gateway.GetProduct(ctx, id)
	if err != nil {
		return failure[models.ProductResponse](err), err
	}

	price, err := s.firstActivePrice(ctx, product.ID)
	if err != nil {
		return failure[models.ProductResponse](err), err
	}

	return commons.SuccessResponse(commons.MessageOK, productResponse(product, price)), nil
}

func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest) (commons.Response[models.ProductResponse], error) {
	logger.Info("product service create request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	unitAmount, err := domain.ToMinorUnits(req.Price, s.currency)
	if err != nil {
		vErr := domain.NewValidationError(commons.MessageValidationFailed, err.Error())
		return failure[models.ProductResponse](vErr), vErr
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product, err := s.gateway.CreateProduct(ctx, domain.ProductParams{
		Name:        &req.Name,
		Description: req.Description,
		Active:      &active,
	})
	if err != nil {
		return failure[models.ProductResponse](err), err
	}

	price, err := s.gateway.CreatePrice(ctx, domain.PriceParams{
		ProductID:  product.ID,
		Currency:   s.currency,
		UnitAmount: unitAmount,
	})
	if err != nil {
		return failure[models.ProductResponse](err), err
	}

	logger.Info("product service create success", logger.Fields{
		"productId": product.ID,
		"priceId":   price.ID,
	})

	return commons.SuccessResponse(commons.MessageCreated, productResponse(product, &price)), nil
}

// Update changes the product fields and, when a price is given, archives the
// active prices and creates a new one. A missing active flag reactivates the
// product.
func (s *ProductService) Update(ctx context.Context, id string, req models.UpdateProductRequest) (commons.Response[models.ProductResponse], error) {
	logger.Info("product service update request", logger.Fields{
		"productId": id,
		"payload":   logger.SanitizePayload(req),
	})

	if err := checkProductID(id); err != nil {
		return failure[models.ProductResponse](err), err
	}

	var unitAmount int64
	if req.Price != nil {
		amount, err := domain.ToMinorUnits(*req.Price, s.currency)
		if err != nil {
			vErr := domain.NewValidationError(commons.MessageValidationFailed, err.Error())
			return failure[models.ProductResponse](vErr), vErr
		}
		unitAmount = amount
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product, err := s.gateway.UpdateProduct(ctx, id, domain.ProductParams{
		Name:        req.Name,
		Description: req.Description,
		Active:      &active,
	})
	if err != nil {
		return failure[models.ProductResponse](err), err
	}

	if req.Price == nil {
		price, err := s.firstActivePrice(ctx, product.ID)
		if err != nil {
			return failure[models.ProductResponse](err), err
		}
		return commons.SuccessResponse(commons.MessageOK, productResponse(product, price)), nil
	}

	existing, err := s.gateway.ListActivePrices(ctx, product.ID)
	if err != nil {
		return failure[models.ProductResponse](err), err
	}
	for _, old := range existing {
		if err := s.gateway.DeactivatePrice(ctx, old.ID); err != nil {
			logger.Error("product service deactivate price failed", err, logger.Fields{
				"productId": product.ID,
				"priceId":   old.ID,
			})
		}
	}

	price, err := s.gateway.CreatePrice(ctx, domain.PriceParams{
		ProductID:  product.ID,
		Currency:   s.currency,
		UnitAmount: unitAmount,
	})
	if err != nil {
		return failure[models.ProductResponse](err), err
	}

	logger.Info("product service update replaced price", logger.Fields{
		"productId":     product.ID,
		"priceId":       price.ID,
		"archivedCount": len(existing),
	})

	return commons.SuccessResponse(commons.MessageOK, productResponse(product, &price)), nil
}

// Delete archives the product. Products with prices cannot be removed.
func (s *ProductService) Delete(ctx context.Context, id string) (commons.Response[models.DeleteProductResponse], error) {
	if err := checkProductID(id); err != nil {
		return failure[models.DeleteProductResponse](err), err
	}

	inactive := false
	product, err := s.gateway.UpdateProduct(ctx, id, domain.ProductParams{Active: &inactive})
	if err != nil {
		return failure[models.DeleteProductResponse](err), err
	}

	status := productStatusArchived
	if product.Active {
		status = productStatusActive
	}

	logger.Info("product service archive success", logger.Fields{
		"productId": product.ID,
		"status":    status,
	})

	return commons.SuccessResponse(commons.MessageOK, models.DeleteProductResponse{
		ProductID: product.ID,
		Status:    status,
	}), nil
}

func (s *ProductService) firstActivePrice(ctx context.Context, productID string) (*domain.Price, error) {
	prices, err := s.gateway.ListActivePrices(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(prices) == 0 {
		return nil, nil
	}
	return &prices[0], nil
}

func checkProductID(id string) error {
	if !strings.HasPrefix(id, domain.ProductIDPrefix) {
		return domain.NewValidationError(MsgInvalidProductID)
	}
	return nil
}

func productResponse(product domain.Product, price *domain.Price) models.ProductResponse {
	out := models.ProductResponse{
		Name:      product.Name,
		Active:    product.Active,
		ProductID: product.ID,
	}
	if product.Description != "" {
		description := product.Description
		out.Description = &description
	}
	if price != nil {
		amount := domain.ToMajorUnits(price.UnitAmount, price.Currency)
		out.PriceID = price.ID
		out.Price = &amount
	}
	return out
}

