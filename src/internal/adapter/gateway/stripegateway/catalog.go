package stripegateway

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/hortivise/payment-module/src/internal/domain"
)

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return call("products.list", func() ([]domain.Product, error) {
		iter := c.api.Products.List(&stripe.ProductListParams{ListParams: listParams(ctx)})

		var out []domain.Product
		for iter.Next() {
			out = append(out, toProduct(iter.Product()))
		}
		if err := iter.Err(); err != nil {
			return nil, err
		}
		return out, nil
	})
}

func (c *Client) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	return call("products.retrieve", func() (domain.Product, error) {
		p, err := c.api.Products.Get(id, &stripe.ProductParams{Params: params(ctx)})
		if err != nil {
			return domain.Product{}, err
		}
		return toProduct(p), nil
	})
}

func (c *Client) CreateProduct(ctx context.Context, req domain.ProductParams) (domain.Product, error) {
	return call("products.create", func() (domain.Product, error) {
		p, err := c.api.Products.New(productParams(ctx, req))
		if err != nil {
			return domain.Product{}, err
		}
		return toProduct(p), nil
	})
}

func (c *Client) UpdateProduct(ctx context.Context, id string, req domain.ProductParams) (domain.Product, error) {
	return call("products.update", func() (domain.Product, error) {
		p, err := c.api.Products.Update(id, productParams(ctx, req))
		if err != nil {
			return domain.Product{}, err
		}
		return toProduct(p), nil
	})
}

func (c *Client) ListActivePrices(ctx context.Context, productID string) ([]domain.Price, error) {
	return call("prices.list", func() ([]domain.Price, error) {
		iter := c.api.Prices.List(&stripe.PriceListParams{
			ListParams: listParams(ctx),
			Product:    stripe.String(productID),
			Active:     stripe.Bool(true),
		})

		var out []domain.Price
		for iter.Next() {
			out = append(out, toPrice(iter.Price()))
		}
		if err := iter.Err(); err != nil {
			return nil, err
		}
		return out, nil
	})
}

func (c *Client) CreatePrice(ctx context.Context, req domain.PriceParams) (domain.Price, error) {
	return call("prices.create", func() (domain.Price, error) {
		p, err := c.api.Prices.New(&stripe.PriceParams{
			Params:     params(ctx),
			Product:    stripe.String(req.ProductID),
			Currency:   stripe.String(domain.NormalizeCurrency(req.Currency)),
			UnitAmount: stripe.Int64(req.UnitAmount),
		})
		if err != nil {
			return domain.Price{}, err
		}
		return toPrice(p), nil
	})
}

// DeactivatePrice archives a price. Stripe prices cannot be deleted.
func (c *Client) DeactivatePrice(ctx context.Context, id string) error {
	_, err := call("prices.update", func() (*stripe.Price, error) {
		return c.api.Prices.Update(id, &stripe.PriceParams{
			Params: params(ctx),
			Active: stripe.Bool(false),
		})
	})
	return err
}

func productParams(ctx context.Context, req domain.ProductParams) *stripe.ProductParams {
	p := &stripe.ProductParams{Params: params(ctx)}
	if req.Name != nil {
		p.Name = stripe.String(*req.Name)
	}
	if req.Description != nil {
		p.Description = stripe.String(*req.Description)
	}
	if req.Active != nil {
		p.Active = stripe.Bool(*req.Active)
	}
	return p
}

func toProduct(p *stripe.Product) domain.Product {
	return domain.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Active:      p.Active,
	}
}
