package stripegateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v74"

	"github.com/hortivise/payment-module/src/internal/domain"
)

func (c *Client) GetPrice(ctx context.Context, id string) (domain.Price, error) {
	return call("prices.retrieve", func() (domain.Price, error) {
		p, err := c.api.Prices.Get(id, &stripe.PriceParams{Params: params(ctx)})
		if err != nil {
			return domain.Price{}, err
		}
		return toPrice(p), nil
	})
}

// SearchCustomers looks customers up by name, email or phone.
func (c *Client) SearchCustomers(ctx context.Context, field string, value string) ([]domain.Customer, error) {
	switch field {
	case "name", "email", "phone":
	default:
		return nil, fmt.Errorf("unsupported customer search field %q", field)
	}

	query := fmt.Sprintf(`%s:"%s"`, field, strings.ReplaceAll(value, `"`, `\"`))
	return call("customers.search", func() ([]domain.Customer, error) {
		iter := c.api.Customers.Search(&stripe.CustomerSearchParams{
			SearchParams: stripe.SearchParams{Context: ctx, Query: query},
		})

		var out []domain.Customer
		for iter.Next() {
			cust := iter.Customer()
			out = append(out, domain.Customer{ID: cust.ID, Email: cust.Email, Name: cust.Name})
		}
		if err := iter.Err(); err != nil {
			return nil, err
		}
		return out, nil
	})
}

func (c *Client) CreateCustomer(ctx context.Context, email string) (domain.Customer, error) {
	return call("customers.create", func() (domain.Customer, error) {
		cust, err := c.api.Customers.New(&stripe.CustomerParams{
			Params: params(ctx),
			Email:  stripe.String(email),
		})
		if err != nil {
			return domain.Customer{}, err
		}
		return domain.Customer{ID: cust.ID, Email: cust.Email, Name: cust.Name}, nil
	})
}

func (c *Client) CreateCheckoutSession(ctx context.Context, req domain.CheckoutSessionParams) (domain.CheckoutSession, error) {
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	p := &stripe.CheckoutSessionParams{
		Params:     params(ctx),
		Customer:   stripe.String(req.CustomerID),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.PriceID),
				Quantity: stripe.Int64(quantity),
			},
		},
	}
	for k, v := range req.Metadata {
		p.AddMetadata(k, v)
	}
	if req.IdempotencyKey != "" {
		p.SetIdempotencyKey(req.IdempotencyKey)
	}

	return call("checkout.sessions.create", func() (domain.CheckoutSession, error) {
		s, err := c.api.CheckoutSessions.New(p)
		if err != nil {
			return domain.CheckoutSession{}, err
		}
		return toCheckoutSession(s), nil
	})
}

func (c *Client) GetCheckoutSession(ctx context.Context, id string) (domain.CheckoutSession, error) {
	return call("checkout.sessions.retrieve", func() (domain.CheckoutSession, error) {
		s, err := c.api.CheckoutSessions.Get(id, &stripe.CheckoutSessionParams{Params: params(ctx)})
		if err != nil {
			return domain.CheckoutSession{}, err
		}
		return toCheckoutSession(s), nil
	})
}

func toCheckoutSession(s *stripe.CheckoutSession) domain.CheckoutSession {
	out := domain.CheckoutSession{
		ID:            s.ID,
		URL:           s.URL,
		Currency:      string(s.Currency),
		Created:       s.Created,
		Email:         s.CustomerEmail,
		AmountTotal:   s.AmountTotal,
		PaymentStatus: string(s.PaymentStatus),
	}
	if s.CustomerDetails != nil && s.CustomerDetails.Email != "" {
		out.Email = s.CustomerDetails.Email
	}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	return out
}

func toPrice(p *stripe.Price) domain.Price {
	out := domain.Price{
		ID:         p.ID,
		Currency:   string(p.Currency),
		UnitAmount: p.UnitAmount,
		Active:     p.Active,
		Recurring:  p.Recurring != nil || p.Type == stripe.PriceTypeRecurring,
	}
	if p.Product != nil {
		out.ProductID = p.Product.ID
	}
	return out
}
