package stripegateway

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/hortivise/payment-module/src/internal/domain"
)

func (c *Client) GetPaymentIntent(ctx context.Context, id string) (domain.PaymentIntent, error) {
	return call("payment_intents.retrieve", func() (domain.PaymentIntent, error) {
		pi, err := c.api.PaymentIntents.Get(id, &stripe.PaymentIntentParams{Params: params(ctx)})
		if err != nil {
			return domain.PaymentIntent{}, err
		}

		out := domain.PaymentIntent{
			ID:             pi.ID,
			Status:         string(pi.Status),
			Amount:         pi.Amount,
			AmountReceived: pi.AmountReceived,
			Currency:       string(pi.Currency),
		}
		if pi.LatestCharge != nil {
			out.ChargeID = pi.LatestCharge.ID
		}
		return out, nil
	})
}

func (c *Client) GetCharge(ctx context.Context, id string) (domain.Charge, error) {
	return call("charges.retrieve", func() (domain.Charge, error) {
		ch, err := c.api.Charges.Get(id, &stripe.ChargeParams{Params: params(ctx)})
		if err != nil {
			return domain.Charge{}, err
		}
		return domain.Charge{
			ID:            ch.ID,
			Amount:        ch.Amount,
			Currency:      string(ch.Currency),
			Paid:          ch.Paid,
			Refunded:      ch.Refunded,
			Status:        string(ch.Status),
			TransferGroup: ch.TransferGroup,
		}, nil
	})
}

// GetBalance returns the platform's available balance per currency.
func (c *Client) GetBalance(ctx context.Context) (domain.Balance, error) {
	return call("balance.retrieve", func() (domain.Balance, error) {
		b, err := c.api.Balance.Get(&stripe.BalanceParams{Params: params(ctx)})
		if err != nil {
			return domain.Balance{}, err
		}

		out := domain.Balance{Available: make(map[string]int64, len(b.Available))}
		for _, amount := range b.Available {
			out.Available[domain.NormalizeCurrency(string(amount.Currency))] += amount.Amount
		}
		return out, nil
	})
}

func (c *Client) CreateRefund(ctx context.Context, req domain.RefundRequest) (domain.Refund, error) {
	p := &stripe.RefundParams{
		Params:        params(ctx),
		PaymentIntent: stripe.String(req.PaymentIntentID),
	}
	if req.Amount != nil {
		p.Amount = stripe.Int64(*req.Amount)
	}
	if req.IdempotencyKey != "" {
		p.SetIdempotencyKey(req.IdempotencyKey)
	}

	return call("refunds.create", func() (domain.Refund, error) {
		r, err := c.api.Refunds.New(p)
		if err != nil {
			return domain.Refund{}, err
		}

		out := domain.Refund{
			ID:       r.ID,
			Status:   string(r.Status),
			Amount:   r.Amount,
			Created:  r.Created,
			Currency: string(r.Currency),
		}
		if r.Charge != nil {
			out.ChargeID = r.Charge.ID
		}
		if r.PaymentIntent != nil {
			out.PaymentIntentID = r.PaymentIntent.ID
		}
		if r.BalanceTransaction != nil {
			out.BalanceTransaction = r.BalanceTransaction.ID
		}
		return out, nil
	})
}

func (c *Client) CreateTransfer(ctx context.Context, req domain.TransferRequest) (domain.Transfer, error) {
	p := &stripe.TransferParams{
		Params:      params(ctx),
		Amount:      stripe.Int64(req.Amount),
		Currency:    stripe.String(domain.NormalizeCurrency(req.Currency)),
		Destination: stripe.String(req.Destination),
	}
	if req.TransferGroup != "" {
		p.TransferGroup = stripe.String(req.TransferGroup)
	}
	if req.IdempotencyKey != "" {
		p.SetIdempotencyKey(req.IdempotencyKey)
	}

	return call("transfers.create", func() (domain.Transfer, error) {
		t, err := c.api.Transfers.New(p)
		if err != nil {
			return domain.Transfer{}, err
		}

		out := domain.Transfer{
			ID:       t.ID,
			Amount:   t.Amount,
			Currency: string(t.Currency),
			Created:  t.Created,
			Reversed: t.Reversed,
		}
		if t.Destination != nil {
			out.Destination = t.Destination.ID
		}
		return out, nil
	})
}
