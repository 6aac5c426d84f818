package stripegateway

import (
	"context"

	"github.com/stripe/stripe-go/v74"

	"github.com/hortivise/payment-module/src/internal/domain"
)

const accountLinkTypeOnboarding = "account_onboarding"

// ListConnectedAccounts returns a single page of express accounts.
func (c *Client) ListConnectedAccounts(ctx context.Context, limit int64) ([]domain.ConnectedAccount, error) {
	lp := listParams(ctx)
	lp.Single = true
	if limit > 0 {
		lp.Limit = stripe.Int64(limit)
	}

	return call("accounts.list", func() ([]domain.ConnectedAccount, error) {
		iter := c.api.Accounts.List(&stripe.AccountListParams{ListParams: lp})

		var out []domain.ConnectedAccount
		for iter.Next() {
			acct := toConnectedAccount(iter.Account())
			if acct.Type != domain.AccountTypeExpress {
				continue
			}
			out = append(out, acct)
		}
		if err := iter.Err(); err != nil {
			return nil, err
		}
		return out, nil
	})
}

func (c *Client) GetConnectedAccount(ctx context.Context, id string) (domain.ConnectedAccount, error) {
	return call("accounts.retrieve", func() (domain.ConnectedAccount, error) {
		a, err := c.api.Accounts.GetByID(id, &stripe.AccountParams{Params: params(ctx)})
		if err != nil {
			return domain.ConnectedAccount{}, err
		}
		return toConnectedAccount(a), nil
	})
}

func (c *Client) CreateConnectedAccount(ctx context.Context, req domain.ConnectedAccountParams) (domain.ConnectedAccount, error) {
	p := &stripe.AccountParams{
		Params:          params(ctx),
		Type:            stripe.String(string(stripe.AccountTypeExpress)),
		Email:           stripe.String(req.Email),
		Country:         stripe.String(req.Country),
		DefaultCurrency: stripe.String(domain.NormalizeCurrency(req.DefaultCurrency)),
		BusinessType:    stripe.String(string(stripe.AccountBusinessTypeIndividual)),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{Requested: stripe.Bool(true)},
			Transfers:    &stripe.AccountCapabilitiesTransfersParams{Requested: stripe.Bool(true)},
		},
		Individual: &stripe.PersonParams{
			FirstName: stripe.String(req.FirstName),
			Email:     stripe.String(req.Email),
		},
	}
	for k, v := range req.Metadata {
		p.AddMetadata(k, v)
	}

	return call("accounts.create", func() (domain.ConnectedAccount, error) {
		a, err := c.api.Accounts.New(p)
		if err != nil {
			return domain.ConnectedAccount{}, err
		}
		return toConnectedAccount(a), nil
	})
}

func (c *Client) DeleteConnectedAccount(ctx context.Context, id string) (domain.ConnectedAccount, error) {
	return call("accounts.delete", func() (domain.ConnectedAccount, error) {
		a, err := c.api.Accounts.Del(id, &stripe.AccountParams{Params: params(ctx)})
		if err != nil {
			return domain.ConnectedAccount{}, err
		}
		return toConnectedAccount(a), nil
	})
}

func (c *Client) CreateAccountLink(ctx context.Context, req domain.AccountLinkParams) (string, error) {
	return call("account_links.create", func() (string, error) {
		link, err := c.api.AccountLinks.New(&stripe.AccountLinkParams{
			Params:     params(ctx),
			Account:    stripe.String(req.AccountID),
			RefreshURL: stripe.String(req.RefreshURL),
			ReturnURL:  stripe.String(req.ReturnURL),
			Type:       stripe.String(accountLinkTypeOnboarding),
		})
		if err != nil {
			return "", err
		}
		return link.URL, nil
	})
}

func toConnectedAccount(a *stripe.Account) domain.ConnectedAccount {
	out := domain.ConnectedAccount{
		ID:               a.ID,
		Type:             string(a.Type),
		Email:            a.Email,
		DefaultCurrency:  string(a.DefaultCurrency),
		Country:          a.Country,
		Created:          a.Created,
		ChargesEnabled:   a.ChargesEnabled,
		PayoutsEnabled:   a.PayoutsEnabled,
		DetailsSubmitted: a.DetailsSubmitted,
		Deleted:          a.Deleted,
	}
	if a.Individual != nil {
		out.FirstName = a.Individual.FirstName
	}
	return out
}

var (
	_ domain.PaymentGateway    = (*Client)(nil)
	_ domain.CatalogGateway    = (*Client)(nil)
	_ domain.ConsultantGateway = (*Client)(nil)
)
