package domain

import "context"

// CheckoutGateway covers the hosted checkout flow.
type CheckoutGateway interface {
	GetPrice(ctx context.Context, id string) (Price, error)
	SearchCustomers(ctx context.Context, field string, value string) ([]Customer, error)
	CreateCustomer(ctx context.Context, email string) (Customer, error)
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, id string) (CheckoutSession, error)
}

// SettlementGateway covers refunds and release of funds to connected accounts.
type SettlementGateway interface {
	GetPaymentIntent(ctx context.Context, id string) (PaymentIntent, error)
	GetCharge(ctx context.Context, id string) (Charge, error)
	GetBalance(ctx context.Context) (Balance, error)
	CreateRefund(ctx context.Context, req RefundRequest) (Refund, error)
	CreateTransfer(ctx context.Context, req TransferRequest) (Transfer, error)
}

type PaymentGateway interface {
	CheckoutGateway
	SettlementGateway
}

type CatalogGateway interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (Product, error)
	CreateProduct(ctx context.Context, params ProductParams) (Product, error)
	UpdateProduct(ctx context.Context, id string, params ProductParams) (Product, error)
	ListActivePrices(ctx context.Context, productID string) ([]Price, error)
	CreatePrice(ctx context.Context, params PriceParams) (Price, error)
	DeactivatePrice(ctx context.Context, id string) error
}

type ConsultantGateway interface {
	ListConnectedAccounts(ctx context.Context, limit int64) ([]ConnectedAccount, error)
	GetConnectedAccount(ctx context.Context, id string) (ConnectedAccount, error)
	CreateConnectedAccount(ctx context.Context, params ConnectedAccountParams) (ConnectedAccount, error)
	DeleteConnectedAccount(ctx context.Context, id string) (ConnectedAccount, error)
	CreateAccountLink(ctx context.Context, params AccountLinkParams) (string, error)
}
