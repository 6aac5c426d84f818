package domain

const (
	ChargeStatusSucceeded        = "succeeded"
	CheckoutPaymentStatusPaid    = "paid"
	DefaultPlatformFeePercent    = 10.0
	DefaultPartialRefundPercent  = 90.0
	CheckoutSessionIDPlaceholder = "{CHECKOUT_SESSION_ID}"
)

// PaymentIntent is a read-only view of the gateway's payment intent.
type PaymentIntent struct {
	ID             string
	ChargeID       string
	Status         string
	Amount         int64
	AmountReceived int64
	Currency       string
}

// Charge is a read-only view of a gateway charge. Amount is in minor units.
type Charge struct {
	ID            string
	Amount        int64
	Currency      string
	Paid          bool
	Refunded      bool
	Status        string
	TransferGroup string
}

// Balance maps a lower-case currency code to the available amount in minor units.
type Balance struct {
	Available map[string]int64
}

func (b Balance) AvailableIn(currency string) int64 {
	if b.Available == nil {
		return 0
	}
	return b.Available[NormalizeCurrency(currency)]
}

type TransferRequest struct {
	Amount         int64
	Currency       string
	Destination    string
	TransferGroup  string
	IdempotencyKey string
}

type Transfer struct {
	ID          string
	Amount      int64
	Currency    string
	Created     int64
	Destination string
	Reversed    bool
}

// RefundRequest refunds the whole payment when Amount is nil.
type RefundRequest struct {
	PaymentIntentID string
	Amount          *int64
	IdempotencyKey  string
}

type Refund struct {
	ID                 string
	Status             string
	Amount             int64
	Created            int64
	Currency           string
	ChargeID           string
	PaymentIntentID    string
	BalanceTransaction string
}

type Customer struct {
	ID    string
	Email string
	Name  string
}

type CheckoutSessionParams struct {
	CustomerID     string
	PriceID        string
	Quantity       int64
	SuccessURL     string
	CancelURL      string
	Metadata       map[string]string
	IdempotencyKey string
}

type CheckoutSession struct {
	ID              string
	URL             string
	Currency        string
	Created         int64
	Email           string
	AmountTotal     int64
	PaymentStatus   string
	PaymentIntentID string
}
