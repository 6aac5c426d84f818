package stripegateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"

	"github.com/hortivise/payment-module/src/internal/domain"
)

// newTestClient serves every API call from the given handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		HTTPClient:        srv.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})

	return NewWithBackends("sk_test_123", &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})
}

func TestGetBalanceReadsAvailableAmounts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/balance", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"object":"balance","livemode":false,"available":[{"amount":12000,"currency":"usd"},{"amount":300,"currency":"eur"}],"pending":[]}`)
	})

	bal, err := c.GetBalance(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12000), bal.AvailableIn("usd"))
	assert.Equal(t, int64(300), bal.AvailableIn("EUR"))
	assert.Equal(t, int64(0), bal.AvailableIn("gbp"))
}

func TestGetPaymentIntentResolvesLatestCharge(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/payment_intents/pi_123", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"pi_123","object":"payment_intent","status":"succeeded","amount":5000,"amount_received":5000,"currency":"usd","latest_charge":"ch_456"}`)
	})

	pi, err := c.GetPaymentIntent(context.Background(), "pi_123")

	require.NoError(t, err)
	assert.Equal(t, "ch_456", pi.ChargeID)
	assert.Equal(t, int64(5000), pi.AmountReceived)
	assert.Equal(t, "succeeded", pi.Status)
}

func TestCreateRefundTranslatesAlreadyRefunded(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/refunds", r.URL.Path)
		assert.Equal(t, "refund-key-1", r.Header.Get("Idempotency-Key"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"type":"invalid_request_error","code":"charge_already_refunded","message":"Charge ch_456 has already been refunded."}}`)
	})

	_, err := c.CreateRefund(context.Background(), domain.RefundRequest{
		PaymentIntentID: "pi_123",
		IdempotencyKey:  "refund-key-1",
	})

	var gwErr *domain.GatewayError
	require.ErrorAs(t, err, &gwErr)
	assert.Equal(t, domain.GatewayErrorAlreadyRefunded, gwErr.Kind)
	assert.Equal(t, http.StatusBadRequest, gwErr.HTTPStatus())
}

func TestCreateTransferSendsAmountAndDestination(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "9000", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, "acct_1", r.PostForm.Get("destination"))
		assert.Equal(t, "group_1", r.PostForm.Get("transfer_group"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"id":"tr_1","object":"transfer","amount":9000,"currency":"usd","created":1700000000,"destination":"acct_1","reversed":false}`)
	})

	tr, err := c.CreateTransfer(context.Background(), domain.TransferRequest{
		Amount:        9000,
		Currency:      "USD",
		Destination:   "acct_1",
		TransferGroup: "group_1",
	})

	require.NoError(t, err)
	assert.Equal(t, "tr_1", tr.ID)
	assert.Equal(t, "acct_1", tr.Destination)
	assert.Equal(t, int64(9000), tr.Amount)
	assert.False(t, tr.Reversed)
}
