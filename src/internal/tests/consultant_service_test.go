package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/commons"
	"github.com/hortivise/payment-module/src/internal/domain"
	"github.com/hortivise/payment-module/src/internal/usecase/services"
)

var consultantSettings = services.ConsultantSettings{
	DefaultCurrency: "USD",
	Country:         "US",
	RefreshURL:      "http://localhost:3000/onboarding/refresh",
	ReturnURL:       "http://localhost:3000/onboarding/return",
}

func TestConsultantServiceAllMapsOnboardingState(t *testing.T) {
	gw := &consultantGatewayStub{
		listFn: func(_ context.Context, limit int64) ([]domain.ConnectedAccount, error) {
			assert.Equal(t, int64(100), limit)
			return []domain.ConnectedAccount{
				{ID: "acct_1", Email: "a@b.co", DetailsSubmitted: true, ChargesEnabled: true},
				{ID: "acct_2", Email: "c@d.co", DetailsSubmitted: true},
			}, nil
		},
	}

	resp, err := services.NewConsultantService(gw, consultantSettings).All(context.Background())

	require.NoError(t, err)
	accounts := *resp.Result
	require.Len(t, accounts, 2)
	assert.True(t, accounts[0].Onboarded)
	assert.False(t, accounts[1].Onboarded)
	assert.Equal(t, "acct_1", accounts[0].StripeAccountID)
}

func TestConsultantServiceCreateFillsDefaults(t *testing.T) {
	var params domain.ConnectedAccountParams
	gw := &consultantGatewayStub{
		createFn: func(_ context.Context, p domain.ConnectedAccountParams) (domain.ConnectedAccount, error) {
			params = p
			return domain.ConnectedAccount{ID: "acct_new", Email: p.Email, Created: 1700000000}, nil
		},
	}

	resp, err := services.NewConsultantService(gw, consultantSettings).Create(context.Background(), models.CreateConsultantRequest{
		FirstName: "Ada",
		Email:     "ada@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "US", params.Country)
	assert.Equal(t, "USD", params.DefaultCurrency)
	assert.Equal(t, "consultant-onboarding", params.Metadata["source"])
	assert.Equal(t, models.ConsultantResponse{
		ID:              "acct_new",
		Created:         1700000000,
		FirstName:       "Ada",
		Email:           "ada@example.com",
		DefaultCurrency: "usd",
		StripeAccountID: "acct_new",
	}, *resp.Result)
}

func TestConsultantServiceOnboardingLink(t *testing.T) {
	gw := &consultantGatewayStub{
		linkFn: func(_ context.Context, p domain.AccountLinkParams) (string, error) {
			assert.Equal(t, domain.AccountLinkParams{
				AccountID:  "acct_1",
				RefreshURL: consultantSettings.RefreshURL,
				ReturnURL:  consultantSettings.ReturnURL,
			}, p)
			return "https://connect.example/setup/acct_1", nil
		},
	}

	resp, err := services.NewConsultantService(gw, consultantSettings).OnboardingLink(context.Background(), "acct_1")

	require.NoError(t, err)
	assert.Equal(t, "https://connect.example/setup/acct_1", *resp.Result)
}

func TestConsultantServiceMissingAccountID(t *testing.T) {
	svc := services.NewConsultantService(&consultantGatewayStub{}, consultantSettings)

	resp, err := svc.OnboardingLink(context.Background(), "  ")

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, services.MsgMissingAccountID, resp.Message)
}

func TestConsultantServiceDelete(t *testing.T) {
	gw := &consultantGatewayStub{
		deleteFn: func(_ context.Context, id string) (domain.ConnectedAccount, error) {
			return domain.ConnectedAccount{ID: id, Deleted: true}, nil
		},
	}

	resp, err := services.NewConsultantService(gw, consultantSettings).Delete(context.Background(), "acct_1")

	require.NoError(t, err)
	assert.Equal(t, commons.MessageAccountDeleted, resp.Message)
	assert.Equal(t, models.DeleteConsultantResponse{ID: "acct_1", Deleted: true}, *resp.Result)
}
