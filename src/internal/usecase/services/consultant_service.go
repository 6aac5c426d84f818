package services

import (
	"context"
	"strings"

	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/commons"
	"github.com/hortivise/payment-module/src/internal/domain"
	"github.com/hortivise/payment-module/src/internal/logger"
)

const (
	MsgMissingAccountID = "Missing account_id"

	consultantListLimit = 100
	consultantSource    = "consultant-onboarding"
)

type ConsultantSettings struct {
	DefaultCurrency string
	Country         string
	RefreshURL      string
	ReturnURL       string
}

type ConsultantService struct {
	gateway  domain.ConsultantGateway
	settings ConsultantSettings
}

func NewConsultantService(gateway domain.ConsultantGateway, settings ConsultantSettings) *ConsultantService {
	return &ConsultantService{gateway: gateway, settings: settings}
}

func (s *ConsultantService) All(ctx context.Context) (commons.Response[[]models.ConsultantResponse], error) {
	accounts, err := s.gateway.ListConnectedAccounts(ctx, consultantListLimit)
	if err != nil {
		return failure[[]models.ConsultantResponse](err), err
	}

	out := make([]models.ConsultantResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, consultantResponse(account))
	}

	return commons.SuccessResponse(commons.MessageOK, out), nil
}

func (s *ConsultantService) Single(ctx context.Context, accountID string) (commons.Response[models.ConsultantResponse], error) {
	if err := checkAccountID(accountID); err != nil {
		return failure[models.ConsultantResponse](err), err
	}

	account, err := s.gateway.GetConnectedAccount(ctx, accountID)
	if err != nil {
		return failure[models.ConsultantResponse](err), err
	}

	return commons.SuccessResponse(commons.MessageOK, consultantResponse(account)), nil
}

// Create opens an express connected account for the consultant. The account
// is not onboarded until the consultant completes the onboarding link.
func (s *ConsultantService) Create(ctx context.Context, req models.CreateConsultantRequest) (commons.Response[models.ConsultantResponse], error) {
	logger.Info("consultant service create request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	account, err := s.gateway.CreateConnectedAccount(ctx, domain.ConnectedAccountParams{
		Email:           req.Email,
		FirstName:       req.FirstName,
		DefaultCurrency: s.settings.DefaultCurrency,
		Country:         s.settings.Country,
		Metadata:        map[string]string{"source": consultantSource},
	})
	if err != nil {
		return failure[models.ConsultantResponse](err), err
	}

	response := consultantResponse(account)
	if response.FirstName == "" {
		response.FirstName = req.FirstName
	}
	if response.DefaultCurrency == "" {
		response.DefaultCurrency = domain.NormalizeCurrency(s.settings.DefaultCurrency)
	}

	logger.Info("consultant service create success", logger.Fields{
		"accountId": account.ID,
	})

	return commons.SuccessResponse(commons.MessageOK, response), nil
}

// OnboardingLink returns the hosted onboarding URL for the account.
func (s *ConsultantService) OnboardingLink(ctx context.Context, accountID string) (commons.Response[string], error) {
	if err := checkAccountID(accountID); err != nil {
		return failure[string](err), err
	}

	url, err := s.gateway.CreateAccountLink(ctx, domain.AccountLinkParams{
		AccountID:  accountID,
		RefreshURL: s.settings.RefreshURL,
		ReturnURL:  s.settings.ReturnURL,
	})
	if err != nil {
		return failure[string](err), err
	}

	return commons.SuccessResponse(commons.MessageOK, url), nil
}

func (s *ConsultantService) Delete(ctx context.Context, accountID string) (commons.Response[models.DeleteConsultantResponse], error) {
	if err := checkAccountID(accountID); err != nil {
		return failure[models.DeleteConsultantResponse](err), err
	}

	account, err := s.gateway.DeleteConnectedAccount(ctx, accountID)
	if err != nil {
		return failure[models.DeleteConsultantResponse](err), err
	}

	logger.Info("consultant service delete success", logger.Fields{
		"accountId": account.ID,
		"deleted":   account.Deleted,
	})

	return commons.SuccessResponse(commons.MessageAccountDeleted, models.DeleteConsultantResponse{
		ID:      account.ID,
		Deleted: account.Deleted,
	}), nil
}

func checkAccountID(accountID string) error {
	if strings.TrimSpace(accountID) == "" {
		return domain.NewValidationError(MsgMissingAccountID)
	}
	return nil
}

func consultantResponse(account domain.ConnectedAccount) models.ConsultantResponse {
	return models.ConsultantResponse{
		ID:              account.ID,
		Created:         account.Created,
		Onboarded:       account.Onboarded(),
		FirstName:       account.FirstName,
		Email:           account.Email,
		DefaultCurrency: account.DefaultCurrency,
		StripeAccountID: account.ID,
	}
}
