package services_test

import (
	"context"
	"errors"

	"github.com/hortivise/payment-module/src/internal/domain"
)

var errUnexpectedCall = errors.New("unexpected call")

type paymentGatewayStub struct {
	getPriceFn              func(ctx context.Context, id string) (domain.Price, error)
	searchCustomersFn       func(ctx context.Context, field string, value string) ([]domain.Customer, error)
	createCustomerFn        func(ctx context.Context, email string) (domain.Customer, error)
	createCheckoutSessionFn func(ctx context.Context, params domain.CheckoutSessionParams) (domain.CheckoutSession, error)
	getCheckoutSessionFn    func(ctx context.Context, id string) (domain.CheckoutSession, error)
	getPaymentIntentFn      func(ctx context.Context, id string) (domain.PaymentIntent, error)
	getChargeFn             func(ctx context.Context, id string) (domain.Charge, error)
	getBalanceFn            func(ctx context.Context) (domain.Balance, error)
	createRefundFn          func(ctx context.Context, req domain.RefundRequest) (domain.Refund, error)
	createTransferFn        func(ctx context.Context, req domain.TransferRequest) (domain.Transfer, error)
}

func (s *paymentGatewayStub) GetPrice(ctx context.Context, id string) (domain.Price, error) {
	if s.getPriceFn == nil {
		return domain.Price{}, errUnexpectedCall
	}
	return s.getPriceFn(ctx, id)
}

func (s *paymentGatewayStub) SearchCustomers(ctx context.Context, field string, value string) ([]domain.Customer, error) {
	if s.searchCustomersFn == nil {
		return nil, errUnexpectedCall
	}
	return s.searchCustomersFn(ctx, field, value)
}

func (s *paymentGatewayStub) CreateCustomer(ctx context.Context, email string) (domain.Customer, error) {
	if s.createCustomerFn == nil {
		return domain.Customer{}, errUnexpectedCall
	}
	return s.createCustomerFn(ctx, email)
}

func (s *paymentGatewayStub) CreateCheckoutSession(ctx context.Context, params domain.CheckoutSessionParams) (domain.CheckoutSession, error) {
	if s.createCheckoutSessionFn == nil {
		return domain.CheckoutSession{}, errUnexpectedCall
	}
	return s.createCheckoutSessionFn(ctx, params)
}

func (s *paymentGatewayStub) GetCheckoutSession(ctx context.Context, id string) (domain.CheckoutSession, error) {
	if s.getCheckoutSessionFn == nil {
		return domain.CheckoutSession{}, errUnexpectedCall
	}
	return s.getCheckoutSessionFn(ctx, id)
}

func (s *paymentGatewayStub) GetPaymentIntent(ctx context.Context, id string) (domain.PaymentIntent, error) {
	if s.getPaymentIntentFn == nil {
		return domain.PaymentIntent{}, errUnexpectedCall
	}
	return s.getPaymentIntentFn(ctx, id)
}

func (s *paymentGatewayStub) GetCharge(ctx context.Context, id string) (domain.Charge, error) {
	if s.getChargeFn == nil {
		return domain.Charge{}, errUnexpectedCall
	}
	return s.getChargeFn(ctx, id)
}

func (s *paymentGatewayStub) GetBalance(ctx context.Context) (domain.Balance, error) {
	if s.getBalanceFn == nil {
		return domain.Balance{}, errUnexpectedCall
	}
	return s.getBalanceFn(ctx)
}

func (s *paymentGatewayStub) CreateRefund(ctx context.Context, req domain.RefundRequest) (domain.Refund, error) {
	if s.createRefundFn == nil {
		return domain.Refund{}, errUnexpectedCall
	}
	return s.createRefundFn(ctx, req)
}

func (s *paymentGatewayStub) CreateTransfer(ctx context.Context, req domain.TransferRequest) (domain.Transfer, error) {
	if s.createTransferFn == nil {
		return domain.Transfer{}, errUnexpectedCall
	}
	return s.createTransferFn(ctx, req)
}

type catalogGatewayStub struct {
	listProductsFn     func(ctx context.Context) ([]domain.Product, error)
	getProductFn       func(ctx context.Context, id string) (domain.Product, error)
	createProductFn    func(ctx context.Context, params domain.ProductParams) (domain.Product, error)
	updateProductFn    func(ctx context.Context, id string, params domain.ProductParams) (domain.Product, error)
	listActivePricesFn func(ctx context.Context, productID string) ([]domain.Price, error)
	createPriceFn      func(ctx context.Context, params domain.PriceParams) (domain.Price, error)
	deactivatePriceFn  func(ctx context.Context, id string) error
}

func (s *catalogGatewayStub) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if s.listProductsFn == nil {
		return nil, errUnexpectedCall
	}
	return s.listProductsFn(ctx)
}

func (s *catalogGatewayStub) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	if s.getProductFn == nil {
		return domain.Product{}, errUnexpectedCall
	}
	return s.getProductFn(ctx, id)
}

func (s *catalogGatewayStub) CreateProduct(ctx context.Context, params domain.ProductParams) (domain.Product, error) {
	if s.createProductFn == nil {
		return domain.Product{}, errUnexpectedCall
	}
	return s.createProductFn(ctx, params)
}

func (s *catalogGatewayStub) UpdateProduct(ctx context.Context, id string, params domain.ProductParams) (domain.Product, error) {
	if s.updateProductFn == nil {
		return domain.Product{}, errUnexpectedCall
	}
	return s.updateProductFn(ctx, id, params)
}

func (s *catalogGatewayStub) ListActivePrices(ctx context.Context, productID string) ([]domain.Price, error) {
	if s.listActivePricesFn == nil {
		return nil, errUnexpectedCall
	}
	return s.listActivePricesFn(ctx, productID)
}

func (s *catalogGatewayStub) CreatePrice(ctx context.Context, params domain.PriceParams) (domain.Price, error) {
	if s.createPriceFn == nil {
		return domain.Price{}, errUnexpectedCall
	}
	return s.createPriceFn(ctx, params)
}

func (s *catalogGatewayStub) DeactivatePrice(ctx context.Context, id string) error {
	if s.deactivatePriceFn == nil {
		return errUnexpectedCall
	}
	return s.deactivatePriceFn(ctx, id)
}

type consultantGatewayStub struct {
	listFn   func(ctx context.Context, limit int64) ([]domain.ConnectedAccount, error)
	getFn    func(ctx context.Context, id string) (domain.ConnectedAccount, error)
	createFn func(ctx context.Context, params domain.ConnectedAccountParams) (domain.ConnectedAccount, error)
	deleteFn func(ctx context.Context, id string) (domain.ConnectedAccount, error)
	linkFn   func(ctx context.Context, params domain.AccountLinkParams) (string, error)
}

func (s *consultantGatewayStub) ListConnectedAccounts(ctx context.Context, limit int64) ([]domain.ConnectedAccount, error) {
	if s.listFn == nil {
		return nil, errUnexpectedCall
	}
	return s.listFn(ctx, limit)
}

func (s *consultantGatewayStub) GetConnectedAccount(ctx context.Context, id string) (domain.ConnectedAccount, error) {
	if s.getFn == nil {
		return domain.ConnectedAccount{}, errUnexpectedCall
	}
	return s.getFn(ctx, id)
}

func (s *consultantGatewayStub) CreateConnectedAccount(ctx context.Context, params domain.ConnectedAccountParams) (domain.ConnectedAccount, error) {
	if s.createFn == nil {
		return domain.ConnectedAccount{}, errUnexpectedCall
	}
	return s.createFn(ctx, params)
}

func (s *consultantGatewayStub) DeleteConnectedAccount(ctx context.Context, id string) (domain.ConnectedAccount, error) {
	if s.deleteFn == nil {
		return domain.ConnectedAccount{}, errUnexpectedCall
	}
	return s.deleteFn(ctx, id)
}

func (s *consultantGatewayStub) CreateAccountLink(ctx context.Context, params domain.AccountLinkParams) (string, error) {
	if s.linkFn == nil {
		return "", errUnexpectedCall
	}
	return s.linkFn(ctx, params)
}

// userRepoStub keeps users in a map keyed by id.
type userRepoStub struct {
	users     map[string]domain.User
	createErr error
}

func newUserRepoStub(users ...domain.User) *userRepoStub {
	s := &userRepoStub{users: map[string]domain.User{}}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *userRepoStub) Create(_ context.Context, user domain.User) (domain.User, error) {
	if s.createErr != nil {
		return domain.User{}, s.createErr
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *userRepoStub) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return domain.User{}, domain.ErrRecordNotFound
	}
	return user, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (domain.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, domain.ErrRecordNotFound
}

func (s *userRepoStub) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		out = append(out, user)
	}
	return out, nil
}

func (s *userRepoStub) Update(_ context.Context, user domain.User) (domain.User, error) {
	if _, ok := s.users[user.ID]; !ok {
		return domain.User{}, domain.ErrRecordNotFound
	}
	s.users[user.ID] = user
	return user, nil
}

func (s *userRepoStub) Delete(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *userRepoStub) EmailTakenByOther(_ context.Context, email string, userID string) (bool, error) {
	for _, user := range s.users {
		if user.Email == email && user.ID != userID {
			return true, nil
		}
	}
	return false, nil
}

type tokenRepoStub struct {
	tokens  map[string]domain.AccessToken
	touched []string
}

func newTokenRepoStub() *tokenRepoStub {
	return &tokenRepoStub{tokens: map[string]domain.AccessToken{}}
}

func (s *tokenRepoStub) Create(_ context.Context, token domain.AccessToken) (domain.AccessToken, error) {
	s.tokens[token.ID] = token
	return token, nil
}

func (s *tokenRepoStub) GetByID(_ context.Context, id string) (domain.AccessToken, error) {
	token, ok := s.tokens[id]
	if !ok {
		return domain.AccessToken{}, domain.ErrRecordNotFound
	}
	return token, nil
}

func (s *tokenRepoStub) Touch(_ context.Context, id string) error {
	s.touched = append(s.touched, id)
	return nil
}

func (s *tokenRepoStub) Delete(_ context.Context, id string) error {
	delete(s.tokens, id)
	return nil
}
