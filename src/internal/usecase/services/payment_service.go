package services

import (
	"context"
	"errors"
	"strings"

	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/commons"
	"github.com/hortivise/payment-module/src/internal/domain"
	"github.com/hortivise/payment-module/src/internal/logger"
)

const (
	MsgRecurringPrice      = "Recurring price cannot be charged with mode: payment. Use a one-time price."
	MsgNoCharge            = "No charge found for this payment intent"
	MsgChargeNotCompleted  = "Charge is not completed"
	MsgChargeRefunded      = "Charge has already been refunded"
	MsgChargeNotSucceeded  = "Charge has failed or is not succeeded"
	MsgInsufficientBalance = "Insufficient platform balance to release funds"
	MsgAlreadyRefunded     = "This payment has already been refunded"
	MsgNoPaymentReceived   = "No payment received for this payment intent"
	MsgRefundTooSmall      = "Refund amount is too small"
	MsgTransferTooSmall    = "Transfer amount is too small after the platform fee"

	transferStatusSucceeded = "succeeded"
	transferStatusReversed  = "reversed"
)

// PaymentSettings holds the defaults applied when a request leaves them out.
type PaymentSettings struct {
	SuccessURL           string
	CancelURL            string
	PlatformFeePercent   float64
	PartialRefundPercent float64
}

type PaymentService struct {
	gateway  domain.PaymentGateway
	settings PaymentSettings
}

func NewPaymentService(gateway domain.PaymentGateway, settings PaymentSettings) *PaymentService {
	if settings.PlatformFeePercent == 0 {
		settings.PlatformFeePercent = domain.DefaultPlatformFeePercent
	}
	if settings.PartialRefundPercent == 0 {
		settings.PartialRefundPercent = domain.DefaultPartialRefundPercent
	}
	return &PaymentService{gateway: gateway, settings: settings}
}

// Charge opens a one-time checkout session for the price, reusing the
// gateway customer registered under the email when there is one.
func (s *PaymentService) Charge(ctx context.Context, req models.ChargeRequest, idempotencyKey string) (commons.Response[models.ChargeResponse], error) {
	logger.Info("payment service charge request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	price, err := s.gateway.GetPrice(ctx, req.PriceID)
	if err != nil {
		return failure[models.ChargeResponse](err), err
	}
	if price.Recurring {
		err := domain.NewValidationError(MsgRecurringPrice)
		logger.Info("payment service charge rejected recurring price", logger.Fields{
			"priceId": req.PriceID,
		})
		return failure[models.ChargeResponse](err), err
	}

	customerID, err := s.customerFor(ctx, req.CustomerEmail)
	if err != nil {
		return failure[models.ChargeResponse](err), err
	}

	successURL := req.SuccessURL
	if successURL == "" {
		successURL = s.settings.SuccessURL
	}
	cancelURL := req.CancelURL
	if cancelURL == "" {
		cancelURL = s.settings.CancelURL
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, domain.CheckoutSessionParams{
		CustomerID: customerID,
		PriceID:    req.PriceID,
		Quantity:   1,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
		Metadata: map[string]string{
			"customerEmail": req.CustomerEmail,
			"priceId":       req.PriceID,
		},
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return failure[models.ChargeResponse](err), err
	}

	logger.Info("payment service charge success", logger.Fields{
		"sessionId":  session.ID,
		"customerId": customerID,
		"priceId":    req.PriceID,
	})

	return commons.SuccessResponse(commons.MessageOK, models.ChargeResponse{
		ID:         session.ID,
		SessionURL: session.URL,
	}), nil
}

func (s *PaymentService) customerFor(ctx context.Context, email string) (string, error) {
	customers, err := s.gateway.SearchCustomers(ctx, "email", email)
	if err != nil {
		return "", err
	}
	if len(customers) > 0 {
		return customers[0].ID, nil
	}

	created, err := s.gateway.CreateCustomer(ctx, email)
	if err != nil {
		return "", err
	}

	logger.Info("payment service created customer", logger.Fields{
		"customerId": created.ID,
	})
	return created.ID, nil
}

// Verify reports the outcome of a checkout session. An unpaid session is a
// client error that still echoes the session details.
func (s *PaymentService) Verify(ctx context.Context, req models.VerifyRequest) (commons.Response[models.VerifyResponse], error) {
	logger.Info("payment service verify request", logger.Fields{
		"sessionId": req.SessionID,
	})

	session, err := s.gateway.GetCheckoutSession(ctx, req.SessionID)
	if err != nil {
		return failure[models.VerifyResponse](err), err
	}

	result := models.VerifyResponse{
		ID:            session.ID,
		Currency:      session.Currency,
		Created:       session.Created,
		Email:         session.Email,
		Amount:        domain.ToMajorUnits(session.AmountTotal, session.Currency),
		PaymentStatus: session.PaymentStatus,
		PaymentIntent: session.PaymentIntentID,
	}

	if session.PaymentStatus != domain.CheckoutPaymentStatusPaid {
		logger.Info("payment service verify unpaid session", logger.Fields{
			"sessionId":     session.ID,
			"paymentStatus": session.PaymentStatus,
		})
		return commons.ErrorResponseWithResult(commons.MessagePaymentIncomplete, result),
			domain.NewValidationError(commons.MessagePaymentIncomplete)
	}

	return commons.SuccessResponse(commons.MessagePaymentConfirmed, result), nil
}

// Refund refunds the full amount collected on a payment intent.
func (s *PaymentService) Refund(ctx context.Context, req models.RefundRequest, idempotencyKey string) (commons.Response[models.RefundResponse], error) {
	logger.Info("payment service refund request", logger.Fields{
		"paymentIntent": req.PaymentIntent,
	})

	return s.refund(ctx, domain.RefundRequest{
		PaymentIntentID: req.PaymentIntent,
		IdempotencyKey:  idempotencyKey,
	})
}

// PartialRefund refunds a percentage of the amount received on a payment
// intent, rounded down to a whole minor unit.
func (s *PaymentService) PartialRefund(ctx context.Context, req models.PartialRefundRequest, idempotencyKey string) (commons.Response[models.RefundResponse], error) {
	logger.Info("payment service partial refund request", logger.Fields{
		"paymentIntent": req.PaymentIntent,
		"percentage":    req.Percentage,
	})

	percent := s.settings.PartialRefundPercent
	if req.Percentage != nil {
		percent = *req.Percentage
	}

	intent, err := s.gateway.GetPaymentIntent(ctx, req.PaymentIntent)
	if err != nil {
		return failure[models.RefundResponse](err), err
	}
	if intent.AmountReceived <= 0 {
		err := domain.NewValidationError(MsgNoPaymentReceived)
		return failure[models.RefundResponse](err), err
	}

	amount, err := domain.PartialRefundAmount(intent.AmountReceived, percent)
	if err != nil {
		vErr := domain.NewValidationError(err.Error())
		return failure[models.RefundResponse](vErr), vErr
	}
	if amount <= 0 {
		err := domain.NewValidationError(MsgRefundTooSmall)
		return failure[models.RefundResponse](err), err
	}

	return s.refund(ctx, domain.RefundRequest{
		PaymentIntentID: intent.ID,
		Amount:          &amount,
		IdempotencyKey:  idempotencyKey,
	})
}

func (s *PaymentService) refund(ctx context.Context, req domain.RefundRequest) (commons.Response[models.RefundResponse], error) {
	refund, err := s.gateway.CreateRefund(ctx, req)
	if err != nil {
		var gwErr *domain.GatewayError
		if errors.As(err, &gwErr) && gwErr.Kind == domain.GatewayErrorAlreadyRefunded {
			vErr := domain.NewValidationError(MsgAlreadyRefunded)
			return failure[models.RefundResponse](vErr), vErr
		}
		return failure[models.RefundResponse](err), err
	}

	logger.Info("payment service refund success", logger.Fields{
		"refundId":      refund.ID,
		"paymentIntent": req.PaymentIntentID,
		"amount":        refund.Amount,
		"status":        refund.Status,
	})

	return commons.SuccessResponse(commons.MessageOK, models.RefundResponse{
		ID:                 refund.ID,
		Status:             refund.Status,
		Amount:             refund.Amount,
		Created:            refund.Created,
		Currency:           refund.Currency,
		Charge:             refund.ChargeID,
		PaymentIntent:      refund.PaymentIntentID,
		BalanceTransaction: refund.BalanceTransaction,
	}), nil
}

// Release moves the consultant's share of a settled charge to their
// connected account. The platform keeps the fee.
func (s *PaymentService) Release(ctx context.Context, req models.ReleaseRequest, idempotencyKey string) (commons.Response[models.ReleaseResponse], error) {
	logger.Info("payment service release request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	feePercent := s.settings.PlatformFeePercent
	if req.PlatformFeePercent != nil {
		feePercent = *req.PlatformFeePercent
	}

	intent, err := s.gateway.GetPaymentIntent(ctx, req.PaymentIntent)
	if err != nil {
		return failure[models.ReleaseResponse](err), err
	}
	if intent.ChargeID == "" {
		err := domain.NewValidationError(MsgNoCharge)
		return failure[models.ReleaseResponse](err), err
	}

	charge, err := s.gateway.GetCharge(ctx, intent.ChargeID)
	if err != nil {
		return failure[models.ReleaseResponse](err), err
	}
	if err := checkReleasable(charge); err != nil {
		logger.Info("payment service release rejected charge", logger.Fields{
			"chargeId": charge.ID,
			"reason":   err.Error(),
		})
		return failure[models.ReleaseResponse](err), err
	}

	platformFee, transferAmount, err := domain.SplitPlatformFee(charge.Amount, feePercent)
	if err != nil {
		vErr := domain.NewValidationError(err.Error())
		return failure[models.ReleaseResponse](vErr), vErr
	}
	if transferAmount <= 0 {
		logger.Info("payment service release nothing to transfer", logger.Fields{
			"chargeId":    charge.ID,
			"amount":      charge.Amount,
			"platformFee": platformFee,
		})
		err := domain.NewValidationError(MsgTransferTooSmall)
		return failure[models.ReleaseResponse](err), err
	}

	balance, err := s.gateway.GetBalance(ctx)
	if err != nil {
		return failure[models.ReleaseResponse](err), err
	}
	if available := balance.AvailableIn(charge.Currency); available < transferAmount {
		logger.Info("payment service release insufficient balance", logger.Fields{
			"currency":       charge.Currency,
			"available":      available,
			"transferAmount": transferAmount,
		})
		err := domain.NewValidationError(MsgInsufficientBalance)
		return failure[models.ReleaseResponse](err), err
	}

	transferGroup := charge.TransferGroup
	if transferGroup == "" {
		transferGroup = intent.ID
	}

	transfer, err := s.gateway.CreateTransfer(ctx, domain.TransferRequest{
		Amount:         transferAmount,
		Currency:       charge.Currency,
		Destination:    req.ConsultantAccountID,
		TransferGroup:  transferGroup,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		return failure[models.ReleaseResponse](err), err
	}

	status := transferStatusSucceeded
	if transfer.Reversed {
		status = transferStatusReversed
	}

	logger.Info("payment service release success", logger.Fields{
		"transferId":  transfer.ID,
		"destination": transfer.Destination,
		"amount":      transfer.Amount,
		"platformFee": platformFee,
	})

	return commons.SuccessResponse(commons.MessageOK, models.ReleaseResponse{
		ID:          transfer.ID,
		Amount:      transfer.Amount,
		PlatformFee: platformFee,
		Currency:    strings.ToLower(transfer.Currency),
		Created:     transfer.Created,
		Destination: transfer.Destination,
		Status:      status,
	}), nil
}

func checkReleasable(charge domain.Charge) error {
	switch {
	case !charge.Paid:
		return domain.NewValidationError(MsgChargeNotCompleted)
	case charge.Refunded:
		return domain.NewValidationError(MsgChargeRefunded)
	case charge.Status != domain.ChargeStatusSucceeded:
		return domain.NewValidationError(MsgChargeNotSucceeded)
	default:
		return nil
	}
}
