package service_interfaces

import (
	"context"

	"github.com/hortivise/payment-module/src/internal/adapter/http/models"
	"github.com/hortivise/payment-module/src/internal/commons"
)

type PaymentService interface {
	Charge(ctx context.Context, req models.ChargeRequest, idempotencyKey string) (commons.Response[models.ChargeResponse], error)
	Verify(ctx context.Context, req models.VerifyRequest) (commons.Response[models.VerifyResponse], error)
	Refund(ctx context.Context, req models.RefundRequest, idempotencyKey string) (commons.Response[models.RefundResponse], error)
	PartialRefund(ctx context.Context, req models.PartialRefundRequest, idempotencyKey string) (commons.Response[models.RefundResponse], error)
	Release(ctx context.Context, req models.ReleaseRequest, idempotencyKey string) (commons.Response[models.ReleaseResponse], error)
}
