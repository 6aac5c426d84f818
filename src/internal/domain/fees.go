package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SplitPlatformFee splits a charge amount into the platform fee and the
// amount transferred to the connected account. The fee is floored so the
// two parts always add back up to amount.
func SplitPlatformFee(amount int64, feePercent float64) (platformFee int64, transferAmount int64, err error) {
	if amount < 0 {
		return 0, 0, fmt.Errorf("amount must not be negative")
	}
	if feePercent <= 0 || feePercent > 100 {
		return 0, 0, fmt.Errorf("platform fee percent must be greater than 0 and at most 100")
	}

	platformFee = percentOf(amount, feePercent)
	return platformFee, amount - platformFee, nil
}

// PartialRefundAmount returns floor(amountReceived * percent / 100).
func PartialRefundAmount(amountReceived int64, percent float64) (int64, error) {
	if amountReceived < 0 {
		return 0, fmt.Errorf("amount received must not be negative")
	}
	if percent <= 1 || percent > 100 {
		return 0, fmt.Errorf("refund percentage must be greater than 1 and at most 100")
	}

	return percentOf(amountReceived, percent), nil
}

func percentOf(amount int64, percent float64) int64 {
	return decimal.NewFromInt(amount).
		Mul(decimal.NewFromFloat(percent)).
		Div(hundred).
		Floor().
		IntPart()
}
