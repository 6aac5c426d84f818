package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

type ChargeRequest struct {
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	PriceID       string `json:"priceId" validate:"required,max=250,startswith=price_"`
	SuccessURL    string `json:"success_url,omitempty" validate:"omitempty,max=2048"`
	CancelURL     string `json:"cancel_url,omitempty" validate:"omitempty,max=2048"`
}

func (r *ChargeRequest) Validate() error {
	r.CustomerEmail = strings.TrimSpace(r.CustomerEmail)
	r.PriceID = strings.TrimSpace(r.PriceID)
	r.SuccessURL = strings.TrimSpace(r.SuccessURL)
	r.CancelURL = strings.TrimSpace(r.CancelURL)
	return validateStruct(r)
}

type ChargeResponse struct {
	ID         string `json:"id"`
	SessionURL string `json:"session_url"`
}

type VerifyRequest struct {
	SessionID string `json:"session_id" validate:"required,max=1000,startswith=cs_"`
}

func (r *VerifyRequest) Validate() error {
	r.SessionID = strings.TrimSpace(r.SessionID)
	return validateStruct(r)
}

type VerifyResponse struct {
	ID            string          `json:"id"`
	Currency      string          `json:"currency"`
	Created       int64           `json:"created"`
	Email         string          `json:"email"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus string          `json:"payment_status"`
	PaymentIntent string          `json:"payment_intent"`
}

type RefundRequest struct {
	PaymentIntent string `json:"payment_intent" validate:"required,startswith=pi_"`
}

func (r *RefundRequest) Validate() error {
	r.PaymentIntent = strings.TrimSpace(r.PaymentIntent)
	return validateStruct(r)
}

type PartialRefundRequest struct {
	PaymentIntent string   `json:"payment_intent" validate:"required,startswith=pi_"`
	Percentage    *float64 `json:"percentage,omitempty" validate:"omitempty,gt=1,lte=100"`
}

func (r *PartialRefundRequest) Validate() error {
	r.PaymentIntent = strings.TrimSpace(r.PaymentIntent)
	return validateStruct(r)
}

type RefundResponse struct {
	ID                 string `json:"id"`
	Status             string `json:"status"`
	Amount             int64  `json:"amount"`
	Created            int64  `json:"created"`
	Currency           string `json:"currency"`
	Charge             string `json:"charge"`
	PaymentIntent      string `json:"payment_intent"`
	BalanceTransaction string `json:"balance_transaction"`
}

type ReleaseRequest struct {
	PaymentIntent       string   `json:"payment_intent" validate:"required,startswith=pi_"`
	ConsultantAccountID string   `json:"consultant_account_id" validate:"required,startswith=acct_"`
	PlatformFeePercent  *float64 `json:"platform_fee_percent,omitempty" validate:"omitempty,gt=0,lte=100"`
}

func (r *ReleaseRequest) Validate() error {
	r.PaymentIntent = strings.TrimSpace(r.PaymentIntent)
	r.ConsultantAccountID = strings.TrimSpace(r.ConsultantAccountID)
	return validateStruct(r)
}

type ReleaseResponse struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	PlatformFee int64  `json:"platform_fee"`
	Currency    string `json:"currency"`
	Created     int64  `json:"created"`
	Destination string `json:"destination"`
	Status      string `json:"status"`
}
