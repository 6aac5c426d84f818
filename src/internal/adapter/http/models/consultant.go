package models

import "strings"

type CreateConsultantRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
}

func (r *CreateConsultantRequest) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.Email = strings.TrimSpace(r.Email)
	return validateStruct(r)
}

type ConsultantResponse struct {
	ID              string `json:"id"`
	Created         int64  `json:"created"`
	Onboarded       bool   `json:"onboarded"`
	FirstName       string `json:"first_name"`
	Email           string `json:"email"`
	DefaultCurrency string `json:"default_currency"`
	StripeAccountID string `json:"stripe_account_id"`
}

type DeleteConsultantResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
