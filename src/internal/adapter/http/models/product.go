package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=250"`
	Description *string         `json:"description,omitempty" validate:"omitempty,max=200"`
	Price       decimal.Decimal `json:"price"`
	Active      *bool           `json:"active,omitempty"`
}

func (r *CreateProductRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	var extra []string
	if r.Price.LessThanOrEqual(decimal.Zero) {
		extra = append(extra, "price must be greater than zero")
	}
	return validateStruct(r, extra...)
}

type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,min=1,max=250"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=200"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Active      *bool            `json:"active,omitempty"`
}

func (r *UpdateProductRequest) Validate() error {
	var extra []string
	if r.Price != nil && r.Price.LessThanOrEqual(decimal.Zero) {
		extra = append(extra, "price must be greater than zero")
	}
	return validateStruct(r, extra...)
}

type ProductResponse struct {
	Name        string           `json:"name"`
	Active      bool             `json:"active"`
	ProductID   string           `json:"product_id"`
	PriceID     string           `json:"price_id"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Description *string          `json:"description"`
}

type DeleteProductResponse struct {
	ProductID string `json:"product_id"`
	Status    string `json:"status"`
}
