package models

import "github.com/shopspring/decimal"

// Money amounts in request and response bodies are plain JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
