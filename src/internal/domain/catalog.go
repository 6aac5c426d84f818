package domain

const ProductIDPrefix = "prod_"

type Product struct {
	ID          string
	Name        string
	Description string
	Active      bool
}

type Price struct {
	ID         string
	ProductID  string
	Currency   string
	UnitAmount int64
	Active     bool
	Recurring  bool
}

type ProductParams struct {
	Name        *string
	Description *string
	Active      *bool
}

type PriceParams struct {
	ProductID  string
	Currency   string
	UnitAmount int64
}
