package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currencies the gateway charges in whole units.
var zeroDecimalCurrencies = map[string]struct{}{
	"bif": {}, "clp": {}, "djf": {}, "gnf": {}, "jpy": {}, "kmf": {}, "krw": {}, "mga": {},
	"pyg": {}, "rwf": {}, "ugx": {}, "vnd": {}, "vuv": {}, "xaf": {}, "xof": {}, "xpf": {},
}

func NormalizeCurrency(currency string) string {
	return strings.ToLower(strings.TrimSpace(currency))
}

func CurrencyExponent(currency string) int32 {
	if _, ok := zeroDecimalCurrencies[NormalizeCurrency(currency)]; ok {
		return 0
	}
	return 2
}

// ToMajorUnits converts a gateway amount into the human-facing amount.
func ToMajorUnits(amount int64, currency string) decimal.Decimal {
	return decimal.New(amount, -CurrencyExponent(currency))
}

// ToMinorUnits converts a human-facing amount into the gateway's integer amount.
func ToMinorUnits(amount decimal.Decimal, currency string) (int64, error) {
	minor := amount.Shift(CurrencyExponent(currency))
	if !minor.Equal(minor.Truncate(0)) {
		return 0, fmt.Errorf("amount %s has more decimal places than %s allows", amount.String(), strings.ToUpper(NormalizeCurrency(currency)))
	}
	return minor.IntPart(), nil
}
