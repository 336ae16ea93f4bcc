package kernel

import (
	"fmt"

	"rescue/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Price is a value object representing a positive monetary amount.
// It is used for estimated and final order prices and for invoice amounts.
//
// The zero value of Price is invalid; use NewPrice or PriceFromString.
// Price is immutable and safe for concurrent use.
type Price struct {
	amount decimal.Decimal
	valid  bool
}

// NewPrice creates a Price from a decimal amount.
// The amount must be strictly greater than zero.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if !amount.IsPositive() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", amount))
	}
	return Price{amount: amount, valid: true}, nil
}

// PriceFromString parses a decimal string (e.g. "149.90") into a Price.
func PriceFromString(s string) (Price, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(amount)
}

// PriceFromFloat creates a Price from a float64 amount.
func PriceFromFloat(amount float64) (Price, error) {
	return NewPrice(decimal.NewFromFloat(amount))
}

// Amount returns the underlying decimal value.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// String returns the fixed-point string representation of the amount.
func (p Price) String() string {
	return p.amount.String()
}

// IsEqual compares two prices by amount.
func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

// Validate checks that the Price was created through a constructor
// and carries a positive amount.
func (p Price) Validate() error {
	if !p.valid {
		return errs.NewValueIsRequiredError("price must be created via NewPrice")
	}
	return nil
}
