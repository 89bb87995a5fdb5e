package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrMoneyIsNotConstructed indicates that a Money value was not created
	// through one of the constructor functions.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
		"Money must be created via NewMoneyFromString or NewMoneyFromDecimal",
	)

	// ErrMoneyIsNegative indicates an attempt to construct a negative amount.
	// Prices, line totals and order totals are never negative in this domain.
	ErrMoneyIsNegative = errs.NewValueIsInvalidError("money amount must not be negative")
)

// Money is a value object representing a non-negative monetary amount with
// exact decimal arithmetic. Cart line prices and order totals are summed with
// Money so the result never depends on floating-point summation order: the
// total of a cart is the exact decimal sum of its line prices.
//
// Money is immutable; arithmetic methods return new values.
//
// Example usage:
//
//	unit, _ := kernel.NewMoneyFromString("9.00")
//	line := unit.MulQuantity(2)              // 18.00
//	other, _ := kernel.NewMoneyFromString("5.50")
//	total := line.Add(other.MulQuantity(1))  // 23.50
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// NewMoneyFromString parses a decimal amount such as "5.50".
// Returns an error for malformed or negative input.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return NewMoneyFromDecimal(amount)
}

// NewMoneyFromDecimal wraps an existing decimal value.
// Returns an error for negative input.
func NewMoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", ErrMoneyIsNegative, amount)
	}
	return Money{amount: amount, isConstructed: true}, nil
}

// ZeroMoney returns a constructed zero amount, the identity for Add.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

// Add returns the exact sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), isConstructed: true}
}

// MulQuantity returns the amount multiplied by an integer quantity.
// Used to derive a cart line price from its unit price.
func (m Money) MulQuantity(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), isConstructed: true}
}

// Decimal returns the underlying decimal value, for persistence and
// serialization code.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with two decimal places, e.g. "23.50".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// IsEqual compares two amounts for numeric equality ("5.5" equals "5.50").
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Validate checks that the Money value was properly constructed and is not
// negative.
func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	if m.amount.IsNegative() {
		return ErrMoneyIsNegative
	}
	return nil
}
