package kernel

import (
	"fmt"

	"atelier/internal/pkg/errs"
)

// Money is a monetary amount in kurus (1/100 of a lira), stored as an
// integer to keep price recomputation exact. The zero value is a valid
// amount of zero.
//
// Money is a value object: all arithmetic returns a new value and never
// mutates the receiver.
type Money int64

// NewMoney creates a non-negative amount from a kurus value.
func NewMoney(kurus int64) (Money, error) {
	if kurus < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%d kurus is negative", kurus))
	}
	return Money(kurus), nil
}

// MoneyFromLira converts whole lira to Money.
func MoneyFromLira(lira int64) Money {
	return Money(lira * 100)
}

// Kurus returns the raw kurus value for persistence.
func (m Money) Kurus() int64 {
	return int64(m)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return m + other
}

// Sub returns the difference of two amounts. The result may be negative;
// callers that must stay non-negative check IsNegative afterwards.
func (m Money) Sub(other Money) Money {
	return m - other
}

// MultiplyBy scales the amount by a quantity.
func (m Money) MultiplyBy(quantity int) Money {
	return m * Money(quantity)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// String formats the amount as lira with two decimals, e.g. "125.50".
func (m Money) String() string {
	if m < 0 {
		return fmt.Sprintf("-%d.%02d", -m/100, -m%100)
	}
	return fmt.Sprintf("%d.%02d", m/100, m%100)
}
