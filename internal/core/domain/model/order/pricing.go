package order

import (
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

// PricingPolicy holds the intake rules applied to product lines.
type PricingPolicy struct {
	MinUnitPrice kernel.Money
}

// DefaultPricingPolicy returns the standard policy: every line must cost at
// least 25 lira per unit.
func DefaultPricingPolicy() PricingPolicy {
	return PricingPolicy{MinUnitPrice: kernel.MoneyFromLira(25)}
}

// ValidateUnitPrice checks a line's unit price against the policy floor.
func (p PricingPolicy) ValidateUnitPrice(unitPrice kernel.Money) error {
	if unitPrice.Kurus() < p.MinUnitPrice.Kurus() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("unit price %s is below the %s minimum", unitPrice, p.MinUnitPrice))
	}
	return nil
}
