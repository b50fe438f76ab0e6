package pricing

import (
	"fmt"
	"math"

	xerrors "shopadmin-service/internal/pkg/errors"
)

// DiscountKind selects how a product's own discount is interpreted.
type DiscountKind string

const (
	// KindPercentage interprets the discount amount as a percentage of the base price.
	KindPercentage DiscountKind = "percentage"
	// KindFlat interprets the discount amount as an absolute deduction.
	KindFlat DiscountKind = "flat"
)

// Valid reports whether k is a known discount kind.
func (k DiscountKind) Valid() bool {
	return k == KindPercentage || k == KindFlat
}

// FinalPrice computes the sale price from a base price, the vendor discount
// and an optional deal discount percentage (0 when no deal applies).
//
// The deal discount is taken against the original base price, not the
// already-discounted price: discounts stack additively on the base rather
// than compounding. Changing this would change financial outputs, so it is
// deliberate.
//
// The result is rounded to 2 decimal places, half away from zero. A result
// below zero is an error; the caller must abort the write rather than clamp.
func FinalPrice(basePrice, discount float64, kind DiscountKind, dealPercent float64) (float64, error) {
	if basePrice < 0 {
		return 0, xerrors.Wrap(xerrors.ErrInvalidInput, "base price cannot be negative")
	}
	if discount < 0 {
		return 0, xerrors.Wrap(xerrors.ErrInvalidInput, "discount cannot be negative")
	}
	if dealPercent < 0 || dealPercent > 100 {
		return 0, xerrors.Wrap(xerrors.ErrInvalidInput, "deal discount percent must be between 0 and 100")
	}

	var afterVendor float64
	switch kind {
	case KindPercentage:
		if discount > 100 {
			return 0, xerrors.Wrap(xerrors.ErrInvalidInput, "percentage discount cannot exceed 100")
		}
		afterVendor = basePrice - basePrice*discount/100
	case KindFlat:
		afterVendor = basePrice - discount
	default:
		return 0, fmt.Errorf("unsupported discount kind %q: %w", kind, xerrors.ErrInvalidInput)
	}

	final := Round2(afterVendor - basePrice*dealPercent/100)
	if final < 0 {
		return 0, xerrors.Wrap(xerrors.ErrInvalidInput, "final price cannot be negative")
	}

	return final, nil
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
