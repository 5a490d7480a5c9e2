package pricing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"fleetrent-backend/internal/domain"
)

// Breakdown is the detailed result of pricing a completed rental.
type Breakdown struct {
	BilledDays   int
	DailyRate    decimal.Decimal
	Base         decimal.Decimal
	DiscountRate decimal.Decimal
	Total        decimal.Decimal
}

// BilledDays computes the number of days billed for the span between
// pickup and return: elapsed whole hours divided by 24, rounded up.
// Elapsed time is truncated to whole hours first, so a span under one
// full hour bills zero days.
func BilledDays(pickupTime, returnTime time.Time) int {
	hours := int64(returnTime.Sub(pickupTime).Hours())
	if hours <= 0 {
		return 0
	}
	return int((hours + 23) / 24)
}

// Quote prices a rental of the given category by the given client kind
// over [pickupTime, returnTime]. The computation is pure: the same
// inputs always produce the same breakdown.
//
// total = dailyRate(category) * billedDays * (1 - discountRate(billedDays))
func Quote(category domain.VehicleCategory, kind domain.ClientKind, pickupTime, returnTime time.Time) (Breakdown, error) {
	if !returnTime.After(pickupTime) {
		return Breakdown{}, errors.Wrap(domain.ErrInvalidArgument, "return time must be after pickup time")
	}

	days := BilledDays(pickupTime, returnTime)
	if days < 1 {
		return Breakdown{}, errors.Wrap(domain.ErrInvalidArgument, "rental spans less than one billable hour")
	}

	rate := category.DailyRate()
	base := rate.Mul(decimal.NewFromInt(int64(days)))
	discount := kind.DiscountRate(days)
	total := base.Mul(decimal.NewFromInt(1).Sub(discount)).Round(2)

	return Breakdown{
		BilledDays:   days,
		DailyRate:    rate,
		Base:         base,
		DiscountRate: discount,
		Total:        total,
	}, nil
}
