package queries

import (
	"context"

	"havenstay/internal/domain/booking"

	"github.com/google/uuid"
)

type PropertyQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PropertyView, error)
	GetRateConfig(ctx context.Context, id uuid.UUID) (*booking.RateConfig, error)
}

func (v *PropertyView) RateConfig() booking.RateConfig {
	return booking.RateConfig{
		NightlyRate:       v.NightlyRate,
		IncludedGuests:    v.IncludedGuests,
		PerExtraGuestRate: v.PerExtraGuestRate,
		TaxPercent:        v.TaxPercent,
		DiscountPercent:   v.DiscountPercent,
		Currency:          booking.Currency(v.Currency),
		MinimumStay:       v.MinimumStay,
	}
}
