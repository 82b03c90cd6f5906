package booking

import "time"

// RateConfig is the pricing configuration for a property, consumed as a
// plain value. Amounts are in the currency's minor units.
type RateConfig struct {
	NightlyRate       int64
	IncludedGuests    int
	PerExtraGuestRate int64
	TaxPercent        float64
	DiscountPercent   float64
	Currency          Currency
	MinimumStay       int
}

// PriceBreakdown is the immutable result of pricing a stay.
//
// Invariant: TotalDue == Subtotal + TaxAmount, where
// Subtotal == BasePrice + GuestSurcharge - DiscountAmount,
// and every component is non-negative.
type PriceBreakdown struct {
	Nights         int
	BasePrice      Money
	GuestSurcharge Money
	DiscountAmount Money
	Subtotal       Money
	TaxAmount      Money
	TotalDue       Money
	Currency       Currency
}

// Quote prices a stay from raw check-in/check-out instants. Pure: identical
// inputs always yield identical output, safe for concurrent callers.
func Quote(checkIn, checkOut time.Time, guests int, cfg RateConfig) (*PriceBreakdown, error) {
	stay, err := NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return QuoteStay(stay, guests, cfg)
}

// QuoteStay prices an already-validated stay range.
//
// base     = nightly rate x nights
// surcharge = max(0, guests - included) x per-extra-guest rate
// discount = (base + surcharge) x discount% (rounded once)
// tax      = (base + surcharge - discount) x tax% (rounded once)
// total    = base + surcharge - discount + tax
func QuoteStay(stay StayRange, guests int, cfg RateConfig) (*PriceBreakdown, error) {
	if guests < 1 {
		return nil, ErrInvalidGuestCount
	}
	currency, err := NewCurrency(cfg.Currency.String())
	if err != nil {
		return nil, err
	}

	base := NewMoney(cfg.NightlyRate).Mul(int64(stay.Nights()))

	extraGuests := guests - cfg.IncludedGuests
	if extraGuests < 0 {
		extraGuests = 0
	}
	surcharge := NewMoney(cfg.PerExtraGuestRate).Mul(int64(extraGuests))

	beforeDiscount := base.Add(surcharge)
	discount := NewMoney(0)
	if cfg.DiscountPercent > 0 {
		discount = beforeDiscount.Percent(cfg.DiscountPercent)
	}

	subtotal := beforeDiscount.Sub(discount)
	tax := NewMoney(0)
	if cfg.TaxPercent > 0 {
		tax = subtotal.Percent(cfg.TaxPercent)
	}

	return &PriceBreakdown{
		Nights:         stay.Nights(),
		BasePrice:      base,
		GuestSurcharge: surcharge,
		DiscountAmount: discount,
		Subtotal:       subtotal,
		TaxAmount:      tax,
		TotalDue:       subtotal.Add(tax),
		Currency:       currency,
	}, nil
}
