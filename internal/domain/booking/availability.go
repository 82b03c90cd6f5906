package booking

import "time"

// Availability is the result of checking a candidate stay against the
// blocking ranges known at the time of the snapshot read. BlockedDates is
// sorted ascending and empty iff Available.
type Availability struct {
	Available    bool
	BlockedDates []time.Time
}

// CheckAvailability reports which nights of the candidate stay collide with
// any blocking range. Only nights actually consumed by the candidate are
// checked; a blocking range starting on the candidate's checkout date does
// not conflict (checkout-day turnover).
//
// The result is valid only for the snapshot of blocked ranges passed in.
// Availability can be invalidated by a concurrent write the moment this
// function returns; the storage layer's exclusion constraint is the
// authoritative guard against double booking.
func CheckAvailability(candidate StayRange, blocked []StayRange) Availability {
	var blockedDates []time.Time
	for _, night := range candidate.Dates() {
		for _, b := range blocked {
			if b.Contains(night) {
				blockedDates = append(blockedDates, night)
				break
			}
		}
	}
	return Availability{
		Available:    len(blockedDates) == 0,
		BlockedDates: blockedDates,
	}
}

// ValidateMinimumStay rejects stays shorter than the property's minimum
// night count. Reported separately from date blocking so callers can show
// a distinct failure reason.
func ValidateMinimumStay(stay StayRange, minNights int) error {
	if minNights > 0 && stay.Nights() < minNights {
		return ErrMinimumStayNotMet
	}
	return nil
}
