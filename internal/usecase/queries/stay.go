package queries

import (
	"context"
	"time"

	"havenstay/internal/domain/booking"
	"havenstay/internal/pkg/errs"

	"github.com/google/uuid"
)

// StayQueries answers the public pricing and availability questions a guest
// asks before committing to a booking. Both operations are snapshot reads
// over the property's rate configuration and current blocked ranges; neither
// reserves anything.
type StayQueries interface {
	Quote(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time, guests int) (*booking.PriceBreakdown, error)
	Availability(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time) (*booking.Availability, error)
}

type stayQueriesImpl struct {
	properties PropertyQueries
	bookings   BookingQueries
}

func NewStayQueries(properties PropertyQueries, bookings BookingQueries) StayQueries {
	return &stayQueriesImpl{
		properties: properties,
		bookings:   bookings,
	}
}

func (s *stayQueriesImpl) Quote(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time, guests int) (*booking.PriceBreakdown, error) {
	rate, err := s.properties.GetRateConfig(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	return booking.Quote(checkIn, checkOut, guests, *rate)
}

func (s *stayQueriesImpl) Availability(ctx context.Context, propertyID uuid.UUID, checkIn, checkOut time.Time) (*booking.Availability, error) {
	stay, err := booking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	if _, err := s.properties.GetRateConfig(ctx, propertyID); err != nil {
		return nil, err
	}

	blocked, err := s.bookings.ListBlockedRanges(ctx, propertyID, stay)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	availability := booking.CheckAvailability(stay, blocked)
	return &availability, nil
}
