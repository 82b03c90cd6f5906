package queries

import (
	"context"

	"havenstay/internal/domain/booking"

	"github.com/google/uuid"
)

// BookingQueries is the read side for bookings, implemented by the
// Postgres read store.
type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	GetByReference(ctx context.Context, reference booking.Reference) (*BookingView, error)
	ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*BookingListItem, error)
	// ListBlockedRanges returns every active booking range and manual
	// calendar block overlapping the window. A snapshot read: the result
	// can go stale the moment it returns.
	ListBlockedRanges(ctx context.Context, propertyID uuid.UUID, window booking.StayRange) ([]booking.StayRange, error)
}
