package commands

import (
	"context"
	"time"

	"havenstay/internal/domain/booking"
	"havenstay/internal/infra"
	"havenstay/internal/pkg/clock"
	"havenstay/internal/pkg/errs"
	"havenstay/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrCapacityExceeded = errs.New("guest count exceeds property capacity")
)

// Attempts at minting a reference before giving up on suffix collisions.
const maxReferenceAttempts = 3

type CreateBookingParams struct {
	PropertyID uuid.UUID
	GuestID    uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	Note       string
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, bookingID, guestID uuid.UUID) error
}

type bookingCommandsImpl struct {
	bookingRepo    BookingRepository
	properties     queries.PropertyQueries
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(
	bookingRepo BookingRepository,
	properties queries.PropertyQueries,
	bookingQueries queries.BookingQueries,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookingRepo:    bookingRepo,
		properties:     properties,
		bookingQueries: bookingQueries,
		clock:          clk,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*queries.BookingView, error) {
	propertyView, err := c.properties.GetByID(ctx, params.PropertyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrPropertyNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if params.Guests < 1 {
		return nil, booking.ErrInvalidGuestCount
	}
	if params.Guests > propertyView.MaxGuests {
		return nil, ErrCapacityExceeded
	}

	stay, err := booking.NewStayRange(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, err
	}

	// Advisory precheck over a snapshot read. The exclusion constraint on
	// insert is what actually prevents a double booking.
	blocked, err := c.bookingQueries.ListBlockedRanges(ctx, params.PropertyID, stay)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if availability := booking.CheckAvailability(stay, blocked); !availability.Available {
		return nil, errs.ErrDateRangeConflict
	}

	id, err := c.insertWithFreshReference(ctx, propertyView.RateConfig(), params, stay)
	if err != nil {
		return nil, err
	}

	return c.bookingQueries.GetByID(ctx, id)
}

// insertWithFreshReference retries reference suffix collisions; a collision
// on the random 4-digit suffix is rare but legal.
func (c *bookingCommandsImpl) insertWithFreshReference(
	ctx context.Context,
	cfg booking.RateConfig,
	params CreateBookingParams,
	stay booking.StayRange,
) (uuid.UUID, error) {
	services := &booking.Services{Clock: c.clock}

	var lastErr error
	for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
		entity, err := booking.NewBooking(
			services, params.PropertyID, params.GuestID,
			stay, params.Guests, cfg, booking.NewNote(params.Note),
		)
		if err != nil {
			return uuid.Nil, err
		}

		id, err := c.bookingRepo.Create(ctx, entity)
		if err == nil {
			return id, nil
		}
		if infra.IsKind(err, infra.KindConflict) {
			return uuid.Nil, errs.Mark(err, errs.ErrDateRangeConflict)
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		lastErr = err
	}

	return uuid.Nil, errs.Mark(lastErr, errs.ErrDatabaseOperationFailed)
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, bookingID, guestID uuid.UUID) error {
	entity, err := c.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Ownership check doubles as a 404: guests learn nothing about other
	// guests' bookings.
	if entity.GuestID() != guestID {
		return errs.ErrBookingNotFound
	}

	if err := entity.Cancel(); err != nil {
		return err
	}

	if err := c.bookingRepo.UpdateStatus(ctx, bookingID, entity.Status()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return nil
}
