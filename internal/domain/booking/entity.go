package booking

import (
	"time"

	"havenstay/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock clock.Clock
}

type Booking struct {
	id         uuid.UUID
	propertyID uuid.UUID
	guestID    uuid.UUID
	reference  Reference
	stay       StayRange
	guests     int
	status     Status
	price      PriceBreakdown
	note       Note
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking prices the stay and mints a guest-facing reference. The
// availability snapshot is checked by the caller; the storage layer's
// exclusion constraint settles any race on insert.
func NewBooking(
	services *Services,
	propertyID, guestID uuid.UUID,
	stay StayRange,
	guests int,
	cfg RateConfig,
	note Note,
) (*Booking, error) {
	if err := ValidateMinimumStay(stay, cfg.MinimumStay); err != nil {
		return nil, err
	}

	price, err := QuoteStay(stay, guests, cfg)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:         uuid.New(),
		propertyID: propertyID,
		guestID:    guestID,
		reference:  NewReference(services.Clock.Now()),
		stay:       stay,
		guests:     guests,
		status:     StatusConfirmed,
		price:      *price,
		note:       note,
	}, nil
}

func ReconstructBooking(
	id, propertyID, guestID uuid.UUID,
	reference Reference,
	stay StayRange,
	guests int,
	status Status,
	price PriceBreakdown,
	note Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		propertyID: propertyID,
		guestID:    guestID,
		reference:  reference,
		stay:       stay,
		guests:     guests,
		status:     status,
		price:      price,
		note:       note,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) Cancel() error {
	if b.status == StatusCanceled {
		return ErrBookingCanceled
	}
	b.status = StatusCanceled
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed || b.status == StatusPending
}

func (b *Booking) IsCanceled() bool {
	return b.status == StatusCanceled
}

func (b *Booking) HasDeparted(now time.Time) bool {
	return !ToCalendarDate(now).Before(b.stay.CheckOut())
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) PropertyID() uuid.UUID { return b.propertyID }
func (b *Booking) GuestID() uuid.UUID    { return b.guestID }
func (b *Booking) Reference() Reference  { return b.reference }
func (b *Booking) Stay() StayRange       { return b.stay }
func (b *Booking) Guests() int           { return b.guests }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) Price() PriceBreakdown { return b.price }
func (b *Booking) Note() Note            { return b.note }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
