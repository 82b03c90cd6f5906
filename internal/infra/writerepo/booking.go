package writerepo

import (
	"context"
	"errors"
	"time"

	"havenstay/internal/domain/booking"
	"havenstay/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeExclusionViolation = "23P01"
)

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// Create inserts the booking. The bookings_no_overlap exclusion constraint
// is the authoritative double-booking guard: an overlapping insert that
// slipped past the availability snapshot fails here with KindConflict.
func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	query := `INSERT INTO bookings (
			id, reference, property_id, guest_id, check_in, check_out, guests,
			status, base_price, guest_surcharge, discount_amount, subtotal,
			tax_amount, total_due, currency, note
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`

	price := b.Price()
	var note *string
	if !b.Note().IsEmpty() {
		v := b.Note().String()
		note = &v
	}

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, query,
		b.ID(), b.Reference().String(), b.PropertyID(), b.GuestID(),
		b.Stay().CheckIn(), b.Stay().CheckOut(), b.Guests(),
		b.Status().String(),
		price.BasePrice.Amount(), price.GuestSurcharge.Amount(),
		price.DiscountAmount.Amount(), price.Subtotal.Amount(),
		price.TaxAmount.Amount(), price.TotalDue.Amount(),
		price.Currency.String(), note,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrCodeExclusionViolation:
				return uuid.Nil, infra.WrapRepoErr("stay overlaps an existing booking", err, infra.KindConflict)
			case pgErrCodeUniqueViolation:
				return uuid.Nil, infra.WrapRepoErr("booking reference already taken", err, infra.KindDuplicateKey)
			}
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query := `SELECT id, reference, property_id, guest_id, check_in, check_out,
			guests, status, base_price, guest_surcharge, discount_amount,
			subtotal, tax_amount, total_due, currency, note, created_at, updated_at
		FROM bookings WHERE id = $1`

	var row bookingRow
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.Reference, &row.PropertyID, &row.GuestID,
		&row.CheckIn, &row.CheckOut, &row.Guests, &row.Status,
		&row.BasePrice, &row.GuestSurcharge, &row.DiscountAmount,
		&row.Subtotal, &row.TaxAmount, &row.TotalDue, &row.Currency,
		&row.Note, &row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	entity, err := row.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return entity, nil
}

// UpdateStatus persists a status transition already validated on the entity.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	query := `UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

type bookingRow struct {
	ID             uuid.UUID
	Reference      string
	PropertyID     uuid.UUID
	GuestID        uuid.UUID
	CheckIn        time.Time
	CheckOut       time.Time
	Guests         int
	Status         string
	BasePrice      int64
	GuestSurcharge int64
	DiscountAmount int64
	Subtotal       int64
	TaxAmount      int64
	TotalDue       int64
	Currency       string
	Note           *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (row bookingRow) toDomain() (*booking.Booking, error) {
	reference, err := booking.ParseReference(row.Reference)
	if err != nil {
		return nil, err
	}
	stay, err := booking.NewStayRange(row.CheckIn, row.CheckOut)
	if err != nil {
		return nil, err
	}
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	currency, err := booking.NewCurrency(row.Currency)
	if err != nil {
		return nil, err
	}

	price := booking.PriceBreakdown{
		Nights:         stay.Nights(),
		BasePrice:      booking.NewMoney(row.BasePrice),
		GuestSurcharge: booking.NewMoney(row.GuestSurcharge),
		DiscountAmount: booking.NewMoney(row.DiscountAmount),
		Subtotal:       booking.NewMoney(row.Subtotal),
		TaxAmount:      booking.NewMoney(row.TaxAmount),
		TotalDue:       booking.NewMoney(row.TotalDue),
		Currency:       currency,
	}

	note := booking.NewNote("")
	if row.Note != nil {
		note = booking.NewNote(*row.Note)
	}

	return booking.ReconstructBooking(
		row.ID, row.PropertyID, row.GuestID, reference, stay, row.Guests,
		status, price, note, row.CreatedAt, row.UpdatedAt,
	), nil
}
