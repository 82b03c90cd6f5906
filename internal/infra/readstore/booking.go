package readstore

import (
	"context"
	"errors"
	"time"

	"havenstay/internal/domain/booking"
	"havenstay/internal/infra"
	"havenstay/internal/pkg/errs"
	"havenstay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingViewColumns = `
	b.id, b.reference, b.property_id, p.name, b.guest_id, u.email,
	b.check_in, b.check_out, b.guests, b.status,
	b.base_price, b.guest_surcharge, b.discount_amount, b.subtotal,
	b.tax_amount, b.total_due, b.currency, b.note, b.created_at, b.updated_at`

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) queries.BookingQueries {
	return &BookingReadStore{pool: pool}
}

func (r *BookingReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `SELECT` + bookingViewColumns + `
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		JOIN users u ON u.id = b.guest_id
		WHERE b.id = $1`

	view, err := r.scanBookingView(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(infra.WrapRepoErr("booking not found", err, infra.KindNotFound), errs.ErrBookingNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return view, nil
}

func (r *BookingReadStore) GetByReference(ctx context.Context, reference booking.Reference) (*queries.BookingView, error) {
	query := `SELECT` + bookingViewColumns + `
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		JOIN users u ON u.id = b.guest_id
		WHERE b.reference = $1`

	view, err := r.scanBookingView(r.pool.QueryRow(ctx, query, reference.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(infra.WrapRepoErr("booking not found", err, infra.KindNotFound), errs.ErrBookingNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by reference", err)
	}
	return view, nil
}

func (r *BookingReadStore) ListByGuest(ctx context.Context, guestID uuid.UUID) ([]*queries.BookingListItem, error) {
	query := `SELECT b.id, b.reference, b.property_id, p.name,
			b.check_in, b.check_out, b.status, b.total_due, b.currency, b.created_at
		FROM bookings b
		JOIN properties p ON p.id = b.property_id
		WHERE b.guest_id = $1
		ORDER BY b.created_at DESC, b.id`

	rows, err := r.pool.Query(ctx, query, guestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by guest", err)
	}
	defer rows.Close()

	var result []*queries.BookingListItem
	for rows.Next() {
		var item queries.BookingListItem
		var checkIn, checkOut time.Time
		if err := rows.Scan(
			&item.ID, &item.Reference, &item.PropertyID, &item.PropertyName,
			&checkIn, &checkOut, &item.Status, &item.TotalDue, &item.Currency, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		item.CheckIn = checkIn.UTC()
		item.CheckOut = checkOut.UTC()
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}

	return result, nil
}

// ListBlockedRanges fetches active booking ranges plus manual calendar
// blocks overlapping the window, as a single snapshot read.
func (r *BookingReadStore) ListBlockedRanges(ctx context.Context, propertyID uuid.UUID, window booking.StayRange) ([]booking.StayRange, error) {
	query := `SELECT check_in, check_out
		FROM bookings
		WHERE property_id = $1
		  AND status <> 'canceled'
		  AND daterange(check_in, check_out, '[)') && daterange($2::date, $3::date, '[)')
		UNION ALL
		SELECT start_date, end_date
		FROM calendar_blocks
		WHERE property_id = $1
		  AND daterange(start_date, end_date, '[)') && daterange($2::date, $3::date, '[)')`

	rows, err := r.pool.Query(ctx, query, propertyID, window.CheckIn(), window.CheckOut())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked ranges", err)
	}
	defer rows.Close()

	var blocked []booking.StayRange
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocked range", err)
		}
		stay, err := booking.NewStayRange(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid range in store", err)
		}
		blocked = append(blocked, stay)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocked ranges", err)
	}

	return blocked, nil
}

func (r *BookingReadStore) scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var view queries.BookingView
	var checkIn, checkOut time.Time
	if err := row.Scan(
		&view.ID, &view.Reference, &view.PropertyID, &view.PropertyName,
		&view.GuestID, &view.GuestEmail, &checkIn, &checkOut,
		&view.Guests, &view.Status,
		&view.BasePrice, &view.GuestSurcharge, &view.DiscountAmount, &view.Subtotal,
		&view.TaxAmount, &view.TotalDue, &view.Currency, &view.Note,
		&view.CreatedAt, &view.UpdatedAt,
	); err != nil {
		return nil, err
	}

	stay, err := booking.NewStayRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	view.CheckIn = stay.CheckIn()
	view.CheckOut = stay.CheckOut()
	view.Nights = stay.Nights()
	return &view, nil
}
