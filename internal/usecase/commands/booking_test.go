//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"havenstay/internal/domain/booking"
	"havenstay/internal/infra"
	"havenstay/internal/pkg/clock"
	"havenstay/internal/pkg/errs"
	"havenstay/internal/usecase/commands"
	"havenstay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeBookingRepo struct {
	created     []*booking.Booking
	createErrs  []error
	createIDs   []uuid.UUID
	findResult  *booking.Booking
	findErr     error
	updateErr   error
	updatedTo   booking.Status
	updateCalls int
}

func (f *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) (uuid.UUID, error) {
	f.created = append(f.created, b)
	i := len(f.created) - 1
	if i < len(f.createErrs) && f.createErrs[i] != nil {
		return uuid.Nil, f.createErrs[i]
	}
	if i < len(f.createIDs) {
		return f.createIDs[i], nil
	}
	return uuid.New(), nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, _ uuid.UUID) (*booking.Booking, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findResult, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ uuid.UUID, status booking.Status) error {
	f.updateCalls++
	f.updatedTo = status
	return f.updateErr
}

type fakePropertyQueries struct {
	view *queries.PropertyView
	err  error
}

func (f *fakePropertyQueries) GetByID(_ context.Context, _ uuid.UUID) (*queries.PropertyView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.view, nil
}

func (f *fakePropertyQueries) GetRateConfig(_ context.Context, _ uuid.UUID) (*booking.RateConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	cfg := f.view.RateConfig()
	return &cfg, nil
}

type fakeBookingQueries struct {
	view    *queries.BookingView
	blocked []booking.StayRange
	listErr error
}

func (f *fakeBookingQueries) GetByID(_ context.Context, _ uuid.UUID) (*queries.BookingView, error) {
	return f.view, nil
}

func (f *fakeBookingQueries) GetByReference(_ context.Context, _ booking.Reference) (*queries.BookingView, error) {
	return f.view, nil
}

func (f *fakeBookingQueries) ListByGuest(_ context.Context, _ uuid.UUID) ([]*queries.BookingListItem, error) {
	return nil, nil
}

func (f *fakeBookingQueries) ListBlockedRanges(_ context.Context, _ uuid.UUID, _ booking.StayRange) ([]booking.StayRange, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.blocked, nil
}

func testPropertyView() *queries.PropertyView {
	return &queries.PropertyView{
		ID:                uuid.New(),
		Name:              "Seaside Villa",
		MaxGuests:         4,
		NightlyRate:       4000,
		IncludedGuests:    2,
		PerExtraGuestRate: 500,
		TaxPercent:        18,
		Currency:          "INR",
		MinimumStay:       2,
	}
}

func newFixture(repo *fakeBookingRepo, props *fakePropertyQueries, reads *fakeBookingQueries) commands.BookingCommands {
	return commands.NewBookingCommands(
		repo, props, reads,
		clock.NewMockClock(time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)),
	)
}

func validParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		PropertyID: uuid.New(),
		GuestID:    uuid.New(),
		CheckIn:    date(2026, 4, 1),
		CheckOut:   date(2026, 4, 5),
		Guests:     2,
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		reads := &fakeBookingQueries{view: &queries.BookingView{Reference: "HAV-20260315-0001"}}
		uc := newFixture(repo, &fakePropertyQueries{view: testPropertyView()}, reads)

		view, err := uc.CreateBooking(context.Background(), validParams())
		require.NoError(t, err)
		require.NotNil(t, view)

		require.Len(t, repo.created, 1)
		created := repo.created[0]
		assert.Equal(t, booking.StatusConfirmed, created.Status())
		assert.Equal(t, int64(18880), created.Price().TotalDue.Amount())
		assert.Contains(t, created.Reference().String(), "HAV-20260315-")
	})

	t.Run("property not found", func(t *testing.T) {
		props := &fakePropertyQueries{
			err: infra.WrapRepoErr("property not found", nil, infra.KindNotFound),
		}
		uc := newFixture(&fakeBookingRepo{}, props, &fakeBookingQueries{})

		_, err := uc.CreateBooking(context.Background(), validParams())
		assert.ErrorIs(t, err, errs.ErrPropertyNotFound)
	})

	t.Run("guest count over capacity", func(t *testing.T) {
		uc := newFixture(&fakeBookingRepo{}, &fakePropertyQueries{view: testPropertyView()}, &fakeBookingQueries{})

		params := validParams()
		params.Guests = 5

		_, err := uc.CreateBooking(context.Background(), params)
		assert.ErrorIs(t, err, commands.ErrCapacityExceeded)
	})

	t.Run("zero guests", func(t *testing.T) {
		uc := newFixture(&fakeBookingRepo{}, &fakePropertyQueries{view: testPropertyView()}, &fakeBookingQueries{})

		params := validParams()
		params.Guests = 0

		_, err := uc.CreateBooking(context.Background(), params)
		assert.ErrorIs(t, err, booking.ErrInvalidGuestCount)
	})

	t.Run("invalid date range", func(t *testing.T) {
		uc := newFixture(&fakeBookingRepo{}, &fakePropertyQueries{view: testPropertyView()}, &fakeBookingQueries{})

		params := validParams()
		params.CheckOut = params.CheckIn

		_, err := uc.CreateBooking(context.Background(), params)
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("minimum stay not met", func(t *testing.T) {
		uc := newFixture(&fakeBookingRepo{}, &fakePropertyQueries{view: testPropertyView()}, &fakeBookingQueries{})

		params := validParams()
		params.CheckOut = date(2026, 4, 2) // 1 night against minimum of 2

		_, err := uc.CreateBooking(context.Background(), params)
		assert.ErrorIs(t, err, booking.ErrMinimumStayNotMet)
	})

	t.Run("snapshot precheck rejects blocked dates", func(t *testing.T) {
		blocked, err := booking.NewStayRange(date(2026, 4, 3), date(2026, 4, 4))
		require.NoError(t, err)

		repo := &fakeBookingRepo{}
		reads := &fakeBookingQueries{blocked: []booking.StayRange{blocked}}
		uc := newFixture(repo, &fakePropertyQueries{view: testPropertyView()}, reads)

		_, err = uc.CreateBooking(context.Background(), validParams())
		assert.ErrorIs(t, err, errs.ErrDateRangeConflict)
		assert.Empty(t, repo.created, "insert must not be attempted")
	})

	t.Run("constraint violation on insert maps to conflict", func(t *testing.T) {
		// The precheck passed but another write won the race.
		repo := &fakeBookingRepo{
			createErrs: []error{infra.WrapRepoErr("stay overlaps an existing booking", nil, infra.KindConflict)},
		}
		uc := newFixture(repo, &fakePropertyQueries{view: testPropertyView()}, &fakeBookingQueries{})

		_, err := uc.CreateBooking(context.Background(), validParams())
		assert.ErrorIs(t, err, errs.ErrDateRangeConflict)
		assert.Len(t, repo.created, 1, "conflict is not retried")
	})

	t.Run("reference collision is retried with a fresh reference", func(t *testing.T) {
		dup := infra.WrapRepoErr("booking reference already taken", nil, infra.KindDuplicateKey)
		repo := &fakeBookingRepo{createErrs: []error{dup, nil}}
		reads := &fakeBookingQueries{view: &queries.BookingView{}}
		uc := newFixture(repo, &fakePropertyQueries{view: testPropertyView()}, reads)

		_, err := uc.CreateBooking(context.Background(), validParams())
		require.NoError(t, err)
		assert.Len(t, repo.created, 2)
	})

	t.Run("persistent reference collisions give up", func(t *testing.T) {
		dup := infra.WrapRepoErr("booking reference already taken", nil, infra.KindDuplicateKey)
		repo := &fakeBookingRepo{createErrs: []error{dup, dup, dup}}
		uc := newFixture(repo, &fakePropertyQueries{view: testPropertyView()}, &fakeBookingQueries{})

		_, err := uc.CreateBooking(context.Background(), validParams())
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
		assert.Len(t, repo.created, 3)
	})
}

func TestCancelBooking(t *testing.T) {
	guestID := uuid.New()

	makeBooking := func(t *testing.T, status booking.Status) *booking.Booking {
		t.Helper()
		stay, err := booking.NewStayRange(date(2026, 4, 1), date(2026, 4, 5))
		require.NoError(t, err)
		ref, err := booking.ParseReference("HAV-20260315-0042")
		require.NoError(t, err)
		return booking.ReconstructBooking(
			uuid.New(), uuid.New(), guestID, ref, stay, 2, status,
			booking.PriceBreakdown{}, booking.NewNote(""), time.Now(), time.Now(),
		)
	}

	t.Run("success", func(t *testing.T) {
		repo := &fakeBookingRepo{findResult: makeBooking(t, booking.StatusConfirmed)}
		uc := newFixture(repo, &fakePropertyQueries{}, &fakeBookingQueries{})

		err := uc.CancelBooking(context.Background(), uuid.New(), guestID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCanceled, repo.updatedTo)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakeBookingRepo{
			findErr: infra.WrapRepoErr("booking not found", errors.New("no rows"), infra.KindNotFound),
		}
		uc := newFixture(repo, &fakePropertyQueries{}, &fakeBookingQueries{})

		err := uc.CancelBooking(context.Background(), uuid.New(), guestID)
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
	})

	t.Run("foreign booking reads as not found", func(t *testing.T) {
		repo := &fakeBookingRepo{findResult: makeBooking(t, booking.StatusConfirmed)}
		uc := newFixture(repo, &fakePropertyQueries{}, &fakeBookingQueries{})

		err := uc.CancelBooking(context.Background(), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, errs.ErrBookingNotFound)
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("already canceled", func(t *testing.T) {
		repo := &fakeBookingRepo{findResult: makeBooking(t, booking.StatusCanceled)}
		uc := newFixture(repo, &fakePropertyQueries{}, &fakeBookingQueries{})

		err := uc.CancelBooking(context.Background(), uuid.New(), guestID)
		assert.ErrorIs(t, err, booking.ErrBookingCanceled)
		assert.Zero(t, repo.updateCalls)
	})
}
