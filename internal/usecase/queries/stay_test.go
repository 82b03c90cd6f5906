//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"havenstay/internal/domain/booking"
	"havenstay/internal/infra"
	"havenstay/internal/pkg/errs"
	"havenstay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type stubProperties struct {
	rate *booking.RateConfig
	err  error
}

func (s *stubProperties) GetByID(_ context.Context, _ uuid.UUID) (*queries.PropertyView, error) {
	return nil, s.err
}

func (s *stubProperties) GetRateConfig(_ context.Context, _ uuid.UUID) (*booking.RateConfig, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.rate, nil
}

type stubBookings struct {
	blocked []booking.StayRange
	err     error
}

func (s *stubBookings) GetByID(_ context.Context, _ uuid.UUID) (*queries.BookingView, error) {
	return nil, nil
}

func (s *stubBookings) GetByReference(_ context.Context, _ booking.Reference) (*queries.BookingView, error) {
	return nil, nil
}

func (s *stubBookings) ListByGuest(_ context.Context, _ uuid.UUID) ([]*queries.BookingListItem, error) {
	return nil, nil
}

func (s *stubBookings) ListBlockedRanges(_ context.Context, _ uuid.UUID, _ booking.StayRange) ([]booking.StayRange, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.blocked, nil
}

func inrRate() *booking.RateConfig {
	return &booking.RateConfig{
		NightlyRate:       4000,
		IncludedGuests:    2,
		PerExtraGuestRate: 500,
		TaxPercent:        18,
		Currency:          booking.CurrencyINR,
	}
}

func TestStayQueriesQuote(t *testing.T) {
	t.Run("prices with the property rate", func(t *testing.T) {
		uc := queries.NewStayQueries(&stubProperties{rate: inrRate()}, &stubBookings{})

		got, err := uc.Quote(context.Background(), uuid.New(), date(2026, 3, 1), date(2026, 3, 5), 2)
		require.NoError(t, err)
		assert.Equal(t, int64(18880), got.TotalDue.Amount())
	})

	t.Run("unknown property", func(t *testing.T) {
		props := &stubProperties{
			err: errs.Mark(
				infra.WrapRepoErr("property not found", errors.New("no rows"), infra.KindNotFound),
				errs.ErrPropertyNotFound,
			),
		}
		uc := queries.NewStayQueries(props, &stubBookings{})

		_, err := uc.Quote(context.Background(), uuid.New(), date(2026, 3, 1), date(2026, 3, 5), 2)
		assert.ErrorIs(t, err, errs.ErrPropertyNotFound)
	})
}

func TestStayQueriesAvailability(t *testing.T) {
	t.Run("free range", func(t *testing.T) {
		uc := queries.NewStayQueries(&stubProperties{rate: inrRate()}, &stubBookings{})

		got, err := uc.Availability(context.Background(), uuid.New(), date(2026, 3, 1), date(2026, 3, 5))
		require.NoError(t, err)
		assert.True(t, got.Available)
	})

	t.Run("reports blocked nights", func(t *testing.T) {
		blocked, err := booking.NewStayRange(date(2026, 3, 3), date(2026, 3, 4))
		require.NoError(t, err)
		uc := queries.NewStayQueries(
			&stubProperties{rate: inrRate()},
			&stubBookings{blocked: []booking.StayRange{blocked}},
		)

		got, err := uc.Availability(context.Background(), uuid.New(), date(2026, 3, 1), date(2026, 3, 5))
		require.NoError(t, err)
		assert.False(t, got.Available)
		assert.Equal(t, []time.Time{date(2026, 3, 3)}, got.BlockedDates)
	})

	t.Run("invalid range fails before any read", func(t *testing.T) {
		uc := queries.NewStayQueries(&stubProperties{rate: inrRate()}, &stubBookings{})

		_, err := uc.Availability(context.Background(), uuid.New(), date(2026, 3, 5), date(2026, 3, 1))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("failed blocked range read surfaces as database failure", func(t *testing.T) {
		uc := queries.NewStayQueries(
			&stubProperties{rate: inrRate()},
			&stubBookings{err: infra.WrapRepoErr("query failed", errors.New("timeout"))},
		)

		_, err := uc.Availability(context.Background(), uuid.New(), date(2026, 3, 1), date(2026, 3, 5))
		assert.ErrorIs(t, err, errs.ErrDatabaseOperationFailed)
	})
}
