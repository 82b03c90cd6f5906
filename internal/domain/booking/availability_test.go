//go:build unit

package booking_test

import (
	"testing"
	"time"

	"havenstay/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStay(t *testing.T, checkIn, checkOut time.Time) booking.StayRange {
	t.Helper()
	stay, err := booking.NewStayRange(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

func TestCheckAvailability(t *testing.T) {
	t.Run("no blocked ranges", func(t *testing.T) {
		candidate := mustStay(t, date(2026, 1, 1), date(2026, 1, 5))

		got := booking.CheckAvailability(candidate, nil)

		assert.True(t, got.Available)
		assert.Empty(t, got.BlockedDates)
	})

	t.Run("single overlapping night", func(t *testing.T) {
		candidate := mustStay(t, date(2026, 1, 1), date(2026, 1, 5))
		blocked := []booking.StayRange{
			mustStay(t, date(2026, 1, 3), date(2026, 1, 4)),
		}

		got := booking.CheckAvailability(candidate, blocked)

		assert.False(t, got.Available)
		assert.Equal(t, []time.Time{date(2026, 1, 3)}, got.BlockedDates)
	})

	t.Run("checkout day turnover does not conflict", func(t *testing.T) {
		cases := []struct {
			name      string
			candidate booking.StayRange
			blocked   booking.StayRange
		}{
			{
				name:      "blocked range starts on candidate checkout",
				candidate: mustStay(t, date(2026, 1, 1), date(2026, 1, 5)),
				blocked:   mustStay(t, date(2026, 1, 5), date(2026, 1, 8)),
			},
			{
				name:      "candidate starts on blocked checkout",
				candidate: mustStay(t, date(2026, 1, 5), date(2026, 1, 8)),
				blocked:   mustStay(t, date(2026, 1, 1), date(2026, 1, 5)),
			},
		}
		for _, tt := range cases {
			t.Run(tt.name, func(t *testing.T) {
				got := booking.CheckAvailability(tt.candidate, []booking.StayRange{tt.blocked})
				assert.True(t, got.Available)
				assert.Empty(t, got.BlockedDates)
			})
		}
	})

	t.Run("blocked dates are ascending and deduplicated", func(t *testing.T) {
		candidate := mustStay(t, date(2026, 1, 1), date(2026, 1, 6))
		blocked := []booking.StayRange{
			mustStay(t, date(2026, 1, 4), date(2026, 1, 6)),
			mustStay(t, date(2026, 1, 2), date(2026, 1, 3)),
			mustStay(t, date(2026, 1, 4), date(2026, 1, 5)), // overlaps first range
		}

		got := booking.CheckAvailability(candidate, blocked)

		assert.False(t, got.Available)
		assert.Equal(t, []time.Time{
			date(2026, 1, 2),
			date(2026, 1, 4),
			date(2026, 1, 5),
		}, got.BlockedDates)
	})

	t.Run("blocked range fully covering candidate", func(t *testing.T) {
		candidate := mustStay(t, date(2026, 1, 3), date(2026, 1, 5))
		blocked := []booking.StayRange{
			mustStay(t, date(2026, 1, 1), date(2026, 1, 10)),
		}

		got := booking.CheckAvailability(candidate, blocked)

		assert.False(t, got.Available)
		assert.Equal(t, []time.Time{date(2026, 1, 3), date(2026, 1, 4)}, got.BlockedDates)
	})
}

func TestValidateMinimumStay(t *testing.T) {
	stay := mustStay(t, date(2026, 1, 1), date(2026, 1, 3)) // 2 nights

	assert.NoError(t, booking.ValidateMinimumStay(stay, 0))
	assert.NoError(t, booking.ValidateMinimumStay(stay, 2))
	assert.ErrorIs(t, booking.ValidateMinimumStay(stay, 3), booking.ErrMinimumStayNotMet)
}
