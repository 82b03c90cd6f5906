//go:build unit

package booking_test

import (
	"regexp"
	"testing"
	"time"

	"havenstay/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceFormat = regexp.MustCompile(`^HAV-\d{8}-\d{4}$`)

func TestReference(t *testing.T) {
	t.Run("generated references always match the format", func(t *testing.T) {
		now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
		for i := 0; i < 1000; i++ {
			ref := booking.NewReference(now)
			assert.Regexp(t, referenceFormat, ref.String())
			assert.Equal(t, date(2026, 3, 15), ref.Date())
		}
	})

	t.Run("date part uses the calendar date of creation", func(t *testing.T) {
		ref := booking.NewReference(time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC))
		assert.Contains(t, ref.String(), "HAV-20261231-")
	})

	t.Run("parse round trip", func(t *testing.T) {
		original := booking.NewReference(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

		parsed, err := booking.ParseReference(original.String())
		require.NoError(t, err)

		assert.Equal(t, original.String(), parsed.String())
		assert.Equal(t, original.Date(), parsed.Date())
		assert.Equal(t, original.Sequence(), parsed.Sequence())
	})

	t.Run("suffix is zero padded", func(t *testing.T) {
		parsed, err := booking.ParseReference("HAV-20260315-0042")
		require.NoError(t, err)
		assert.Equal(t, 42, parsed.Sequence())
		assert.Equal(t, "HAV-20260315-0042", parsed.String())
	})

	t.Run("rejects malformed references", func(t *testing.T) {
		cases := []string{
			"",
			"HAV-20260315",
			"HAV-20260315-42",
			"HAV-20260315-04200",
			"hav-20260315-0042",
			"XYZ-20260315-0042",
			"HAV-2026031-0042",
			"HAV-20261345-0042", // month 13
			" HAV-20260315-0042",
		}
		for _, s := range cases {
			_, err := booking.ParseReference(s)
			assert.ErrorIs(t, err, booking.ErrInvalidReference, "input %q", s)
		}
	})

	t.Run("zero value", func(t *testing.T) {
		var ref booking.Reference
		assert.True(t, ref.IsZero())
		assert.False(t, booking.NewReference(time.Now()).IsZero())
	})
}
