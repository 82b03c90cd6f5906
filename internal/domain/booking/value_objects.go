package booking

import (
	"fmt"
	"math"
	"time"
)

// StayRange is a half-open interval of calendar nights [checkIn, checkOut).
// Both endpoints are normalized to midnight UTC so that night counting is a
// plain calendar-day difference, regardless of the caller's timezone or any
// daylight-saving transitions.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := ToCalendarDate(checkIn)
	out := ToCalendarDate(checkOut)
	if !in.Before(out) {
		return StayRange{}, ErrInvalidDateRange
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

// ToCalendarDate truncates t to its calendar date at midnight UTC.
func ToCalendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r StayRange) CheckIn() time.Time {
	return r.checkIn
}

func (r StayRange) CheckOut() time.Time {
	return r.checkOut
}

// Nights is the whole calendar-day difference between checkout and check-in.
func (r StayRange) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

// Contains reports whether the calendar date of d is a night consumed by the
// stay. The checkout date itself is never occupied (turnover day).
func (r StayRange) Contains(d time.Time) bool {
	day := ToCalendarDate(d)
	return !day.Before(r.checkIn) && day.Before(r.checkOut)
}

func (r StayRange) Overlaps(other StayRange) bool {
	return r.checkIn.Before(other.checkOut) && other.checkIn.Before(r.checkOut)
}

// Dates returns every night of the stay in ascending order.
func (r StayRange) Dates() []time.Time {
	dates := make([]time.Time, 0, r.Nights())
	for d := r.checkIn; d.Before(r.checkOut); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// ToDaterange renders the range in PostgreSQL daterange literal form.
func (r StayRange) ToDaterange() string {
	return fmt.Sprintf("[%s,%s)", r.checkIn.Format(time.DateOnly), r.checkOut.Format(time.DateOnly))
}

// Money is an amount in a currency's minor units (paise, cents, pence).
// Integer representation avoids binary floating-point drift across repeated
// additions.
type Money struct {
	amount int64
}

func NewMoney(minorUnits int64) Money {
	return Money{amount: minorUnits}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount - other.amount}
}

func (m Money) Mul(n int64) Money {
	return Money{amount: m.amount * n}
}

// Percent returns pct% of m, rounded half away from zero to the nearest
// minor unit. Rounding happens once per percentage application, never on
// intermediate sums.
func (m Money) Percent(pct float64) Money {
	return Money{amount: int64(math.Round(float64(m.amount) * pct / 100))}
}

func (m Money) IsNegative() bool {
	return m.amount < 0
}

func (m Money) IsZero() bool {
	return m.amount == 0
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: value}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
