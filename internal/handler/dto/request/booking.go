package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID uuid.UUID `json:"property_id" binding:"required"`
	CheckIn    time.Time `json:"check_in" binding:"required"`
	CheckOut   time.Time `json:"check_out" binding:"required"`
	Guests     int       `json:"guests" binding:"required,min=1"`
	Note       *string   `json:"note,omitempty"`
}

func (r CreateBookingRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}

// StayQuery carries the check_in/check_out/guests query parameters of the
// quote and availability endpoints. Dates are plain calendar days.
type StayQuery struct {
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
	Guests   int    `form:"guests,default=1"`
}

func (q StayQuery) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.ParseInLocation(time.DateOnly, q.CheckIn, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = time.ParseInLocation(time.DateOnly, q.CheckOut, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}
