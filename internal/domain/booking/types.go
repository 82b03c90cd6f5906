package booking

import "errors"

var (
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrInvalidGuestCount   = errors.New("invalid guest count")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrMinimumStayNotMet   = errors.New("minimum stay not met")
	ErrInvalidReference    = errors.New("invalid booking reference")
	ErrBookingCanceled     = errors.New("booking is already canceled")
	ErrInvalidStatus       = errors.New("invalid booking status")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
