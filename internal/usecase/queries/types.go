package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID             uuid.UUID `json:"id"`
	Reference      string    `json:"reference"`
	PropertyID     uuid.UUID `json:"property_id"`
	PropertyName   string    `json:"property_name"`
	GuestID        uuid.UUID `json:"guest_id"`
	GuestEmail     string    `json:"guest_email"`
	CheckIn        time.Time `json:"check_in"`
	CheckOut       time.Time `json:"check_out"`
	Nights         int       `json:"nights"`
	Guests         int       `json:"guests"`
	Status         string    `json:"status"`
	BasePrice      int64     `json:"base_price"`
	GuestSurcharge int64     `json:"guest_surcharge"`
	DiscountAmount int64     `json:"discount_amount"`
	Subtotal       int64     `json:"subtotal"`
	TaxAmount      int64     `json:"tax_amount"`
	TotalDue       int64     `json:"total_due"`
	Currency       string    `json:"currency"`
	Note           *string   `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID           uuid.UUID `json:"id"`
	Reference    string    `json:"reference"`
	PropertyID   uuid.UUID `json:"property_id"`
	PropertyName string    `json:"property_name"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
	Status       string    `json:"status"`
	TotalDue     int64     `json:"total_due"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"created_at"`
}

type PropertyView struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	MaxGuests         int       `json:"max_guests"`
	NightlyRate       int64     `json:"nightly_rate"`
	IncludedGuests    int       `json:"included_guests"`
	PerExtraGuestRate int64     `json:"per_extra_guest_rate"`
	TaxPercent        float64   `json:"tax_percent"`
	DiscountPercent   float64   `json:"discount_percent"`
	Currency          string    `json:"currency"`
	MinimumStay       int       `json:"minimum_stay"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
