package response

import (
	"time"

	"havenstay/internal/domain/booking"
	"havenstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type PriceBreakdownResponse struct {
	Nights         int    `json:"nights"`
	BasePrice      int64  `json:"basePrice"`
	GuestSurcharge int64  `json:"guestSurcharge"`
	DiscountAmount int64  `json:"discountAmount"`
	Subtotal       int64  `json:"subtotal"`
	TaxAmount      int64  `json:"taxAmount"`
	TotalDue       int64  `json:"totalDue"`
	Currency       string `json:"currency"`
	Display        string `json:"display"`
}

func FromPriceBreakdown(p *booking.PriceBreakdown) *PriceBreakdownResponse {
	return &PriceBreakdownResponse{
		Nights:         p.Nights,
		BasePrice:      p.BasePrice.Amount(),
		GuestSurcharge: p.GuestSurcharge.Amount(),
		DiscountAmount: p.DiscountAmount.Amount(),
		Subtotal:       p.Subtotal.Amount(),
		TaxAmount:      p.TaxAmount.Amount(),
		TotalDue:       p.TotalDue.Amount(),
		Currency:       p.Currency.String(),
		Display:        booking.FormatPrice(p.TotalDue, p.Currency),
	}
}

type AvailabilityResponse struct {
	Available    bool     `json:"available"`
	BlockedDates []string `json:"blockedDates"`
}

func FromAvailability(a *booking.Availability) *AvailabilityResponse {
	blocked := make([]string, len(a.BlockedDates))
	for i, d := range a.BlockedDates {
		blocked[i] = d.Format(time.DateOnly)
	}
	return &AvailabilityResponse{
		Available:    a.Available,
		BlockedDates: blocked,
	}
}

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	Reference      string    `json:"reference"`
	PropertyID     uuid.UUID `json:"propertyId"`
	PropertyName   string    `json:"propertyName"`
	GuestID        uuid.UUID `json:"guestId"`
	GuestEmail     string    `json:"guestEmail"`
	CheckIn        string    `json:"checkIn"`
	CheckOut       string    `json:"checkOut"`
	Nights         int       `json:"nights"`
	Guests         int       `json:"guests"`
	Status         string    `json:"status"`
	BasePrice      int64     `json:"basePrice"`
	GuestSurcharge int64     `json:"guestSurcharge"`
	DiscountAmount int64     `json:"discountAmount"`
	Subtotal       int64     `json:"subtotal"`
	TaxAmount      int64     `json:"taxAmount"`
	TotalDue       int64     `json:"totalDue"`
	Currency       string    `json:"currency"`
	Note           *string   `json:"note,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID           uuid.UUID `json:"id"`
	Reference    string    `json:"reference"`
	PropertyID   uuid.UUID `json:"propertyId"`
	PropertyName string    `json:"propertyName"`
	CheckIn      string    `json:"checkIn"`
	CheckOut     string    `json:"checkOut"`
	Status       string    `json:"status"`
	TotalDue     int64     `json:"totalDue"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:             v.ID,
		Reference:      v.Reference,
		PropertyID:     v.PropertyID,
		PropertyName:   v.PropertyName,
		GuestID:        v.GuestID,
		GuestEmail:     v.GuestEmail,
		CheckIn:        v.CheckIn.Format(time.DateOnly),
		CheckOut:       v.CheckOut.Format(time.DateOnly),
		Nights:         v.Nights,
		Guests:         v.Guests,
		Status:         v.Status,
		BasePrice:      v.BasePrice,
		GuestSurcharge: v.GuestSurcharge,
		DiscountAmount: v.DiscountAmount,
		Subtotal:       v.Subtotal,
		TaxAmount:      v.TaxAmount,
		TotalDue:       v.TotalDue,
		Currency:       v.Currency,
		Note:           v.Note,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func FromBookingListItem(v *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:           v.ID,
		Reference:    v.Reference,
		PropertyID:   v.PropertyID,
		PropertyName: v.PropertyName,
		CheckIn:      v.CheckIn.Format(time.DateOnly),
		CheckOut:     v.CheckOut.Format(time.DateOnly),
		Status:       v.Status,
		TotalDue:     v.TotalDue,
		Currency:     v.Currency,
		CreatedAt:    v.CreatedAt,
	}
}
