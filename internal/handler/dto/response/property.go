package response

import (
	"time"

	"havenstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type PropertyResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	MaxGuests         int       `json:"maxGuests"`
	NightlyRate       int64     `json:"nightlyRate"`
	IncludedGuests    int       `json:"includedGuests"`
	PerExtraGuestRate int64     `json:"perExtraGuestRate"`
	TaxPercent        float64   `json:"taxPercent"`
	DiscountPercent   float64   `json:"discountPercent"`
	Currency          string    `json:"currency"`
	MinimumStay       int       `json:"minimumStay"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func FromPropertyView(v *queries.PropertyView) *PropertyResponse {
	return &PropertyResponse{
		ID:                v.ID,
		Name:              v.Name,
		MaxGuests:         v.MaxGuests,
		NightlyRate:       v.NightlyRate,
		IncludedGuests:    v.IncludedGuests,
		PerExtraGuestRate: v.PerExtraGuestRate,
		TaxPercent:        v.TaxPercent,
		DiscountPercent:   v.DiscountPercent,
		Currency:          v.Currency,
		MinimumStay:       v.MinimumStay,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}
