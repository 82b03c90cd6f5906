package property

import (
	"errors"
	"strings"
	"time"

	"havenstay/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrEmptyPropertyName   = errors.New("property name cannot be empty")
	ErrPropertyNameTooLong = errors.New("property name is too long (max 255 characters)")
	ErrInvalidNightlyRate  = errors.New("nightly rate must be positive")
	ErrInvalidMaxGuests    = errors.New("max guests must be at least 1")
	ErrInvalidPercentage   = errors.New("percentage must be between 0 and 100")
	ErrInvalidMinimumStay  = errors.New("minimum stay cannot be negative")
)

const MaxPropertyNameLength = 255

// Property is a bookable vacation rental with its rate configuration.
type Property struct {
	id        uuid.UUID
	name      string
	maxGuests int
	rate      booking.RateConfig
	createdAt time.Time
	updatedAt time.Time
}

func NewProperty(id uuid.UUID, name string, maxGuests int, rate booking.RateConfig) (*Property, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if maxGuests < 1 {
		return nil, ErrInvalidMaxGuests
	}
	if err := validateRate(rate); err != nil {
		return nil, err
	}

	return &Property{
		id:        id,
		name:      strings.TrimSpace(name),
		maxGuests: maxGuests,
		rate:      rate,
	}, nil
}

func ReconstructProperty(
	id uuid.UUID,
	name string,
	maxGuests int,
	rate booking.RateConfig,
	createdAt, updatedAt time.Time,
) *Property {
	return &Property{
		id:        id,
		name:      name,
		maxGuests: maxGuests,
		rate:      rate,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (p *Property) Accommodates(guests int) bool {
	return guests >= 1 && guests <= p.maxGuests
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyPropertyName
	}
	if len(name) > MaxPropertyNameLength {
		return ErrPropertyNameTooLong
	}
	return nil
}

func validateRate(rate booking.RateConfig) error {
	if rate.NightlyRate <= 0 {
		return ErrInvalidNightlyRate
	}
	if rate.TaxPercent < 0 || rate.TaxPercent > 100 ||
		rate.DiscountPercent < 0 || rate.DiscountPercent > 100 {
		return ErrInvalidPercentage
	}
	if rate.MinimumStay < 0 {
		return ErrInvalidMinimumStay
	}
	if !rate.Currency.IsValid() {
		return booking.ErrUnsupportedCurrency
	}
	return nil
}

func (p *Property) ID() uuid.UUID            { return p.id }
func (p *Property) Name() string             { return p.name }
func (p *Property) MaxGuests() int           { return p.maxGuests }
func (p *Property) Rate() booking.RateConfig { return p.rate }
func (p *Property) CreatedAt() time.Time     { return p.createdAt }
func (p *Property) UpdatedAt() time.Time     { return p.updatedAt }
