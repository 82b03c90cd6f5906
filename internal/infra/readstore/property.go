package readstore

import (
	"context"
	"errors"

	"havenstay/internal/domain/booking"
	"havenstay/internal/infra"
	"havenstay/internal/pkg/errs"
	"havenstay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PropertyReadStore struct {
	pool *pgxpool.Pool
}

func NewPropertyReadStore(pool *pgxpool.Pool) queries.PropertyQueries {
	return &PropertyReadStore{pool: pool}
}

func (r *PropertyReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.PropertyView, error) {
	query := `SELECT id, name, max_guests, nightly_rate, included_guests,
			per_extra_guest_rate, tax_percent, discount_percent, currency,
			minimum_stay, created_at, updated_at
		FROM properties WHERE id = $1`

	var view queries.PropertyView
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Name, &view.MaxGuests, &view.NightlyRate, &view.IncludedGuests,
		&view.PerExtraGuestRate, &view.TaxPercent, &view.DiscountPercent, &view.Currency,
		&view.MinimumStay, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(infra.WrapRepoErr("property not found", err, infra.KindNotFound), errs.ErrPropertyNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find property by ID", err)
	}

	return &view, nil
}

func (r *PropertyReadStore) GetRateConfig(ctx context.Context, id uuid.UUID) (*booking.RateConfig, error) {
	query := `SELECT nightly_rate, included_guests, per_extra_guest_rate,
			tax_percent, discount_percent, currency, minimum_stay
		FROM properties WHERE id = $1`

	var cfg booking.RateConfig
	var currency string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&cfg.NightlyRate, &cfg.IncludedGuests, &cfg.PerExtraGuestRate,
		&cfg.TaxPercent, &cfg.DiscountPercent, &currency, &cfg.MinimumStay,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(infra.WrapRepoErr("property not found", err, infra.KindNotFound), errs.ErrPropertyNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load rate config", err)
	}
	cfg.Currency = booking.Currency(currency)

	return &cfg, nil
}
