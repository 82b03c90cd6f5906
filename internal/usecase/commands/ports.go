package commands

import (
	"context"

	"havenstay/internal/domain/booking"
	"havenstay/internal/domain/user"
	"havenstay/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error)
}

// LoginAttemptStore tracks failed logins per account in a store that
// survives restarts and is shared across server instances. Keys are
// normalized email addresses.
type LoginAttemptStore interface {
	RecordAttempt(ctx context.Context, key string) (int, error)
	IsLockedOut(ctx context.Context, key string) (bool, error)
	RemainingAttempts(ctx context.Context, key string) (int, error)
	Reset(ctx context.Context, key string) error
}
