package components

import (
	"havenstay/internal/infra/ratelimit"
	"havenstay/internal/infra/readstore"
	"havenstay/internal/infra/writerepo"
	"havenstay/internal/pkg/config"
	"havenstay/internal/usecase/commands"
	"havenstay/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		func(cfg config.Config) config.AuthConfig { return cfg.Auth },
		// Write side
		fx.Annotate(
			writerepo.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			writerepo.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		// Read side: property and booking constructors already return
		// their query interfaces.
		readstore.NewPropertyReadStore,
		readstore.NewBookingReadStore,
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(commands.UserReadStore)),
			fx.As(new(queries.UserQueries)),
		),
		// Login attempt tracking backed by Redis
		fx.Annotate(
			ratelimit.NewRedisStore,
			fx.As(new(commands.LoginAttemptStore)),
		),
	),
)
