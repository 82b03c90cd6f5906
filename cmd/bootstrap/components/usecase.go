package components

import (
	"havenstay/internal/handler/middleware"
	"havenstay/internal/pkg/clock"
	"havenstay/internal/usecase/commands"
	"havenstay/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		queries.NewStayQueries,
		func(a commands.AuthCommands) middleware.TokenValidator { return a },
	),
)
