package components

import (
	"car-rental-core/internal/domain/pricing"
	"car-rental-core/internal/pkg/clock"
	"car-rental-core/internal/pkg/config"
	"car-rental-core/internal/pkg/confirmtoken"
	"car-rental-core/internal/usecase"
	"car-rental-core/internal/usecase/commands"
	"car-rental-core/internal/usecase/queries"
	"car-rental-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewAvailabilityChecker,
	fx.Annotate(
		NewPriceCalculator,
		fx.As(new(pricing.Calculator)),
	),
	fx.Annotate(
		NewConfirmationTokens,
		fx.As(new(commands.TokenService)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewOfferUseCase,
		commands.NewRentalUseCase,
		commands.NewConfirmationUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOfferQueries,
		queries.NewRentalQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewPriceCalculator(cfg config.Config) *pricing.PipelineCalculator {
	return pricing.NewCalculator(pricing.Rates{
		GPSDaily:       cfg.Pricing.GPSDailyRate,
		ChildSeatDaily: cfg.Pricing.ChildSeatDailyRate,
	})
}

func NewConfirmationTokens(cfg config.Config, clk clock.Clock) (*confirmtoken.Service, error) {
	return confirmtoken.NewService(cfg.Token.Secret, clk, cfg.Token.TTL, cfg.Token.FrontendURL)
}
