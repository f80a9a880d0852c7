package bootstrap

import (
	"context"
	"log/slog"

	"car-rental-core/internal/infra/scheduler"
	"car-rental-core/internal/pkg/config"
	"car-rental-core/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(
		StartScheduler,
	),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, offers commands.OfferCommands) error {
	if !cfg.Janitor.Enabled {
		slog.Info("Offer cleanup disabled")
		return nil
	}

	s, err := scheduler.NewScheduler(cfg.Janitor, offers)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
	return nil
}
