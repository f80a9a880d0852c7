package scheduler

import (
	"context"
	"log/slog"
	"time"

	"car-rental-core/internal/pkg/config"
	"car-rental-core/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

const jobTimeout = time.Minute

// OfferPurger is the job the janitor runs.
type OfferPurger interface {
	PurgeStale(ctx context.Context) (int64, error)
}

// Scheduler runs the stale-offer janitor on a cron schedule.
type Scheduler struct {
	cron   *cron.Cron
	purger OfferPurger
}

func NewScheduler(cfg config.JanitorConfig, purger OfferPurger) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	s := &Scheduler{
		cron:   c,
		purger: purger,
	}

	if _, err := s.cron.AddFunc(cfg.Schedule, s.PurgeStaleOffers); err != nil {
		return nil, errs.Wrapf(err, "invalid janitor schedule %q", cfg.Schedule)
	}
	return s, nil
}

// PurgeStaleOffers is one janitor tick. Errors are logged; the next tick retries.
func (s *Scheduler) PurgeStaleOffers() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if _, err := s.purger.PurgeStale(ctx); err != nil {
		slog.Error("stale offer cleanup failed", "error", err.Error())
	}
}

func (s *Scheduler) Start() {
	slog.Info("starting offer janitor")
	s.cron.Start()
}

// Stop waits for a running tick to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("offer janitor stopped")
}
