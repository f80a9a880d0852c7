package commands

import (
	"context"
	"log/slog"
	"time"

	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/domain/pricing"
	"car-rental-core/internal/domain/resource"
	"car-rental-core/internal/infra"
	"car-rental-core/internal/pkg/clock"
	"car-rental-core/internal/pkg/config"
	"car-rental-core/internal/usecase/shared"
)

type GetOrCreateOfferRequest struct {
	CarID        int64
	CustomerID   int64
	InsuranceID  int64
	StartDate    time.Time
	EndDate      time.Time
	HasGPS       bool
	HasChildSeat bool
}

func (r GetOrCreateOfferRequest) criteria(dates offer.DateRange) offer.Criteria {
	return offer.Criteria{
		CarID:        r.CarID,
		CustomerID:   r.CustomerID,
		InsuranceID:  r.InsuranceID,
		Dates:        dates,
		HasGPS:       r.HasGPS,
		HasChildSeat: r.HasChildSeat,
	}
}

type OfferResult struct {
	Offer    *offer.Offer
	Existing bool
}

type OfferCommands interface {
	GetOrCreateOffer(ctx context.Context, req GetOrCreateOfferRequest) (*OfferResult, error)
	// PurgeStale deletes offers that were never confirmed and are older than
	// the configured expiration.
	PurgeStale(ctx context.Context) (int64, error)
}

type offerUseCaseImpl struct {
	uow          shared.UnitOfWork
	availability shared.AvailabilityChecker
	calculator   pricing.Calculator
	clock        clock.Clock
	expiration   time.Duration
}

func NewOfferUseCase(
	uow shared.UnitOfWork,
	availability shared.AvailabilityChecker,
	calculator pricing.Calculator,
	clk clock.Clock,
	cfg config.Config,
) OfferCommands {
	return &offerUseCaseImpl{
		uow:          uow,
		availability: availability,
		calculator:   calculator,
		clock:        clk,
		expiration:   cfg.Janitor.OfferExpiration,
	}
}

func (uc *offerUseCaseImpl) GetOrCreateOffer(ctx context.Context, req GetOrCreateOfferRequest) (*OfferResult, error) {
	dates, dateErr := offer.NewDateRange(req.StartDate, req.EndDate)
	if dateErr == nil {
		existing, err := findOffer(ctx, uc.uow.CommandReads(), req.criteria(dates))
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &OfferResult{Offer: existing, Existing: true}, nil
		}
	}

	return shared.RunInTx(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (*OfferResult, error) {
		car, err := tx.Reads().CarByID(ctx, req.CarID)
		if err != nil {
			return nil, notFoundAs(err, ErrCarNotFound)
		}
		if dateErr != nil {
			return nil, dateErr
		}
		if !car.IsRentable() {
			return nil, resource.ErrCarUnavailable
		}

		conflict, err := uc.availability.HasConflict(ctx, tx, car.ID(), dates, true)
		if err != nil {
			return nil, err
		}
		// The car lock is held now, so a concurrent identical request has
		// either committed its offer or not started.
		criteria := req.criteria(dates)
		existing, err := findOffer(ctx, tx.Reads(), criteria)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &OfferResult{Offer: existing, Existing: true}, nil
		}
		if conflict {
			return nil, shared.ErrDatesUnavailable
		}

		customer, err := tx.Reads().CustomerByID(ctx, req.CustomerID)
		if err != nil {
			return nil, notFoundAs(err, ErrCustomerNotFound)
		}
		insurance, err := tx.Reads().InsuranceByID(ctx, req.InsuranceID)
		if err != nil {
			return nil, notFoundAs(err, ErrInsuranceNotFound)
		}

		total, err := uc.calculator.CalculatePrice(pricing.Quote{
			BaseRate:      car.BaseRate(),
			InsuranceRate: insurance.Price,
			DrivingYears:  customer.DrivingLicenseYears,
			Start:         dates.Start(),
			End:           dates.End(),
			HasGPS:        req.HasGPS,
			HasChildSeat:  req.HasChildSeat,
		})
		if err != nil {
			return nil, err
		}

		o, err := offer.NewOffer(criteria, total, uc.clock.Now())
		if err != nil {
			return nil, err
		}
		id, err := tx.Offers().Create(ctx, o)
		if err != nil {
			return nil, err
		}
		return &OfferResult{Offer: o.WithID(id)}, nil
	})
}

func (uc *offerUseCaseImpl) PurgeStale(ctx context.Context) (int64, error) {
	cutoff := uc.clock.Now().Add(-uc.expiration)
	deleted, err := shared.RunInTx(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (int64, error) {
		return tx.Offers().DeleteUnconfirmedBefore(ctx, cutoff)
	})
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		slog.Info("purged stale offers", "count", deleted, "cutoff", cutoff)
	}
	return deleted, nil
}

// findOffer returns nil without error when no offer matches.
func findOffer(ctx context.Context, reads shared.CommandReads, c offer.Criteria) (*offer.Offer, error) {
	o, err := reads.OfferByCriteria(ctx, c)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return o, nil
}
