package commands

import (
	"context"
	"time"

	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/domain/rental"
	"car-rental-core/internal/infra"
	"car-rental-core/internal/pkg/clock"
	"car-rental-core/internal/usecase/shared"
)

type ProcessReturnRequest struct {
	RentalID             int64
	ReturnDate           time.Time
	ConditionDescription string
	PhotoURL             string
	ProcessedBy          int64
}

type RentalCommands interface {
	Confirm(ctx context.Context, offerID int64) (*rental.Rental, error)
	// InitReturn moves a confirmed rental to pending return. A non-zero
	// customerID must own the rental.
	InitReturn(ctx context.Context, rentalID, customerID int64) error
	ProcessReturn(ctx context.Context, req ProcessReturnRequest) (*rental.Return, error)
}

type rentalUseCaseImpl struct {
	uow          shared.UnitOfWork
	availability shared.AvailabilityChecker
	email        shared.EmailSender
	clock        clock.Clock
}

func NewRentalUseCase(
	uow shared.UnitOfWork,
	availability shared.AvailabilityChecker,
	email shared.EmailSender,
	clk clock.Clock,
) RentalCommands {
	return &rentalUseCaseImpl{
		uow:          uow,
		availability: availability,
		email:        email,
		clock:        clk,
	}
}

func (uc *rentalUseCaseImpl) Confirm(ctx context.Context, offerID int64) (*rental.Rental, error) {
	return shared.RunInTx(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (*rental.Rental, error) {
		o, err := tx.Reads().OfferByID(ctx, offerID)
		if err != nil {
			return nil, notFoundAs(err, ErrOfferNotFound)
		}

		if err := ensureNotRented(ctx, tx.Reads(), o.ID()); err != nil {
			return nil, err
		}

		conflict, err := uc.availability.HasConflict(ctx, tx, o.CarID(), o.Dates(), true)
		if err != nil {
			return nil, err
		}
		// a concurrent confirmation of this offer may have committed while we waited for the lock
		if err := ensureNotRented(ctx, tx.Reads(), o.ID()); err != nil {
			return nil, err
		}
		if conflict {
			return nil, shared.ErrDatesUnavailable
		}

		r, err := rental.NewRental(o.ID(), uc.clock.Now())
		if err != nil {
			return nil, err
		}
		id, err := tx.Rentals().Create(ctx, r)
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrRentalAlreadyExists
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			// the offer was purged after we read it
			return nil, ErrOfferNotFound
		case err != nil:
			return nil, err
		}
		return r.WithID(id), nil
	})
}

func ensureNotRented(ctx context.Context, reads shared.CommandReads, offerID int64) error {
	_, err := reads.RentalByOfferID(ctx, offerID)
	switch {
	case err == nil:
		return ErrRentalAlreadyExists
	case infra.IsKind(err, infra.KindNotFound):
		return nil
	default:
		return err
	}
}

func (uc *rentalUseCaseImpl) InitReturn(ctx context.Context, rentalID, customerID int64) error {
	o, err := shared.RunInTx(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (*offer.Offer, error) {
		r, o, err := loadRental(ctx, tx.Reads(), rentalID)
		if err != nil {
			return nil, err
		}
		if customerID != 0 && o.CustomerID() != customerID {
			return nil, ErrNotRentalOwner
		}

		from := r.Status()
		if err := r.InitReturn(); err != nil {
			return nil, err
		}
		if err := tx.Rentals().UpdateStatus(ctx, r.ID(), from, r.Status()); err != nil {
			return nil, notFoundAs(err, rental.ErrNotConfirmed)
		}
		return o, nil
	})
	if err != nil {
		return err
	}

	notifyAfterCommit(ctx, uc.email, uc.uow.CommandReads(), o, shared.EmailReturnInitiated, map[string]any{
		"rental_id": rentalID,
	})
	return nil
}

func (uc *rentalUseCaseImpl) ProcessReturn(ctx context.Context, req ProcessReturnRequest) (*rental.Return, error) {
	var rentedOffer *offer.Offer
	ret, err := shared.RunInTx(ctx, uc.uow, func(ctx context.Context, tx shared.Tx) (*rental.Return, error) {
		r, o, err := loadRental(ctx, tx.Reads(), req.RentalID)
		if err != nil {
			return nil, err
		}

		from := r.Status()
		if err := r.Complete(); err != nil {
			return nil, err
		}
		ret, err := rental.NewReturn(r.ID(), req.ReturnDate, req.ConditionDescription, req.PhotoURL, req.ProcessedBy, uc.clock.Now())
		if err != nil {
			return nil, err
		}

		if err := tx.Rentals().UpdateStatus(ctx, r.ID(), from, r.Status()); err != nil {
			return nil, notFoundAs(err, rental.ErrNotPendingReturn)
		}
		id, err := tx.Returns().Create(ctx, ret)
		if err != nil {
			return nil, err
		}
		rentedOffer = o
		return ret.WithID(id), nil
	})
	if err != nil {
		return nil, err
	}

	notifyAfterCommit(ctx, uc.email, uc.uow.CommandReads(), rentedOffer, shared.EmailReturnInvoice, map[string]any{
		"rental_id":             ret.RentalID(),
		"return_date":           ret.ReturnDate().Format(offer.DateLayout),
		"condition_description": ret.ConditionDescription(),
		"photo_url":             ret.PhotoURL(),
	})
	return ret, nil
}

func loadRental(ctx context.Context, reads shared.CommandReads, rentalID int64) (*rental.Rental, *offer.Offer, error) {
	r, err := reads.RentalByID(ctx, rentalID)
	if err != nil {
		return nil, nil, notFoundAs(err, ErrRentalNotFound)
	}
	o, err := reads.OfferByID(ctx, r.OfferID())
	if err != nil {
		return nil, nil, notFoundAs(err, ErrOfferNotFound)
	}
	return r, o, nil
}
