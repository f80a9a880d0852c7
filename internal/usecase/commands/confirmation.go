package commands

import (
	"context"
	"time"

	"car-rental-core/internal/domain/rental"
	"car-rental-core/internal/infra"
	"car-rental-core/internal/pkg/confirmtoken"
	"car-rental-core/internal/pkg/errs"
	"car-rental-core/internal/usecase/shared"
)

type SendConfirmationResult struct {
	OfferID   int64
	ExpiresAt time.Time
}

type ConfirmationCommands interface {
	// SendConfirmation e-mails the customer a signed link for one of their offers.
	SendConfirmation(ctx context.Context, offerID, customerID int64) (*SendConfirmationResult, error)
	// ConfirmWithToken turns the offer named by a token into a rental. A
	// non-zero customerID must match the token.
	ConfirmWithToken(ctx context.Context, token string, customerID int64) (*rental.Rental, error)
	ValidateToken(ctx context.Context, token string) (confirmtoken.Claims, error)
}

type confirmationUseCaseImpl struct {
	uow     shared.UnitOfWork
	tokens  TokenService
	rentals RentalCommands
	email   shared.EmailSender
}

func NewConfirmationUseCase(
	uow shared.UnitOfWork,
	tokens TokenService,
	rentals RentalCommands,
	email shared.EmailSender,
) ConfirmationCommands {
	return &confirmationUseCaseImpl{
		uow:     uow,
		tokens:  tokens,
		rentals: rentals,
		email:   email,
	}
}

func (uc *confirmationUseCaseImpl) SendConfirmation(ctx context.Context, offerID, customerID int64) (*SendConfirmationResult, error) {
	reads := uc.uow.CommandReads()
	o, err := reads.OfferByID(ctx, offerID)
	if err != nil {
		return nil, notFoundAs(err, ErrOfferNotFound)
	}
	if o.CustomerID() != customerID {
		return nil, ErrOfferNotFound
	}
	_, err = reads.RentalByOfferID(ctx, o.ID())
	switch {
	case err == nil:
		return nil, ErrRentalAlreadyExists
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, err
	}

	token, err := uc.tokens.Issue(o.ID(), o.CustomerID(), 0)
	if err != nil {
		return nil, err
	}
	claims, err := uc.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	to, data, err := offerMail(ctx, reads, o)
	if err != nil {
		return nil, err
	}
	data["confirmation_link"] = uc.tokens.Link(token)
	data["expires_at"] = claims.ExpiresAt.Format(confirmtoken.ExpiryLayout)
	if err := uc.email.Send(ctx, to, shared.EmailRentalConfirmation, data); err != nil {
		return nil, errs.Wrapf(err, "send confirmation for offer %d", o.ID())
	}

	return &SendConfirmationResult{OfferID: o.ID(), ExpiresAt: claims.ExpiresAt}, nil
}

func (uc *confirmationUseCaseImpl) ConfirmWithToken(ctx context.Context, token string, customerID int64) (*rental.Rental, error) {
	claims, err := uc.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	if customerID != 0 && claims.CustomerID != customerID {
		return nil, ErrTokenCustomerMismatch
	}

	r, err := uc.rentals.Confirm(ctx, claims.OfferID)
	if err != nil {
		return nil, err
	}

	reads := uc.uow.CommandReads()
	o, err := reads.OfferByID(ctx, r.OfferID())
	if err == nil {
		notifyAfterCommit(ctx, uc.email, reads, o, shared.EmailRentalSuccess, map[string]any{
			"rental_id": r.ID(),
		})
	}
	return r, nil
}

func (uc *confirmationUseCaseImpl) ValidateToken(_ context.Context, token string) (confirmtoken.Claims, error) {
	return uc.tokens.Parse(token)
}
