package commands

import (
	"time"

	"car-rental-core/internal/infra"
	"car-rental-core/internal/pkg/confirmtoken"
	"car-rental-core/internal/pkg/errs"
)

var (
	ErrCarNotFound           = errs.Define("car not found", errs.ErrNotFound)
	ErrCustomerNotFound      = errs.Define("customer not found", errs.ErrNotFound)
	ErrInsuranceNotFound     = errs.Define("insurance not found", errs.ErrNotFound)
	ErrOfferNotFound         = errs.Define("offer not found", errs.ErrNotFound)
	ErrRentalNotFound        = errs.Define("rental not found", errs.ErrNotFound)
	ErrRentalAlreadyExists   = errs.Define("rental already exists for this offer", errs.ErrConflict)
	ErrNotRentalOwner        = errs.Define("rental belongs to another customer", errs.ErrUnauthorized)
	ErrTokenCustomerMismatch = errs.Define("confirmation token was issued to another customer", errs.ErrUnauthorized)
)

// TokenService is the part of confirmtoken.Service the use cases need.
type TokenService interface {
	Issue(offerID, customerID int64, ttl time.Duration) (string, error)
	Parse(token string) (confirmtoken.Claims, error)
	Link(token string) string
}

// notFoundAs swaps a store NOT_FOUND for the given domain error.
func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
