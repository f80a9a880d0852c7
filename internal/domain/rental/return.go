package rental

import (
	"strings"
	"time"

	"car-rental-core/internal/pkg/errs"
)

const MaxConditionDescriptionLength = 2000

var (
	ErrMissingReturnDate   = errs.Define("return date is required", errs.ErrValidation)
	ErrMissingProcessor    = errs.Define("return must name the processing employee", errs.ErrValidation)
	ErrDescriptionTooLong  = errs.Define("condition description is too long", errs.ErrValidation)
	ErrReturnWithoutRental = errs.Define("return requires a rental", errs.ErrValidation)
)

// Return records how a rental ended. It is written once and never updated.
type Return struct {
	id                   int64
	rentalID             int64
	returnDate           time.Time
	conditionDescription string
	photoURL             string
	processedBy          int64
	createdAt            time.Time
}

func NewReturn(rentalID int64, returnDate time.Time, description, photoURL string, processedBy int64, now time.Time) (*Return, error) {
	if rentalID <= 0 {
		return nil, ErrReturnWithoutRental
	}
	if returnDate.IsZero() {
		return nil, ErrMissingReturnDate
	}
	if processedBy <= 0 {
		return nil, ErrMissingProcessor
	}
	description = strings.TrimSpace(description)
	if len(description) > MaxConditionDescriptionLength {
		return nil, ErrDescriptionTooLong
	}
	return &Return{
		rentalID:             rentalID,
		returnDate:           returnDate.UTC(),
		conditionDescription: description,
		photoURL:             strings.TrimSpace(photoURL),
		processedBy:          processedBy,
		createdAt:            now.UTC(),
	}, nil
}

func ReconstructReturn(id, rentalID int64, returnDate time.Time, description, photoURL string, processedBy int64, createdAt time.Time) *Return {
	return &Return{
		id:                   id,
		rentalID:             rentalID,
		returnDate:           returnDate,
		conditionDescription: description,
		photoURL:             photoURL,
		processedBy:          processedBy,
		createdAt:            createdAt,
	}
}

func (r *Return) WithID(id int64) *Return {
	cp := *r
	cp.id = id
	return &cp
}

func (r *Return) ID() int64                    { return r.id }
func (r *Return) RentalID() int64              { return r.rentalID }
func (r *Return) ReturnDate() time.Time        { return r.returnDate }
func (r *Return) ConditionDescription() string { return r.conditionDescription }
func (r *Return) PhotoURL() string             { return r.photoURL }
func (r *Return) ProcessedBy() int64           { return r.processedBy }
func (r *Return) CreatedAt() time.Time         { return r.createdAt }
