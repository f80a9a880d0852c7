package converter

import (
	"car-rental-core/internal/domain/rental"
	"car-rental-core/internal/infra/pgquery"
	"car-rental-core/internal/pkg/errs"
	"car-rental-core/internal/pkg/pgconv"
)

func RentalToCreateParams(r *rental.Rental) pgquery.CreateRentalParams {
	return pgquery.CreateRentalParams{
		OfferID:   r.OfferID(),
		StatusID:  int16(r.Status()),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func RentalFromRow(row pgquery.Rentals) (*rental.Rental, error) {
	status := rental.Status(row.StatusID)
	if !status.IsValid() {
		return nil, errs.Newf("rental %d has unknown status id %d", row.ID, row.StatusID)
	}
	return rental.ReconstructRental(row.ID, row.OfferID, status, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}

func ReturnToCreateParams(r *rental.Return) pgquery.CreateReturnParams {
	return pgquery.CreateReturnParams{
		RentalID:             r.RentalID(),
		ReturnDate:           pgconv.TimeToPgtype(r.ReturnDate()),
		ConditionDescription: pgconv.StringToPgtype(r.ConditionDescription()),
		PhotoUrl:             pgconv.StringToPgtype(r.PhotoURL()),
		ProcessedBy:          r.ProcessedBy(),
		CreatedAt:            pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ReturnFromRow(row pgquery.Returns) *rental.Return {
	return rental.ReconstructReturn(
		row.ID,
		row.RentalID,
		pgconv.TimeFromPgtype(row.ReturnDate),
		pgconv.StringFromPgtype(row.ConditionDescription),
		pgconv.StringFromPgtype(row.PhotoUrl),
		row.ProcessedBy,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
