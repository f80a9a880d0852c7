package converter

import (
	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/infra/pgquery"
	"car-rental-core/internal/pkg/errs"
	"car-rental-core/internal/pkg/pgconv"
)

func OfferToCreateParams(o *offer.Offer) pgquery.CreateOfferParams {
	c := o.Criteria()
	return pgquery.CreateOfferParams{
		CarID:        c.CarID,
		CustomerID:   c.CustomerID,
		InsuranceID:  c.InsuranceID,
		StartDate:    pgconv.DateToPgtype(c.Dates.Start()),
		EndDate:      pgconv.DateToPgtype(c.Dates.End()),
		TotalPrice:   pgconv.DecimalToNumeric(o.TotalPrice()),
		HasGps:       c.HasGPS,
		HasChildSeat: c.HasChildSeat,
		CreatedAt:    pgconv.TimeToPgtype(o.CreatedAt()),
	}
}

func CriteriaToFindParams(c offer.Criteria) pgquery.FindOfferByCriteriaParams {
	return pgquery.FindOfferByCriteriaParams{
		CarID:        c.CarID,
		CustomerID:   c.CustomerID,
		InsuranceID:  c.InsuranceID,
		StartDate:    pgconv.DateToPgtype(c.Dates.Start()),
		EndDate:      pgconv.DateToPgtype(c.Dates.End()),
		HasGps:       c.HasGPS,
		HasChildSeat: c.HasChildSeat,
	}
}

func OfferFromRow(row pgquery.Offers) (*offer.Offer, error) {
	total, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, errs.Wrapf(err, "offer %d total_price", row.ID)
	}
	criteria := offer.Criteria{
		CarID:        row.CarID,
		CustomerID:   row.CustomerID,
		InsuranceID:  row.InsuranceID,
		Dates:        offer.ReconstructDateRange(pgconv.DateFromPgtype(row.StartDate), pgconv.DateFromPgtype(row.EndDate)),
		HasGPS:       row.HasGps,
		HasChildSeat: row.HasChildSeat,
	}
	return offer.ReconstructOffer(row.ID, criteria, total, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
