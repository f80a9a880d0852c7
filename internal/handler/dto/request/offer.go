package request

import (
	"time"

	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/pkg/errs"
	"car-rental-core/internal/usecase/commands"
)

var ErrInvalidDate = errs.Define("dates must use the YYYY-MM-DD format", errs.ErrValidation)

type CreateOfferRequest struct {
	CarID        int64  `json:"carId" binding:"required,gt=0"`
	InsuranceID  int64  `json:"insuranceId" binding:"required,gt=0"`
	StartDate    string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate      string `json:"endDate" binding:"required,datetime=2006-01-02"`
	HasGPS       bool   `json:"hasGps"`
	HasChildSeat bool   `json:"hasChildSeat"`
}

func (r CreateOfferRequest) ToCommand(customerID int64) (commands.GetOrCreateOfferRequest, error) {
	start, err := time.Parse(offer.DateLayout, r.StartDate)
	if err != nil {
		return commands.GetOrCreateOfferRequest{}, errs.Wrap(ErrInvalidDate, "startDate")
	}
	end, err := time.Parse(offer.DateLayout, r.EndDate)
	if err != nil {
		return commands.GetOrCreateOfferRequest{}, errs.Wrap(ErrInvalidDate, "endDate")
	}
	return commands.GetOrCreateOfferRequest{
		CarID:        r.CarID,
		CustomerID:   customerID,
		InsuranceID:  r.InsuranceID,
		StartDate:    start,
		EndDate:      end,
		HasGPS:       r.HasGPS,
		HasChildSeat: r.HasChildSeat,
	}, nil
}
