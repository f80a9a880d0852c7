package response

import (
	"time"

	"car-rental-core/internal/usecase/queries"
)

type OfferResponse struct {
	ID            int64     `json:"id"`
	CarID         int64     `json:"carId"`
	CarName       string    `json:"carName"`
	CustomerID    int64     `json:"customerId"`
	InsuranceID   int64     `json:"insuranceId"`
	InsuranceName string    `json:"insuranceName"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	TotalPrice    string    `json:"totalPrice"`
	HasGPS        bool      `json:"hasGps"`
	HasChildSeat  bool      `json:"hasChildSeat"`
	CreatedAt     time.Time `json:"createdAt"`
	Existing      bool      `json:"existing"`
}

func FromOfferView(v *queries.OfferView) (*OfferResponse, error) {
	var res OfferResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
