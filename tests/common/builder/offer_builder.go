//go:build unit || e2e

package builder

import (
	"time"

	"car-rental-core/internal/domain/offer"
	reqdto "car-rental-core/internal/handler/dto/request"
	"car-rental-core/internal/usecase/commands"
	"car-rental-core/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type OfferBuilder struct {
	ID           int64
	CarID        int64
	CustomerID   int64
	InsuranceID  int64
	Start        time.Time
	End          time.Time
	HasGPS       bool
	HasChildSeat bool
	TotalPrice   decimal.Decimal
	CreatedAt    time.Time
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		ID:          7,
		CarID:       1,
		CustomerID:  1,
		InsuranceID: 1,
		Start:       time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		End:         time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		TotalPrice:  decimal.NewFromInt(140),
		CreatedAt:   time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

// Days sets an inclusive range of n days starting at Start.
func (b *OfferBuilder) Days(n int) *OfferBuilder {
	b.End = b.Start.AddDate(0, 0, n-1)
	return b
}

func (b *OfferBuilder) BuildCommand() commands.GetOrCreateOfferRequest {
	return commands.GetOrCreateOfferRequest{
		CarID:        b.CarID,
		CustomerID:   b.CustomerID,
		InsuranceID:  b.InsuranceID,
		StartDate:    b.Start,
		EndDate:      b.End,
		HasGPS:       b.HasGPS,
		HasChildSeat: b.HasChildSeat,
	}
}

func (b *OfferBuilder) BuildRequestDTO() reqdto.CreateOfferRequest {
	return reqdto.CreateOfferRequest{
		CarID:        b.CarID,
		InsuranceID:  b.InsuranceID,
		StartDate:    b.Start.Format(offer.DateLayout),
		EndDate:      b.End.Format(offer.DateLayout),
		HasGPS:       b.HasGPS,
		HasChildSeat: b.HasChildSeat,
	}
}

func (b *OfferBuilder) BuildDomain() *offer.Offer {
	dates, err := offer.NewDateRange(b.Start, b.End)
	if err != nil {
		panic(err)
	}
	o, err := offer.NewOffer(offer.Criteria{
		CarID:        b.CarID,
		CustomerID:   b.CustomerID,
		InsuranceID:  b.InsuranceID,
		Dates:        dates,
		HasGPS:       b.HasGPS,
		HasChildSeat: b.HasChildSeat,
	}, b.TotalPrice, b.CreatedAt)
	if err != nil {
		panic(err)
	}
	return o
}

// BuildPersisted returns the offer as loaded from a store, carrying ID.
func (b *OfferBuilder) BuildPersisted() *offer.Offer {
	return b.BuildDomain().WithID(b.ID)
}

func (b *OfferBuilder) BuildView() *queries.OfferView {
	return &queries.OfferView{
		ID:            b.ID,
		CarID:         b.CarID,
		CarName:       "Toyota Corolla",
		CustomerID:    b.CustomerID,
		InsuranceID:   b.InsuranceID,
		InsuranceName: "Basic",
		StartDate:     b.Start.Format(offer.DateLayout),
		EndDate:       b.End.Format(offer.DateLayout),
		TotalPrice:    b.TotalPrice,
		HasGPS:        b.HasGPS,
		HasChildSeat:  b.HasChildSeat,
		CreatedAt:     b.CreatedAt,
	}
}
