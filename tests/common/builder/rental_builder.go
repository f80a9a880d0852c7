//go:build unit || e2e

package builder

import (
	"time"

	"car-rental-core/internal/domain/rental"
	reqdto "car-rental-core/internal/handler/dto/request"
	"car-rental-core/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type RentalBuilder struct {
	ID         int64
	OfferID    int64
	CustomerID int64
	CarID      int64
	Status     rental.Status
	Start      time.Time
	End        time.Time
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
}

func NewRentalBuilder() *RentalBuilder {
	return &RentalBuilder{
		ID:         11,
		OfferID:    7,
		CustomerID: 1,
		CarID:      1,
		Status:     rental.StatusConfirmed,
		Start:      time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		End:        time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
		TotalPrice: decimal.RequireFromString("280.00"),
		CreatedAt:  time.Date(2025, time.March, 2, 10, 0, 0, 0, time.UTC),
	}
}

func (b *RentalBuilder) With(mutate func(*RentalBuilder)) *RentalBuilder {
	mutate(b)
	return b
}

func (b *RentalBuilder) BuildDomain() *rental.Rental {
	return rental.ReconstructRental(b.ID, b.OfferID, b.Status, b.CreatedAt)
}

func (b *RentalBuilder) BuildView() *queries.RentalView {
	return &queries.RentalView{
		ID:         b.ID,
		OfferID:    b.OfferID,
		Status:     b.Status.String(),
		CarID:      b.CarID,
		CarName:    "Toyota Corolla",
		CustomerID: b.CustomerID,
		StartDate:  b.Start.Format("2006-01-02"),
		EndDate:    b.End.Format("2006-01-02"),
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
	}
}

type ReturnBuilder struct {
	ID                   int64
	RentalID             int64
	ReturnDate           time.Time
	ConditionDescription string
	PhotoURL             string
	ProcessedBy          int64
	CreatedAt            time.Time
}

func NewReturnBuilder() *ReturnBuilder {
	return &ReturnBuilder{
		ID:                   3,
		RentalID:             11,
		ReturnDate:           time.Date(2025, time.March, 12, 17, 30, 0, 0, time.UTC),
		ConditionDescription: "Small scratch on the rear bumper",
		PhotoURL:             "https://photos.example.com/returns/3.jpg",
		ProcessedBy:          42,
		CreatedAt:            time.Date(2025, time.March, 12, 18, 0, 0, 0, time.UTC),
	}
}

func (b *ReturnBuilder) With(mutate func(*ReturnBuilder)) *ReturnBuilder {
	mutate(b)
	return b
}

func (b *ReturnBuilder) BuildDomain() *rental.Return {
	return rental.ReconstructReturn(b.ID, b.RentalID, b.ReturnDate, b.ConditionDescription, b.PhotoURL, b.ProcessedBy, b.CreatedAt)
}

func (b *ReturnBuilder) BuildView() *queries.ReturnView {
	return &queries.ReturnView{
		ID:                   b.ID,
		RentalID:             b.RentalID,
		ReturnDate:           b.ReturnDate,
		ConditionDescription: b.ConditionDescription,
		PhotoURL:             b.PhotoURL,
		ProcessedBy:          b.ProcessedBy,
		CreatedAt:            b.CreatedAt,
	}
}

func (b *ReturnBuilder) BuildRequestDTO() reqdto.AcceptReturnRequest {
	return reqdto.AcceptReturnRequest{
		ReturnDate:           b.ReturnDate,
		ConditionDescription: b.ConditionDescription,
		PhotoURL:             b.PhotoURL,
	}
}
