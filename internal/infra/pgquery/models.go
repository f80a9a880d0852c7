package pgquery

import (
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	tableCars       = "cars"
	tableCustomers  = "customers"
	tableInsurances = "insurances"
	tableOffers     = "offers"
	tableRentals    = "rentals"
	tableReturns    = "returns"
)

type Cars struct {
	ID       int64
	Brand    string
	Model    string
	Year     int32
	BaseRate pgtype.Numeric
	Status   string
}

type Customers struct {
	ID                  int64
	Email               string
	FirstName           string
	LastName            string
	DrivingLicenseYears int32
}

type Insurances struct {
	ID    int64
	Name  string
	Price pgtype.Numeric
}

type Offers struct {
	ID           int64
	CarID        int64
	CustomerID   int64
	InsuranceID  int64
	StartDate    pgtype.Date
	EndDate      pgtype.Date
	TotalPrice   pgtype.Numeric
	HasGps       bool
	HasChildSeat bool
	CreatedAt    pgtype.Timestamptz
}

type Rentals struct {
	ID        int64
	OfferID   int64
	StatusID  int16
	CreatedAt pgtype.Timestamptz
}

type Returns struct {
	ID                   int64
	RentalID             int64
	ReturnDate           pgtype.Timestamptz
	ConditionDescription pgtype.Text
	PhotoUrl             pgtype.Text
	ProcessedBy          int64
	CreatedAt            pgtype.Timestamptz
}
