package queries

import (
	"time"

	"car-rental-core/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	RoleCustomer = "customer"
	RoleEmployee = "employee"
)

var (
	ErrOfferNotFound  = errs.Define("offer not found", errs.ErrNotFound)
	ErrRentalNotFound = errs.Define("rental not found", errs.ErrNotFound)
	ErrReturnNotFound = errs.Define("return not found", errs.ErrNotFound)
)

// Actor is the authenticated caller. Customers only see their own records.
type Actor struct {
	ID   int64
	Role string
}

func (a Actor) CanSee(customerID int64) bool {
	return a.Role == RoleEmployee || a.ID == customerID
}

// OfferView represents a priced offer with display names resolved
type OfferView struct {
	ID            int64           `json:"id"`
	CarID         int64           `json:"car_id"`
	CarName       string          `json:"car_name"`
	CustomerID    int64           `json:"customer_id"`
	InsuranceID   int64           `json:"insurance_id"`
	InsuranceName string          `json:"insurance_name"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	HasGPS        bool            `json:"has_gps"`
	HasChildSeat  bool            `json:"has_child_seat"`
	CreatedAt     time.Time       `json:"created_at"`
}

// RentalView represents a rental joined with its offer
type RentalView struct {
	ID         int64           `json:"id"`
	OfferID    int64           `json:"offer_id"`
	Status     string          `json:"status"`
	CarID      int64           `json:"car_id"`
	CarName    string          `json:"car_name"`
	CustomerID int64           `json:"customer_id"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ReturnView struct {
	ID                   int64     `json:"id"`
	RentalID             int64     `json:"rental_id"`
	ReturnDate           time.Time `json:"return_date"`
	ConditionDescription string    `json:"condition_description"`
	PhotoURL             string    `json:"photo_url"`
	ProcessedBy          int64     `json:"processed_by"`
	CreatedAt            time.Time `json:"created_at"`
}
