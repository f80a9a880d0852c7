package shared

import (
	"github.com/shopspring/decimal"
)

// Write-side snapshots of records owned by other bounded contexts.

type CustomerSnapshot struct {
	ID                  int64
	Email               string
	FirstName           string
	LastName            string
	DrivingLicenseYears int
}

func (c CustomerSnapshot) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}

type InsuranceSnapshot struct {
	ID    int64
	Name  string
	Price decimal.Decimal
}
