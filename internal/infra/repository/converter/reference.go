package converter

import (
	"car-rental-core/internal/domain/resource"
	"car-rental-core/internal/infra/pgquery"
	"car-rental-core/internal/pkg/errs"
	"car-rental-core/internal/pkg/pgconv"
	"car-rental-core/internal/usecase/shared"
)

func CarFromRow(row pgquery.Cars) (*resource.Car, error) {
	rate, err := pgconv.DecimalFromNumeric(row.BaseRate)
	if err != nil {
		return nil, errs.Wrapf(err, "car %d base_rate", row.ID)
	}
	return resource.NewCar(row.ID, row.Brand, row.Model, int(row.Year), rate, resource.Status(row.Status))
}

func CustomerFromRow(row pgquery.Customers) *shared.CustomerSnapshot {
	return &shared.CustomerSnapshot{
		ID:                  row.ID,
		Email:               row.Email,
		FirstName:           row.FirstName,
		LastName:            row.LastName,
		DrivingLicenseYears: int(row.DrivingLicenseYears),
	}
}

func InsuranceFromRow(row pgquery.Insurances) (*shared.InsuranceSnapshot, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, errs.Wrapf(err, "insurance %d price", row.ID)
	}
	return &shared.InsuranceSnapshot{ID: row.ID, Name: row.Name, Price: price}, nil
}
