//go:build unit || e2e

package builder

import (
	"car-rental-core/internal/domain/resource"
	"car-rental-core/internal/infra/memstore"
	"car-rental-core/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// Fleet is the reference data most rental tests start from: an available car
// at 100/day, a parked car, an experienced and a novice customer, and one
// insurance at 20/day.
type Fleet struct {
	Cars       []*resource.Car
	Customers  []shared.CustomerSnapshot
	Insurances []shared.InsuranceSnapshot
}

const (
	AvailableCarID     int64 = 1
	UnavailableCarID   int64 = 2
	ExperiencedDriver  int64 = 1
	NoviceDriver       int64 = 2
	BasicInsuranceID   int64 = 1
	ExperiencedDrivers       = 5
)

func NewFleet() *Fleet {
	available, _ := resource.NewCar(AvailableCarID, "Toyota", "Corolla", 2022, decimal.NewFromInt(100), resource.StatusAvailable)
	parked, _ := resource.NewCar(UnavailableCarID, "Fiat", "Panda", 2015, decimal.NewFromInt(60), resource.StatusUnavailable)
	return &Fleet{
		Cars: []*resource.Car{available, parked},
		Customers: []shared.CustomerSnapshot{
			{ID: ExperiencedDriver, Email: "anna@example.com", FirstName: "Anna", LastName: "Nowak", DrivingLicenseYears: ExperiencedDrivers},
			{ID: NoviceDriver, Email: "jan@example.com", FirstName: "Jan", LastName: "Kowalski", DrivingLicenseYears: 0},
		},
		Insurances: []shared.InsuranceSnapshot{
			{ID: BasicInsuranceID, Name: "Basic", Price: decimal.NewFromInt(20)},
		},
	}
}

func (f *Fleet) With(mutate func(*Fleet)) *Fleet {
	mutate(f)
	return f
}

func (f *Fleet) Store() *memstore.Store {
	s := memstore.NewStore()
	for _, c := range f.Cars {
		s.PutCar(c)
	}
	for _, c := range f.Customers {
		s.PutCustomer(c)
	}
	for _, i := range f.Insurances {
		s.PutInsurance(i)
	}
	return s
}
