package memstore

import (
	"car-rental-core/internal/domain/resource"
	"car-rental-core/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

// Reference data is owned elsewhere; these helpers load it directly.

func (s *Store) PutCar(car *resource.Car) {
	s.mutate(func(st *state) { st.cars[car.ID()] = car })
}

func (s *Store) PutCustomer(c shared.CustomerSnapshot) {
	s.mutate(func(st *state) { st.customers[c.ID] = c })
}

func (s *Store) PutInsurance(ins shared.InsuranceSnapshot) {
	s.mutate(func(st *state) { st.insurances[ins.ID] = ins })
}

func (s *Store) mutate(fn func(st *state)) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	work := s.snapshot().clone()
	fn(work)
	s.mu.Lock()
	s.committed = work
	s.mu.Unlock()
}

// SeedDemo loads a small fleet for local runs of the memory backend.
func SeedDemo(s *Store) {
	cars := []struct {
		id          int64
		brand       string
		model       string
		year        int
		rate        int64
		unavailable bool
	}{
		{1, "Toyota", "Corolla", 2022, 100, false},
		{2, "Volkswagen", "Golf", 2021, 120, false},
		{3, "BMW", "X5", 2023, 250, false},
		{4, "Fiat", "Panda", 2015, 60, true},
	}
	for _, c := range cars {
		status := resource.StatusAvailable
		if c.unavailable {
			status = resource.StatusUnavailable
		}
		car, err := resource.NewCar(c.id, c.brand, c.model, c.year, decimal.NewFromInt(c.rate), status)
		if err != nil {
			panic(err)
		}
		s.PutCar(car)
	}

	s.PutCustomer(shared.CustomerSnapshot{ID: 1, Email: "anna.nowak@example.com", FirstName: "Anna", LastName: "Nowak", DrivingLicenseYears: 5})
	s.PutCustomer(shared.CustomerSnapshot{ID: 2, Email: "jan.kowalski@example.com", FirstName: "Jan", LastName: "Kowalski", DrivingLicenseYears: 0})

	s.PutInsurance(shared.InsuranceSnapshot{ID: 1, Name: "Basic", Price: decimal.NewFromInt(20)})
	s.PutInsurance(shared.InsuranceSnapshot{ID: 2, Name: "Full", Price: decimal.NewFromInt(45)})
}
