// Package memstore is an in-process implementation of shared.UnitOfWork used
// for development and tests. Write transactions are serialised and work on a
// private copy that replaces the committed state only on success.
package memstore

import (
	"context"
	"maps"
	"sync"

	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/domain/rental"
	"car-rental-core/internal/domain/resource"
	"car-rental-core/internal/usecase/shared"
)

type state struct {
	cars       map[int64]*resource.Car
	customers  map[int64]shared.CustomerSnapshot
	insurances map[int64]shared.InsuranceSnapshot
	offers     map[int64]*offer.Offer
	rentals    map[int64]*rental.Rental
	returns    map[int64]*rental.Return

	nextOfferID  int64
	nextRentalID int64
	nextReturnID int64
}

func newState() *state {
	return &state{
		cars:       make(map[int64]*resource.Car),
		customers:  make(map[int64]shared.CustomerSnapshot),
		insurances: make(map[int64]shared.InsuranceSnapshot),
		offers:     make(map[int64]*offer.Offer),
		rentals:    make(map[int64]*rental.Rental),
		returns:    make(map[int64]*rental.Return),
	}
}

// clone copies the maps. Stored values are never mutated in place, so the
// copy may share them.
func (s *state) clone() *state {
	cp := *s
	cp.cars = maps.Clone(s.cars)
	cp.customers = maps.Clone(s.customers)
	cp.insurances = maps.Clone(s.insurances)
	cp.offers = maps.Clone(s.offers)
	cp.rentals = maps.Clone(s.rentals)
	cp.returns = maps.Clone(s.returns)
	return &cp
}

type Store struct {
	writeMu   sync.Mutex
	mu        sync.RWMutex
	committed *state
}

func NewStore() *Store {
	return &Store{committed: newState()}
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.committed
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	work := s.snapshot().clone()
	if err := fn(ctx, &memTx{st: work}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.committed = work
	s.mu.Unlock()
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, &reads{st: s.snapshot()})
}

// CommandReads reads the latest committed state on every call.
func (s *Store) CommandReads() shared.CommandReads {
	return &liveReads{store: s}
}

// memTx implements shared.Tx over a working copy.
type memTx struct {
	st *state
}

func (t *memTx) Offers() shared.OfferRepository   { return &offerRepo{st: t.st} }
func (t *memTx) Rentals() shared.RentalRepository { return &rentalRepo{st: t.st} }
func (t *memTx) Returns() shared.ReturnRepository { return &returnRepo{st: t.st} }
func (t *memTx) Reads() shared.CommandReads       { return &reads{st: t.st} }

// Locks is a no-op: Within already holds the store-wide write lock.
func (t *memTx) Locks() shared.ResourceLocker { return noopLocker{} }

type noopLocker struct{}

func (noopLocker) LockCar(ctx context.Context, _ int64) error { return ctx.Err() }
