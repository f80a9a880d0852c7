//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"car-rental-core/internal/domain/rental"
	"car-rental-core/internal/infra/memstore"
	"car-rental-core/internal/pkg/errs"
	"car-rental-core/internal/usecase/queries"
	"car-rental-core/internal/usecase/shared"
	"car-rental-core/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seededAt = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

var (
	customer = queries.Actor{ID: builder.ExperiencedDriver, Role: queries.RoleCustomer}
	stranger = queries.Actor{ID: builder.NoviceDriver, Role: queries.RoleCustomer}
	employee = queries.Actor{ID: 42, Role: queries.RoleEmployee}
)

// seedRental stores an offer built by b and, when status is non-zero, a rental
// for it moved to status.
func seedRental(t *testing.T, store *memstore.Store, b *builder.OfferBuilder, status rental.Status) (offerID, rentalID int64) {
	t.Helper()
	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		offerID, err = tx.Offers().Create(ctx, b.BuildDomain())
		if err != nil || status == 0 {
			return err
		}
		r, err := rental.NewRental(offerID, seededAt)
		if err != nil {
			return err
		}
		if rentalID, err = tx.Rentals().Create(ctx, r); err != nil {
			return err
		}
		if status >= rental.StatusPendingReturn {
			if err := tx.Rentals().UpdateStatus(ctx, rentalID, rental.StatusConfirmed, rental.StatusPendingReturn); err != nil {
				return err
			}
		}
		if status == rental.StatusCompleted {
			return tx.Rentals().UpdateStatus(ctx, rentalID, rental.StatusPendingReturn, rental.StatusCompleted)
		}
		return nil
	})
	require.NoError(t, err)
	return offerID, rentalID
}

func onDay(day int) *builder.OfferBuilder {
	return builder.NewOfferBuilder().With(func(b *builder.OfferBuilder) {
		b.Start = time.Date(2025, time.April, day, 0, 0, 0, 0, time.UTC)
	}).Days(2)
}

func TestOfferQueries_GetByID(t *testing.T) {
	store := builder.NewFleet().Store()
	q := queries.NewOfferQueries(store)
	offerID, _ := seedRental(t, store, builder.NewOfferBuilder().Days(3).With(func(b *builder.OfferBuilder) {
		b.HasGPS = true
		b.TotalPrice = decimal.RequireFromString("450.00")
	}), 0)

	t.Run("owner sees resolved names", func(t *testing.T) {
		got, err := q.GetByID(context.Background(), customer, offerID)
		require.NoError(t, err)

		want := &queries.OfferView{
			ID:            offerID,
			CarID:         builder.AvailableCarID,
			CarName:       "Toyota Corolla",
			CustomerID:    builder.ExperiencedDriver,
			InsuranceID:   builder.BasicInsuranceID,
			InsuranceName: "Basic",
			StartDate:     "2025-03-10",
			EndDate:       "2025-03-12",
			TotalPrice:    decimal.RequireFromString("450.00"),
			HasGPS:        true,
			CreatedAt:     seededAt,
		}
		if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })); diff != "" {
			t.Errorf("view mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("employee sees any offer", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), employee, offerID)
		assert.NoError(t, err)
	})

	t.Run("other customer gets not found", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), stranger, offerID)
		assert.True(t, errs.Is(err, queries.ErrOfferNotFound))
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := q.GetByID(context.Background(), customer, 999)
		assert.True(t, errs.Is(err, queries.ErrOfferNotFound))
	})
}

func TestRentalQueries_GetByID(t *testing.T) {
	store := builder.NewFleet().Store()
	q := queries.NewRentalQueries(store)
	offerID, rentalID := seedRental(t, store, builder.NewOfferBuilder().Days(3), rental.StatusPendingReturn)

	got, err := q.GetByID(context.Background(), customer, rentalID)
	require.NoError(t, err)
	assert.Equal(t, offerID, got.OfferID)
	assert.Equal(t, "pending_return", got.Status)
	assert.Equal(t, "Toyota Corolla", got.CarName)
	assert.Equal(t, "2025-03-12", got.EndDate)

	_, err = q.GetByID(context.Background(), stranger, rentalID)
	assert.True(t, errs.Is(err, queries.ErrRentalNotFound))

	_, err = q.GetByID(context.Background(), employee, 999)
	assert.True(t, errs.Is(err, queries.ErrRentalNotFound))
}

func TestRentalQueries_List(t *testing.T) {
	store := builder.NewFleet().Store()
	q := queries.NewRentalQueries(store)

	_, first := seedRental(t, store, onDay(1), rental.StatusConfirmed)
	_, second := seedRental(t, store, onDay(5), rental.StatusPendingReturn)
	_, third := seedRental(t, store, onDay(9), rental.StatusPendingReturn)
	_, novice := seedRental(t, store, onDay(13).With(func(b *builder.OfferBuilder) { b.CustomerID = builder.NoviceDriver }), rental.StatusCompleted)
	seedRental(t, store, onDay(20), 0)

	ids := func(views []*queries.RentalView) []int64 {
		out := make([]int64, 0, len(views))
		for _, v := range views {
			out = append(out, v.ID)
		}
		return out
	}

	testCases := []struct {
		name string
		run  func() ([]*queries.RentalView, *queries.Cursor, error)
		want []int64
	}{
		{
			name: "customer, any status",
			run: func() ([]*queries.RentalView, *queries.Cursor, error) {
				return q.ListByCustomer(context.Background(), builder.ExperiencedDriver, 0, nil, 0)
			},
			want: []int64{first, second, third},
		},
		{
			name: "customer, pending return only",
			run: func() ([]*queries.RentalView, *queries.Cursor, error) {
				return q.ListByCustomer(context.Background(), builder.ExperiencedDriver, rental.StatusPendingReturn, nil, 0)
			},
			want: []int64{second, third},
		},
		{
			name: "worklist of pending returns",
			run: func() ([]*queries.RentalView, *queries.Cursor, error) {
				return q.ListByStatus(context.Background(), rental.StatusPendingReturn, nil, 0)
			},
			want: []int64{second, third},
		},
		{
			name: "completed across customers",
			run: func() ([]*queries.RentalView, *queries.Cursor, error) {
				return q.ListByStatus(context.Background(), rental.StatusCompleted, nil, 0)
			},
			want: []int64{novice},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			views, next, err := tc.run()
			require.NoError(t, err)
			assert.Nil(t, next)
			assert.Equal(t, tc.want, ids(views))
		})
	}

	t.Run("pages with a cursor", func(t *testing.T) {
		page, next, err := q.ListByCustomer(context.Background(), builder.ExperiencedDriver, 0, nil, 2)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, []int64{first, second}, ids(page))

		page, next, err = q.ListByCustomer(context.Background(), builder.ExperiencedDriver, 0, next, 2)
		require.NoError(t, err)
		assert.Nil(t, next)
		assert.Equal(t, []int64{third}, ids(page))
	})

	t.Run("bad cursor", func(t *testing.T) {
		_, _, err := q.ListByStatus(context.Background(), rental.StatusPendingReturn, &queries.Cursor{After: "%%%"}, 0)
		assert.True(t, errs.Is(err, queries.ErrInvalidCursor))
	})
}

func TestRentalQueries_LatestReturn(t *testing.T) {
	store := builder.NewFleet().Store()
	q := queries.NewRentalQueries(store)
	_, rentalID := seedRental(t, store, builder.NewOfferBuilder().Days(3), rental.StatusCompleted)
	_, pending := seedRental(t, store, onDay(5), rental.StatusPendingReturn)

	ret := builder.NewReturnBuilder().With(func(b *builder.ReturnBuilder) { b.RentalID = rentalID })
	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		d := ret.BuildDomain()
		r, err := rental.NewReturn(d.RentalID(), d.ReturnDate(), d.ConditionDescription(), d.PhotoURL(), d.ProcessedBy(), ret.CreatedAt)
		if err != nil {
			return err
		}
		_, err = tx.Returns().Create(ctx, r)
		return err
	})
	require.NoError(t, err)

	got, err := q.LatestReturn(context.Background(), rentalID)
	require.NoError(t, err)
	want := ret.BuildView()
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(queries.ReturnView{}, "ID")); diff != "" {
		t.Errorf("return mismatch (-want +got):\n%s", diff)
	}

	_, err = q.LatestReturn(context.Background(), pending)
	assert.True(t, errs.Is(err, queries.ErrReturnNotFound))

	_, err = q.LatestReturn(context.Background(), 999)
	assert.True(t, errs.Is(err, queries.ErrRentalNotFound))
}

func TestCursor(t *testing.T) {
	id, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(57))
	require.NoError(t, err)
	assert.Equal(t, int64(57), id)

	id, err = queries.DecodeAfterCursor("")
	require.NoError(t, err)
	assert.Zero(t, id)

	for _, bad := range []string{"not-base64!", "djI6NQ==", "djE6LTE="} {
		_, err := queries.DecodeAfterCursor(bad)
		assert.True(t, errs.Is(err, queries.ErrInvalidCursor), bad)
	}

	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(10_000))
	assert.Equal(t, 5, queries.ValidateLimit(5))
}
