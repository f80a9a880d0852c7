//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference rows inserted by SeedReferenceData. The ids line up with
// tests/common/builder.NewFleet.
const (
	AvailableCarID    int64 = 1
	UnavailableCarID  int64 = 2
	ExperiencedDriver int64 = 1
	NoviceDriver      int64 = 2
	BasicInsuranceID  int64 = 1
)

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO cars (id, brand, model, year, base_rate, status) VALUES
		    (1, 'Toyota', 'Corolla', 2022, 100.00, 'available'),
		    (2, 'Fiat', 'Panda', 2015, 60.00, 'unavailable')
		ON CONFLICT (id) DO NOTHING;

		INSERT INTO customers (id, email, first_name, last_name, driving_license_years) VALUES
		    (1, 'anna@example.com', 'Anna', 'Nowak', 5),
		    (2, 'jan@example.com', 'Jan', 'Kowalski', 0)
		ON CONFLICT (id) DO NOTHING;

		INSERT INTO insurances (id, name, price) VALUES
		    (1, 'Basic', 20.00)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

// CreateTestOffer inserts an offer directly, bypassing pricing.
func CreateTestOffer(t *testing.T, db DBLike, carID, customerID int64, start, end time.Time, createdAt time.Time) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO offers (car_id, customer_id, insurance_id, start_date, end_date, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, 100.00, $6)
		RETURNING id`,
		carID, customerID, BasicInsuranceID, start.Format("2006-01-02"), end.Format("2006-01-02"), createdAt,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, table string, where string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except lookups and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'rental_statuses')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
