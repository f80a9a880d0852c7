package pgquery

import (
	"context"

	"github.com/doug-martin/goqu/v9"
)

func (q *Queries) GetCar(ctx context.Context, db DBTX, id int64) (Cars, error) {
	var c Cars
	query, args, err := build(q.dialect.From(tableCars).Prepared(true).
		Select("id", "brand", "model", "year", "base_rate", "status").
		Where(goqu.C("id").Eq(id)))
	if err != nil {
		return c, err
	}
	err = db.QueryRow(ctx, query, args...).Scan(&c.ID, &c.Brand, &c.Model, &c.Year, &c.BaseRate, &c.Status)
	return c, err
}

func (q *Queries) GetCustomer(ctx context.Context, db DBTX, id int64) (Customers, error) {
	var c Customers
	query, args, err := build(q.dialect.From(tableCustomers).Prepared(true).
		Select("id", "email", "first_name", "last_name", "driving_license_years").
		Where(goqu.C("id").Eq(id)))
	if err != nil {
		return c, err
	}
	err = db.QueryRow(ctx, query, args...).Scan(&c.ID, &c.Email, &c.FirstName, &c.LastName, &c.DrivingLicenseYears)
	return c, err
}

func (q *Queries) GetInsurance(ctx context.Context, db DBTX, id int64) (Insurances, error) {
	var i Insurances
	query, args, err := build(q.dialect.From(tableInsurances).Prepared(true).
		Select("id", "name", "price").
		Where(goqu.C("id").Eq(id)))
	if err != nil {
		return i, err
	}
	err = db.QueryRow(ctx, query, args...).Scan(&i.ID, &i.Name, &i.Price)
	return i, err
}

// LockCar takes a transaction-scoped advisory lock keyed by the car id. It
// blocks until any other transaction holding it ends.
func (q *Queries) LockCar(ctx context.Context, db DBTX, carID int64) error {
	query, args, err := build(q.dialect.Select(goqu.Func("pg_advisory_xact_lock", carID)).Prepared(true))
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, query, args...)
	return err
}
