package calculation

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StorageError wraps a ledger read or write fault. The caller does not
// retry; it surfaces at the orchestration boundary.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("ledger %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Store is the pgx-backed revenue ledger over calculation_requests.
// Appends rely on the bigserial id for strictly increasing, distinct
// ids under concurrent requests; reads are single statements and see a
// consistent snapshot.
type Store struct {
	Pool *pgxpool.Pool
}

// Append durably writes one calculation record and returns it with the
// assigned id and creation timestamp.
func (s *Store) Append(ctx context.Context, rec NewRecord) (Record, error) {
	row := s.Pool.QueryRow(ctx, `
		INSERT INTO calculation_requests (
			customer_id, car_id, start_date, end_date,
			total_damage_cost, total_subscription_cost, total_price
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		rec.CustomerID, rec.CarID, rec.StartDate, rec.EndDate,
		rec.Result.TotalDamageCost, rec.Result.TotalSubscriptionCost, rec.Result.TotalPrice,
	)
	stored := Record{
		CustomerID:            rec.CustomerID,
		CarID:                 rec.CarID,
		StartDate:             rec.StartDate,
		EndDate:               rec.EndDate,
		TotalDamageCost:       rec.Result.TotalDamageCost,
		TotalSubscriptionCost: rec.Result.TotalSubscriptionCost,
		TotalPrice:            rec.Result.TotalPrice,
	}
	if err := row.Scan(&stored.ID, &stored.CreatedAt); err != nil {
		return Record{}, &StorageError{Op: "append", Err: err}
	}
	return stored, nil
}

// SumTotalPrice returns the aggregate revenue, zero for an empty ledger.
func (s *Store) SumTotalPrice(ctx context.Context) (float64, error) {
	var total float64
	err := s.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_price), 0) FROM calculation_requests`,
	).Scan(&total)
	if err != nil {
		return 0, &StorageError{Op: "sum", Err: err}
	}
	return total, nil
}

// ListAll returns every record in insertion order.
func (s *Store) ListAll(ctx context.Context) ([]Record, error) {
	rows, err := s.Pool.Query(ctx, `
		SELECT id, customer_id, car_id, start_date, end_date,
		       total_damage_cost, total_subscription_cost, total_price, created_at
		FROM calculation_requests
		ORDER BY id`)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(
			&rec.ID, &rec.CustomerID, &rec.CarID, &rec.StartDate, &rec.EndDate,
			&rec.TotalDamageCost, &rec.TotalSubscriptionCost, &rec.TotalPrice, &rec.CreatedAt,
		); err != nil {
			return nil, &StorageError{Op: "list", Err: err}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	return records, nil
}

var _ Ledger = (*Store)(nil)
