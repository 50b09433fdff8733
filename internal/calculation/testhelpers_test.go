package calculation_test

import (
	"context"
	"sync"

	"github.com/noah-isme/backend-fleet/internal/calculation"
	"github.com/noah-isme/backend-fleet/internal/pricing"
)

type fakeDamage struct {
	report pricing.DamageReport
	err    error
}

func (f fakeDamage) Report(context.Context, int64) (pricing.DamageReport, error) {
	return f.report, f.err
}

type fakeBilling struct {
	terms pricing.SubscriptionTerms
	err   error
}

func (f fakeBilling) Terms(context.Context, int64) (pricing.SubscriptionTerms, error) {
	return f.terms, f.err
}

// memLedger is an in-memory Ledger with the same id semantics as the
// store: distinct, strictly increasing ids under concurrent appends.
type memLedger struct {
	mu      sync.Mutex
	nextID  int64
	records []calculation.Record
	err     error
}

func (m *memLedger) Append(_ context.Context, rec calculation.NewRecord) (calculation.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return calculation.Record{}, m.err
	}
	m.nextID++
	stored := calculation.Record{
		ID:                    m.nextID,
		CustomerID:            rec.CustomerID,
		CarID:                 rec.CarID,
		StartDate:             rec.StartDate,
		EndDate:               rec.EndDate,
		TotalDamageCost:       rec.Result.TotalDamageCost,
		TotalSubscriptionCost: rec.Result.TotalSubscriptionCost,
		TotalPrice:            rec.Result.TotalPrice,
	}
	m.records = append(m.records, stored)
	return stored, nil
}

func (m *memLedger) SumTotalPrice(context.Context) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	var total float64
	for _, rec := range m.records {
		total += rec.TotalPrice
	}
	return total, nil
}

func (m *memLedger) ListAll(context.Context) ([]calculation.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]calculation.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}
