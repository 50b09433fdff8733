package calculation

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/noah-isme/backend-fleet/internal/common"
	"github.com/noah-isme/backend-fleet/internal/obs"
	"github.com/noah-isme/backend-fleet/internal/pricing"
	"github.com/noah-isme/backend-fleet/internal/upstream"
)

// DamageSource supplies per-category vehicle condition reports.
type DamageSource interface {
	Report(ctx context.Context, carID int64) (pricing.DamageReport, error)
}

// BillingSource supplies subscription terms for a customer.
type BillingSource interface {
	Terms(ctx context.Context, customerID int64) (pricing.SubscriptionTerms, error)
}

// NewRecord is the input for a ledger append.
type NewRecord struct {
	CustomerID int64
	CarID      int64
	StartDate  string
	EndDate    string
	Result     pricing.Result
}

// Record is a persisted calculation, never mutated after the append.
type Record struct {
	ID                    int64     `json:"id"`
	CustomerID            int64     `json:"customer_id"`
	CarID                 int64     `json:"car_id"`
	StartDate             string    `json:"start_date"`
	EndDate               string    `json:"end_date"`
	TotalDamageCost       float64   `json:"total_damage_cost"`
	TotalSubscriptionCost float64   `json:"total_subscription_cost"`
	TotalPrice            float64   `json:"total_price"`
	CreatedAt             time.Time `json:"timestamp"`
}

// Ledger is the durable, append-only record of computations.
type Ledger interface {
	Append(ctx context.Context, rec NewRecord) (Record, error)
	SumTotalPrice(ctx context.Context) (float64, error)
	ListAll(ctx context.Context) ([]Record, error)
}

// Service orchestrates a price computation: fetch both collaborator
// inputs, aggregate, append to the ledger, return the result. The
// append is the last step so no failure leaves a partial record.
type Service struct {
	Damage  DamageSource
	Billing BillingSource
	Ledger  Ledger
	Policy  pricing.Policy
}

// ComputeAndRecord performs one computation for a customer/vehicle pair.
func (s *Service) ComputeAndRecord(ctx context.Context, customerID, carID int64) (pricing.Result, error) {
	report, err := s.Damage.Report(ctx, carID)
	if err != nil {
		return pricing.Result{}, s.observe(asAppError(err))
	}
	terms, err := s.Billing.Terms(ctx, customerID)
	if err != nil {
		return pricing.Result{}, s.observe(asAppError(err))
	}

	result, err := pricing.Aggregate(s.Policy, report, terms)
	if err != nil {
		return pricing.Result{}, s.observe(asAppError(err))
	}

	if _, err := s.Ledger.Append(ctx, NewRecord{
		CustomerID: customerID,
		CarID:      carID,
		StartDate:  terms.StartDate,
		EndDate:    terms.EndDate,
		Result:     result,
	}); err != nil {
		return pricing.Result{}, s.observe(asAppError(err))
	}

	if obs.ComputationsTotal != nil {
		obs.ComputationsTotal.WithLabelValues("ok").Inc()
	}
	if obs.LedgerAppendsTotal != nil {
		obs.LedgerAppendsTotal.Inc()
	}
	return result, nil
}

// TotalRevenue returns the sum of total_price across all records, zero
// when the ledger is empty.
func (s *Service) TotalRevenue(ctx context.Context) (float64, error) {
	total, err := s.Ledger.SumTotalPrice(ctx)
	if err != nil {
		return 0, asAppError(err)
	}
	return total, nil
}

// ListAll returns every persisted calculation in insertion order.
func (s *Service) ListAll(ctx context.Context) ([]Record, error) {
	records, err := s.Ledger.ListAll(ctx)
	if err != nil {
		return nil, asAppError(err)
	}
	return records, nil
}

func (s *Service) observe(err *common.AppError) *common.AppError {
	if obs.ComputationsTotal != nil {
		label := "error"
		switch err.Code {
		case common.CodeUpstream:
			label = "upstream_error"
		case common.CodeStorage:
			label = "storage_error"
		case common.CodeDateFormat, common.CodeDateRange, common.CodeUnknownCondition:
			label = "validation_error"
		}
		obs.ComputationsTotal.WithLabelValues(label).Inc()
	}
	return err
}

// asAppError maps domain failures onto the API error taxonomy.
func asAppError(err error) *common.AppError {
	var appErr *common.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var upErr *upstream.Error
	if errors.As(err, &upErr) {
		return common.NewAppError(common.CodeUpstream, upErr.Error(), http.StatusInternalServerError, err)
	}

	var formatErr *pricing.DateFormatError
	if errors.As(err, &formatErr) {
		return common.NewAppError(common.CodeDateFormat, formatErr.Error(), http.StatusUnprocessableEntity, err)
	}
	var rangeErr *pricing.DateRangeError
	if errors.As(err, &rangeErr) {
		return common.NewAppError(common.CodeDateRange, rangeErr.Error(), http.StatusUnprocessableEntity, err)
	}
	var unknownErr *pricing.UnknownConditionError
	if errors.As(err, &unknownErr) {
		return common.NewAppError(common.CodeUnknownCondition, unknownErr.Error(), http.StatusUnprocessableEntity, err)
	}

	var storeErr *StorageError
	if errors.As(err, &storeErr) {
		return common.NewAppError(common.CodeStorage, "ledger unavailable", http.StatusInternalServerError, err)
	}

	return common.NewAppError(common.CodeInternal, "internal error", http.StatusInternalServerError, err)
}
