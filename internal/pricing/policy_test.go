package pricing

import (
	"errors"
	"testing"
)

func TestCostOfSumsKnownConditions(t *testing.T) {
	policy := DefaultPolicy()
	report := DamageReport{
		"engine_damage": "major",
		"glass_damage":  "cracked",
		"tire_damage":   "none",
	}
	cost, err := policy.CostOf(report)
	if err != nil {
		t.Fatalf("cost of: %v", err)
	}
	if cost != 6200 {
		t.Fatalf("expected 6200, got %v", cost)
	}
}

func TestCostOfAllNoneIsZero(t *testing.T) {
	policy := DefaultPolicy()
	report := DamageReport{
		"engine_damage":   "none",
		"tire_damage":     "none",
		"bodywork_damage": "none",
	}
	cost, err := policy.CostOf(report)
	if err != nil {
		t.Fatalf("cost of: %v", err)
	}
	if cost != 0 {
		t.Fatalf("expected 0, got %v", cost)
	}
}

func TestCostOfEmptyReportIsZero(t *testing.T) {
	cost, err := DefaultPolicy().CostOf(DamageReport{})
	if err != nil {
		t.Fatalf("cost of: %v", err)
	}
	if cost != 0 {
		t.Fatalf("expected 0, got %v", cost)
	}
}

func TestCostOfRejectsUnknownCondition(t *testing.T) {
	policy := DefaultPolicy()
	report := DamageReport{"engine_damage": "obliterated"}
	_, err := policy.CostOf(report)
	var unknown *UnknownConditionError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownConditionError, got %v", err)
	}
	if unknown.Condition != "obliterated" || unknown.Category != "engine_damage" {
		t.Fatalf("unexpected error detail: %+v", unknown)
	}
}

func TestCostOfPermissiveModeSkipsUnknown(t *testing.T) {
	policy := DefaultPolicy()
	policy.AllowUnknown = true
	report := DamageReport{
		"engine_damage": "obliterated",
		"glass_damage":  "shattered",
	}
	cost, err := policy.CostOf(report)
	if err != nil {
		t.Fatalf("cost of: %v", err)
	}
	if cost != 4000 {
		t.Fatalf("expected 4000, got %v", cost)
	}
}
