package pricing

import "testing"

func TestAggregateSumsDamageAndSubscription(t *testing.T) {
	policy := Policy{Costs: map[string]float64{"major": 500, "none": 0}}
	report := DamageReport{
		"engine_damage": "major",
		"tire_damage":   "none",
	}
	terms := SubscriptionTerms{StartDate: "2024-01-01", EndDate: "2024-04-01", PricePerMonth: 200}

	result, err := Aggregate(policy, report, terms)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if result.TotalDamageCost != 500 {
		t.Fatalf("expected damage cost 500, got %v", result.TotalDamageCost)
	}
	if result.TotalSubscriptionCost != 600 {
		t.Fatalf("expected subscription cost 600, got %v", result.TotalSubscriptionCost)
	}
	if result.TotalPrice != 1100 {
		t.Fatalf("expected total 1100, got %v", result.TotalPrice)
	}
}

func TestAggregateTotalInvariant(t *testing.T) {
	policy := DefaultPolicy()
	cases := []struct {
		report DamageReport
		terms  SubscriptionTerms
	}{
		{DamageReport{}, SubscriptionTerms{StartDate: "2024-01-01", EndDate: "2024-01-15", PricePerMonth: 0}},
		{DamageReport{"glass_damage": "shattered"}, SubscriptionTerms{StartDate: "2024-01-01", EndDate: "2025-01-01", PricePerMonth: 149.5}},
		{DamageReport{"engine_damage": "minor", "light_damage": "moderate"}, SubscriptionTerms{StartDate: "2023-06-15", EndDate: "2024-02-02", PricePerMonth: 325}},
	}
	for _, tc := range cases {
		result, err := Aggregate(policy, tc.report, tc.terms)
		if err != nil {
			t.Fatalf("aggregate: %v", err)
		}
		if result.TotalPrice != result.TotalDamageCost+result.TotalSubscriptionCost {
			t.Fatalf("invariant broken: %v != %v + %v", result.TotalPrice, result.TotalDamageCost, result.TotalSubscriptionCost)
		}
	}
}

func TestAggregateZeroZero(t *testing.T) {
	result, err := Aggregate(DefaultPolicy(), DamageReport{}, SubscriptionTerms{StartDate: "2024-03-01", EndDate: "2024-03-01", PricePerMonth: 500})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if result.TotalPrice != 0 || result.TotalDamageCost != 0 || result.TotalSubscriptionCost != 0 {
		t.Fatalf("expected all-zero result, got %+v", result)
	}
}

func TestAggregatePropagatesPeriodErrors(t *testing.T) {
	_, err := Aggregate(DefaultPolicy(), DamageReport{}, SubscriptionTerms{StartDate: "2024-04-01", EndDate: "2024-01-01", PricePerMonth: 100})
	if err == nil {
		t.Fatal("expected range error")
	}
}
