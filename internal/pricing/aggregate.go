package pricing

// SubscriptionTerms describes the billing period and monthly rate
// reported by the billing collaborator. Dates are YYYY-MM-DD strings.
type SubscriptionTerms struct {
	StartDate     string
	EndDate       string
	PricePerMonth float64
}

// Result is the outcome of a single price computation.
type Result struct {
	TotalDamageCost       float64 `json:"total_damage_cost"`
	TotalSubscriptionCost float64 `json:"total_subscription_cost"`
	TotalPrice            float64 `json:"total_price"`
}

// Aggregate combines the damage cost and the subscription cost into a
// single result. Pure: no I/O, no hidden state.
func Aggregate(policy Policy, report DamageReport, terms SubscriptionTerms) (Result, error) {
	damage, err := policy.CostOf(report)
	if err != nil {
		return Result{}, err
	}
	months, err := MonthsBetween(terms.StartDate, terms.EndDate)
	if err != nil {
		return Result{}, err
	}
	subscription := float64(months) * terms.PricePerMonth
	return Result{
		TotalDamageCost:       damage,
		TotalSubscriptionCost: subscription,
		TotalPrice:            damage + subscription,
	}, nil
}
