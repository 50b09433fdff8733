package pricing

import "fmt"

// DamageReport maps a damage category to its reported condition code.
// The vehicle identifier field is stripped at the collaborator boundary
// and never appears here.
type DamageReport map[string]string

// ConditionNone marks an undamaged category and always costs zero.
const ConditionNone = "none"

// UnknownConditionError reports a condition code missing from the cost table.
type UnknownConditionError struct {
	Category  string
	Condition string
}

func (e *UnknownConditionError) Error() string {
	return fmt.Sprintf("unknown condition %q for category %q", e.Condition, e.Category)
}

// Policy maps condition codes to fixed repair costs.
type Policy struct {
	Costs map[string]float64
	// AllowUnknown skips condition codes missing from the table instead
	// of rejecting the report. Off by default: silently zero-costing
	// unrecognised codes undercounts when the upstream schema drifts.
	AllowUnknown bool
}

// DefaultPolicy returns the fixed condition cost table.
func DefaultPolicy() Policy {
	return Policy{
		Costs: map[string]float64{
			ConditionNone: 0,
			"minor":       1000,
			"moderate":    2500,
			"major":       5000,
			"cracked":     1200,
			"shattered":   4000,
		},
	}
}

// CostOf sums the fixed cost of every reported condition. Conditions of
// "none" contribute zero. An unknown condition code fails the whole
// report unless AllowUnknown is set.
func (p Policy) CostOf(report DamageReport) (float64, error) {
	var total float64
	for category, condition := range report {
		cost, known := p.Costs[condition]
		if !known {
			if p.AllowUnknown {
				continue
			}
			return 0, &UnknownConditionError{Category: category, Condition: condition}
		}
		total += cost
	}
	return total, nil
}
