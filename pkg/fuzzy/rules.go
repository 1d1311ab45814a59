package fuzzy

import "math"

// Category is a consequent label. Time priority uses Wait/Implement, spend
// priority uses Low/Regular/High.
type Category int

const (
	CategoryWait Category = iota
	CategoryImplement
	CategoryLow
	CategoryRegular
	CategoryHigh
)

// String method for Category enum
func (c Category) String() string {
	switch c {
	case CategoryWait:
		return "Wait"
	case CategoryImplement:
		return "Implement"
	case CategoryLow:
		return "Low"
	case CategoryRegular:
		return "Regular"
	case CategoryHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// RuleInputs carries the fuzzified degrees of every antecedent variable for
// one evaluation. Punctuality is left zero in the new-supplier variants,
// whose rules never reference it.
type RuleInputs struct {
	DueTime      Degrees
	DeliveryTime Degrees
	Punctuality  Degrees
	Spend        Degrees
}

// Rule is one entry of a rule base: a numbered antecedent expression
// (min = AND, max = OR over membership degrees) with a single consequent.
// Rule numbers are stable so firing strengths stay auditable.
type Rule struct {
	Number     int
	Consequent Category
	antecedent func(in RuleInputs) float64
}

// Strength evaluates the rule's antecedent against fuzzified inputs.
func (r Rule) Strength(in RuleInputs) float64 {
	return r.antecedent(in)
}

// timeExistingRules is the 18-rule base for time priority with a supplier
// that has delivery and punctuality history.
var timeExistingRules = []Rule{
	{1, CategoryWait, func(in RuleInputs) float64 {
		return min(in.DueTime.Low, in.DeliveryTime.Low, in.Punctuality.Low)
	}},
	{2, CategoryWait, func(in RuleInputs) float64 {
		return min(in.DueTime.Low, in.DeliveryTime.Low, in.Punctuality.Medium, in.Spend.High)
	}},
	{3, CategoryWait, func(in RuleInputs) float64 {
		return min(in.DueTime.Low, max(in.DeliveryTime.Medium, in.DeliveryTime.High),
			max(in.Punctuality.Low, in.Punctuality.Medium))
	}},
	{4, CategoryImplement, func(in RuleInputs) float64 {
		return min(in.DueTime.Low, in.DeliveryTime.Medium, in.Punctuality.High)
	}},
	{5, CategoryImplement, func(in RuleInputs) float64 {
		return min(in.DueTime.Low, in.DeliveryTime.Low, in.Punctuality.Medium,
			max(in.Spend.Low, in.Spend.Medium))
	}},
	{6, CategoryImplement, func(in RuleInputs) float64 {
		return min(in.DueTime.Low, in.DeliveryTime.Low, in.Punctuality.High)
	}},
	{7, CategoryWait, func(in RuleInputs) float64 {
		return min(in.DueTime.Medium, max(in.DeliveryTime.Low, in.DeliveryTime.Medium),
			in.Punctuality.Low)
	}},
	{8, CategoryImplement, func(in RuleInputs) float64 {
		return min(in.DueTime.Medium, max(in.DeliveryTime.Low, in.DeliveryTime.Medium),
			max(in.Punctuality.Medium, in.Punctuality.High),
			max(in.Spend.Low, in.Spend.Medium))
	}},
	{9, CategoryWait, func(in RuleInputs) float64 {
		return min(in.DueTime.Medium, max(in.DeliveryTime.Low, in.DeliveryTime.Medium),
			max(in.Punctuality.Medium, in.Punctuality.High), in.Spend.High)
	}},
	{10, CategoryWait, func(in RuleInputs) float64 {
		return min(in.DueTime.Medium, in.DeliveryTime.High)
	}},
	{11, CategoryImplement, func(in RuleInputs) float64 {
		return min(in.DueTime.High, in.DeliveryTime.Low, in.Spend.Low)
	}},
	{12, CategoryImplement, func(in RuleInputs) float64 {
		return min(in.DueTime.High, in.DeliveryTime.Low, in.Punctuality.High, in.Spend.Medium)
	}},
	{13, CategoryWait, func(in RuleInputs) float64 {
		return min(in.DueTime.High, in.DeliveryTime.Low,
			max(in.Punctuality.Low, in.Punctuality.Medium),
			max(in.Spend.Medium, in.Spend.High))
	}},
	{14, CategoryWait, func(in RuleInputs) float64 {
		return min(in.DueTime.High, in.DeliveryTime.Low, in.Punctuality.High, in.Spend.High)
	}},
	{15, CategoryWait, func(in RuleInputs) float64 {
		return min(in.DueTime.High, max(in.DeliveryTime.Medium, in.DeliveryTime.High),
			in.Punctuality.Low, in.Spend.Medium)
	}},
	{16, CategoryWait, func(in RuleInputs) float64 {
		return min(in.DueTime.High, max(in.DeliveryTime.Medium, in.DeliveryTime.High),
			in.Spend.High)
	}},
	{17, CategoryImplement, func(in RuleInputs) float64 {
		return min(in.DueTime.High, max(in.DeliveryTime.Medium, in.DeliveryTime.High),
			in.Punctuality.Low, in.Spend.Low)
	}},
	{18, CategoryImplement, func(in RuleInputs) float64 {
		return min(in.DueTime.High, max(in.DeliveryTime.Medium, in.DeliveryTime.High),
			max(in.Punctuality.Medium, in.Punctuality.High),
			max(in.Spend.Low, in.Spend.Medium))
	}},
}

// timeNewRules is the reduced 6-rule base for time priority with a brand
// new supplier: no punctuality input, delivery time proxied by the quoted
// lead time.
var timeNewRules = []Rule{
	{1, CategoryWait, func(in RuleInputs) float64 {
		return in.DeliveryTime.High
	}},
	{2, CategoryWait, func(in RuleInputs) float64 {
		return min(in.DueTime.Low, max(in.DeliveryTime.Low, in.DeliveryTime.Medium),
			in.Spend.High)
	}},
	{3, CategoryImplement, func(in RuleInputs) float64 {
		return min(max(in.DueTime.Low, in.DueTime.Medium),
			max(in.DeliveryTime.Low, in.DeliveryTime.Medium),
			max(in.Spend.Low, in.Spend.Medium))
	}},
	{4, CategoryWait, func(in RuleInputs) float64 {
		return min(in.DueTime.Medium, in.Spend.High)
	}},
	{5, CategoryImplement, func(in RuleInputs) float64 {
		return min(in.DueTime.High, max(in.DeliveryTime.Low, in.DeliveryTime.Medium),
			in.Spend.Low)
	}},
	{6, CategoryWait, func(in RuleInputs) float64 {
		return min(in.DueTime.High, max(in.DeliveryTime.Medium, in.DeliveryTime.High),
			max(in.Spend.Medium, in.Spend.High))
	}},
}

// spendExistingRules is the 11-rule base for spend priority with a supplier
// that has delivery and punctuality history. Price levels ride on the spend
// variable.
var spendExistingRules = []Rule{
	{1, CategoryRegular, func(in RuleInputs) float64 {
		return min(in.DeliveryTime.Low, max(in.Spend.Low, in.Spend.Medium), in.Punctuality.Low)
	}},
	{2, CategoryHigh, func(in RuleInputs) float64 {
		return min(in.DeliveryTime.Low, max(in.Spend.Low, in.Spend.Medium),
			max(in.Punctuality.Medium, in.Punctuality.High))
	}},
	{3, CategoryLow, func(in RuleInputs) float64 {
		return min(in.DeliveryTime.Low, in.Spend.High, in.Punctuality.Low)
	}},
	{4, CategoryRegular, func(in RuleInputs) float64 {
		return min(in.DeliveryTime.Low, in.Spend.High,
			max(in.Punctuality.Medium, in.Punctuality.High))
	}},
	{5, CategoryRegular, func(in RuleInputs) float64 {
		return min(in.DeliveryTime.Medium, in.Spend.Low, in.Punctuality.Low)
	}},
	{6, CategoryRegular, func(in RuleInputs) float64 {
		return min(max(in.DeliveryTime.Medium, in.DeliveryTime.High),
			max(in.Spend.Low, in.Spend.Medium), in.Punctuality.Medium)
	}},
	{7, CategoryHigh, func(in RuleInputs) float64 {
		return min(max(in.DeliveryTime.Medium, in.DeliveryTime.High),
			max(in.Spend.Low, in.Spend.Medium), in.Punctuality.High)
	}},
	{8, CategoryLow, func(in RuleInputs) float64 {
		return min(in.DeliveryTime.Medium, max(in.Spend.Medium, in.Spend.High),
			in.Punctuality.Low)
	}},
	{9, CategoryLow, func(in RuleInputs) float64 {
		return min(max(in.DeliveryTime.Medium, in.DeliveryTime.High), in.Spend.High,
			in.Punctuality.Medium)
	}},
	{10, CategoryRegular, func(in RuleInputs) float64 {
		return min(max(in.DeliveryTime.Medium, in.DeliveryTime.High), in.Spend.High,
			in.Punctuality.High)
	}},
	{11, CategoryLow, func(in RuleInputs) float64 {
		return min(in.DeliveryTime.High, in.Punctuality.Low)
	}},
}

// spendNewRules is the reduced 4-rule base for spend priority with a brand
// new supplier.
var spendNewRules = []Rule{
	{1, CategoryHigh, func(in RuleInputs) float64 {
		return min(max(in.Spend.Low, in.Spend.Medium), in.DeliveryTime.Low)
	}},
	{2, CategoryRegular, func(in RuleInputs) float64 {
		return min(max(in.Spend.Low, in.Spend.Medium), in.DeliveryTime.Medium)
	}},
	{3, CategoryLow, func(in RuleInputs) float64 {
		return min(max(in.Spend.Low, in.Spend.Medium), in.DeliveryTime.High)
	}},
	{4, CategoryLow, func(in RuleInputs) float64 {
		return in.Spend.High
	}},
}

// ruleBase selects the rule set and the full strength-vector width for one
// evaluation. Reduced variants report NaN in the slots of rules they omit.
func ruleBase(priority Priority, newSupplier bool) (rules []Rule, totalRules int) {
	switch priority {
	case PriorityTime:
		totalRules = len(timeExistingRules)
		if newSupplier {
			return timeNewRules, totalRules
		}
		return timeExistingRules, totalRules
	case PrioritySpend:
		totalRules = len(spendExistingRules)
		if newSupplier {
			return spendNewRules, totalRules
		}
		return spendExistingRules, totalRules
	}
	return nil, 0
}

// fireRules evaluates every rule, returning the per-rule strengths padded
// with NaN to the full vector width and the maximum strength per consequent
// category.
func fireRules(rules []Rule, totalRules int, in RuleInputs) ([]float64, map[Category]float64) {
	strengths := make([]float64, totalRules)
	for i := range strengths {
		strengths[i] = math.NaN()
	}

	byCategory := make(map[Category]float64)
	for _, r := range rules {
		s := r.Strength(in)
		strengths[r.Number-1] = s
		if s > byCategory[r.Consequent] {
			byCategory[r.Consequent] = s
		}
	}
	return strengths, byCategory
}
