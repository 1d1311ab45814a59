package fuzzy

import (
	"math"
	"testing"
)

func TestRuleBases_Sizes(t *testing.T) {
	tests := []struct {
		name        string
		priority    Priority
		newSupplier bool
		wantRules   int
		wantTotal   int
	}{
		{name: "time_existing", priority: PriorityTime, wantRules: 18, wantTotal: 18},
		{name: "time_new", priority: PriorityTime, newSupplier: true, wantRules: 6, wantTotal: 18},
		{name: "spend_existing", priority: PrioritySpend, wantRules: 11, wantTotal: 11},
		{name: "spend_new", priority: PrioritySpend, newSupplier: true, wantRules: 4, wantTotal: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, total := ruleBase(tt.priority, tt.newSupplier)
			if len(rules) != tt.wantRules {
				t.Errorf("rule count = %d, want %d", len(rules), tt.wantRules)
			}
			if total != tt.wantTotal {
				t.Errorf("total slots = %d, want %d", total, tt.wantTotal)
			}
			for i, r := range rules {
				if r.Number != i+1 {
					t.Errorf("rule at index %d numbered %d, want %d", i, r.Number, i+1)
				}
			}
		})
	}
}

func TestRuleBases_ConsequentTags(t *testing.T) {
	wantTimeImplement := map[int]bool{4: true, 5: true, 6: true, 8: true, 11: true, 12: true, 17: true, 18: true}
	for _, r := range timeExistingRules {
		want := CategoryWait
		if wantTimeImplement[r.Number] {
			want = CategoryImplement
		}
		if r.Consequent != want {
			t.Errorf("time rule %d consequent = %v, want %v", r.Number, r.Consequent, want)
		}
	}

	wantSpend := map[int]Category{
		1: CategoryRegular, 2: CategoryHigh, 3: CategoryLow, 4: CategoryRegular,
		5: CategoryRegular, 6: CategoryRegular, 7: CategoryHigh, 8: CategoryLow,
		9: CategoryLow, 10: CategoryRegular, 11: CategoryLow,
	}
	for _, r := range spendExistingRules {
		if r.Consequent != wantSpend[r.Number] {
			t.Errorf("spend rule %d consequent = %v, want %v", r.Number, r.Consequent, wantSpend[r.Number])
		}
	}
}

func TestFireRules_PadsReducedVariantWithNaN(t *testing.T) {
	rules, total := ruleBase(PriorityTime, true)
	in := RuleInputs{
		DueTime:      Degrees{High: 1},
		DeliveryTime: Degrees{High: 1},
		Spend:        Degrees{Medium: 1},
	}

	strengths, byCategory := fireRules(rules, total, in)
	if len(strengths) != 18 {
		t.Fatalf("strength vector length = %d, want 18", len(strengths))
	}
	for i := 6; i < 18; i++ {
		if !math.IsNaN(strengths[i]) {
			t.Errorf("strength slot %d = %g, want NaN for omitted rule", i+1, strengths[i])
		}
	}
	// Rule 1 (delivery High) and rule 6 both fire fully.
	if strengths[0] != 1 {
		t.Errorf("rule 1 strength = %g, want 1", strengths[0])
	}
	if byCategory[CategoryWait] != 1 {
		t.Errorf("wait strength = %g, want 1", byCategory[CategoryWait])
	}
}

func TestTimeRules_KnownFirings(t *testing.T) {
	// Due time 75 days (Medium 0.5 / High 0.5), delivery at the mean
	// (Medium 1), punctuality 0.9 (High 1), spend at the mean (Medium 1).
	in := RuleInputs{
		DueTime:      Degrees{Medium: 0.5, High: 0.5},
		DeliveryTime: Degrees{Medium: 1},
		Punctuality:  Degrees{High: 1},
		Spend:        Degrees{Medium: 1},
	}

	strengths, byCategory := fireRules(timeExistingRules, 18, in)

	// Rule 8: due Medium AND delivery Low-or-Medium AND punctuality
	// Medium-or-High AND spend Low-or-Medium.
	if strengths[7] != 0.5 {
		t.Errorf("rule 8 strength = %g, want 0.5", strengths[7])
	}
	// Rule 18: the due-High counterpart.
	if strengths[17] != 0.5 {
		t.Errorf("rule 18 strength = %g, want 0.5", strengths[17])
	}
	if byCategory[CategoryImplement] != 0.5 {
		t.Errorf("implement strength = %g, want 0.5", byCategory[CategoryImplement])
	}
	if byCategory[CategoryWait] != 0 {
		t.Errorf("wait strength = %g, want 0", byCategory[CategoryWait])
	}
}

func TestTimeRules_ImplementMonotonicInDeliveryImprovement(t *testing.T) {
	base := RuleInputs{
		DueTime:     Degrees{Medium: 0.5, High: 0.5},
		Punctuality: Degrees{High: 1},
		Spend:       Degrees{Medium: 1},
	}

	atMean := base
	atMean.DeliveryTime = Degrees{Medium: 1}
	improved := base
	improved.DeliveryTime = Degrees{Low: 1}

	_, byCatMean := fireRules(timeExistingRules, 18, atMean)
	_, byCatImproved := fireRules(timeExistingRules, 18, improved)

	if byCatImproved[CategoryImplement] < byCatMean[CategoryImplement] {
		t.Errorf("implement strength dropped from %g to %g on a delivery improvement",
			byCatMean[CategoryImplement], byCatImproved[CategoryImplement])
	}
}

func TestSpendNewRules_HighPriceDominates(t *testing.T) {
	// Price entirely High, delivery entirely Good: rule 4 (price High =>
	// Low) fires at 1 while rule 1 (price Low-or-Medium AND delivery Good
	// => High) fires at 0.
	in := RuleInputs{
		Spend:        Degrees{High: 1},
		DeliveryTime: Degrees{Low: 1},
	}

	strengths, byCategory := fireRules(spendNewRules, 11, in)
	if strengths[3] != 1 {
		t.Errorf("rule 4 strength = %g, want 1", strengths[3])
	}
	if strengths[0] != 0 {
		t.Errorf("rule 1 strength = %g, want 0", strengths[0])
	}
	if byCategory[CategoryLow] != 1 || byCategory[CategoryHigh] != 0 {
		t.Errorf("category strengths Low=%g High=%g, want 1/0",
			byCategory[CategoryLow], byCategory[CategoryHigh])
	}
}
