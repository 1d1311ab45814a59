package fuzzy

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/npisim/sourcing/pkg/domain/entities"
)

// Priority selects the evaluation objective: time prioritizes
// implementation speed, spend prioritizes cost reduction. The two modes
// use structurally different rule bases and output categories.
type Priority int

const (
	PriorityTime Priority = iota
	PrioritySpend
)

// String method for Priority enum
func (p Priority) String() string {
	switch p {
	case PriorityTime:
		return "time"
	case PrioritySpend:
		return "spend"
	default:
		return "Unknown"
	}
}

// Valid reports whether the priority is one of the supported modes.
func (p Priority) Valid() bool {
	return p == PriorityTime || p == PrioritySpend
}

// ParsePriority parses a priority label from text
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "time":
		return PriorityTime, nil
	case "spend":
		return PrioritySpend, nil
	default:
		return PriorityTime, fmt.Errorf("invalid priority: %s (expected: time or spend)", s)
	}
}

// SpendScope controls which records feed the spend aggregate in spend
// priority: the supplier's full history (the historical behavior) or only
// the records of the project under evaluation.
type SpendScope int

const (
	SpendScopeSupplierGlobal SpendScope = iota
	SpendScopeProjectOnly
)

// String method for SpendScope enum
func (s SpendScope) String() string {
	switch s {
	case SpendScopeSupplierGlobal:
		return "supplier_global"
	case SpendScopeProjectOnly:
		return "project_only"
	default:
		return "Unknown"
	}
}

// Degrees holds the membership degree of one crisp value in each linguistic
// level of a variable.
type Degrees struct {
	Low    float64
	Medium float64
	High   float64
}

// Variable is a linguistic variable: three overlapping membership functions
// over one universe.
type Variable struct {
	Low    *MembershipFunc
	Medium *MembershipFunc
	High   *MembershipFunc
}

// DegreesAt fuzzifies a crisp value against all three levels.
func (v *Variable) DegreesAt(x float64) Degrees {
	return Degrees{
		Low:    v.Low.At(x),
		Medium: v.Medium.At(x),
		High:   v.High.At(x),
	}
}

// VariableBank holds the linguistic variables for one evaluation. It is
// derived fresh from the dataset snapshot on every call because the
// delivery-time and spend breakpoints are data-dependent.
type VariableBank struct {
	DueTime      *Variable
	DeliveryTime *Variable
	Spend        *Variable
	Punctuality  *Variable // nil when evaluating a supplier with no delivery history

	// Output fuzzy sets. Wait/Implement are populated in time priority,
	// OutLow/OutRegular/OutHigh in spend priority.
	Wait       *MembershipFunc
	Implement  *MembershipFunc
	OutLow     *MembershipFunc
	OutRegular *MembershipFunc
	OutHigh    *MembershipFunc

	// SpendBySupplier is the aggregated FY spend per supplier, in raw
	// currency units (not yet divided by 100).
	SpendBySupplier map[entities.SupplierID]float64

	// CompletelyNew marks the fallback case: fewer than 2 suppliers in the
	// spend aggregate, so no comparable spend history exists.
	CompletelyNew bool

	outputUniverse *Universe
}

// NewVariableBank computes dataset statistics and constructs the five
// linguistic variables for one evaluation of the given supplier. The same
// records and arguments always produce byte-identical membership curves.
func NewVariableBank(records []entities.SourcingRecord, supplierID entities.SupplierID, project string, opts Options) (*VariableBank, error) {
	if !opts.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	var awardedDT []float64
	maxAwardedDT := math.Inf(-1)
	for _, r := range records {
		if !r.Awarded {
			continue
		}
		dt := float64(r.DeliveryTimeDays)
		awardedDT = append(awardedDT, dt)
		if dt > maxAwardedDT {
			maxAwardedDT = dt
		}
	}
	if len(awardedDT) < 2 {
		return nil, &DataInsufficientError{Statistic: "awarded delivery time", Need: 2, Got: len(awardedDT)}
	}

	avgDT := stat.Mean(awardedDT, nil)
	stdDT := stat.StdDev(awardedDT, nil) // sample standard deviation

	spendBySupplier := aggregateSpend(records, supplierID, project, opts)

	var maxDT float64
	switch opts.Priority {
	case PriorityTime:
		maxDT = math.Ceil(max(avgDT+3*stdDT, maxAwardedDT))
	case PrioritySpend:
		maxDT = math.Ceil(maxAwardedDT)
	}

	bank := &VariableBank{SpendBySupplier: spendBySupplier}

	if len(spendBySupplier) < 2 {
		if opts.Priority == PriorityTime {
			// Completely new supplier: no comparable spend history. The
			// evaluator bypasses inference and returns the fixed fallback.
			bank.CompletelyNew = true
			return bank, nil
		}
		return nil, &DataInsufficientError{Statistic: "supplier spend aggregate", Need: 2, Got: len(spendBySupplier)}
	}

	spendValues := make([]float64, 0, len(spendBySupplier))
	minSpendRaw, maxSpendRaw := math.Inf(1), math.Inf(-1)
	for _, s := range spendBySupplier {
		spendValues = append(spendValues, s)
		minSpendRaw = min(minSpendRaw, s)
		maxSpendRaw = max(maxSpendRaw, s)
	}

	avgSpend := stat.Mean(spendValues, nil) / 100
	stdSpend := stat.StdDev(spendValues, nil) / 100
	minSpend := math.Floor(minSpendRaw / 100)

	var maxSpend float64
	switch opts.Priority {
	case PriorityTime:
		if opts.MassiveSimulation {
			maxSpend = math.Ceil(avgSpend + 10*stdSpend)
		} else {
			maxSpend = math.Ceil(avgSpend + 3*stdSpend)
		}
	case PrioritySpend:
		maxSpend = math.Ceil(maxSpendRaw / 100)
	}

	if err := bank.build(avgDT, stdDT, maxDT, avgSpend, stdSpend, minSpend, maxSpend, opts); err != nil {
		return nil, err
	}
	return bank, nil
}

// aggregateSpend groups total FY spend by supplier. In time priority the
// population is every supplier who quoted any part the target supplier also
// quoted; in spend priority it is every supplier, optionally restricted to
// the current project.
func aggregateSpend(records []entities.SourcingRecord, supplierID entities.SupplierID, project string, opts Options) map[entities.SupplierID]float64 {
	agg := make(map[entities.SupplierID]float64)

	switch opts.Priority {
	case PriorityTime:
		quotedPN := make(map[entities.PartNumber]bool)
		for _, r := range records {
			if r.SupplierID == supplierID {
				quotedPN[r.PartNumber] = true
			}
		}
		for _, r := range records {
			if quotedPN[r.PartNumber] {
				agg[r.SupplierID] += r.FYSpend.InexactFloat64()
			}
		}
	case PrioritySpend:
		for _, r := range records {
			if opts.SpendScope == SpendScopeProjectOnly && r.Project != project {
				continue
			}
			agg[r.SupplierID] += r.FYSpend.InexactFloat64()
		}
	}
	return agg
}

// build constructs the universes and membership functions from the
// computed statistics.
func (b *VariableBank) build(avgDT, stdDT, maxDT, avgSpend, stdSpend, minSpend, maxSpend float64, opts Options) error {
	dueUniverse, err := NewUniverse(0, 721, 1)
	if err != nil {
		return err
	}
	dtUniverse, err := NewUniverse(0, maxDT+1, 1)
	if err != nil {
		return fmt.Errorf("delivery time universe: %w", err)
	}
	spendUniverse, err := NewUniverse(0, maxSpend+1, 0.01)
	if err != nil {
		return fmt.Errorf("spend universe: %w", err)
	}
	punctUniverse, err := NewUniverse(0, 2, 0.01)
	if err != nil {
		return err
	}
	outUniverse, err := NewUniverse(0, 11, 0.01)
	if err != nil {
		return err
	}
	b.outputUniverse = outUniverse

	// Due time is measured against a fixed external project milestone, so
	// its breakpoints are constants rather than data-derived.
	b.DueTime, err = newVariable(dueUniverse,
		[4]float64{0, 0, 30, 60},
		[4]float64{30, 60, 60, 90},
		[4]float64{60, 90, 720, 720})
	if err != nil {
		return err
	}

	b.DeliveryTime, err = newVariable(dtUniverse,
		[4]float64{0, 0, avgDT - stdDT, avgDT},
		[4]float64{avgDT - stdDT, avgDT, avgDT, avgDT + stdDT},
		[4]float64{avgDT, avgDT + stdDT, maxDT, maxDT})
	if err != nil {
		return fmt.Errorf("delivery time variable: %w", err)
	}

	if !opts.NewSupplier {
		b.Punctuality, err = newVariable(punctUniverse,
			[4]float64{0, 0, 0.25, 0.5},
			[4]float64{0.25, 0.5, 0.5, 0.75},
			[4]float64{0.5, 0.75, 1, 1})
		if err != nil {
			return err
		}
	}

	b.Spend, err = newVariable(spendUniverse,
		[4]float64{0, minSpend, max(minSpend, avgSpend-stdSpend), max(avgSpend-stdSpend, avgSpend)},
		[4]float64{avgSpend - stdSpend, avgSpend, avgSpend, avgSpend + stdSpend},
		[4]float64{avgSpend, avgSpend + stdSpend, maxSpend, maxSpend})
	if err != nil {
		return fmt.Errorf("spend variable: %w", err)
	}

	switch opts.Priority {
	case PriorityTime:
		if b.Wait, err = Trapezoidal(outUniverse, 0, 0, 5, 7.5); err != nil {
			return err
		}
		if b.Implement, err = Trapezoidal(outUniverse, 2.5, 5, 10, 10); err != nil {
			return err
		}
	case PrioritySpend:
		if b.OutLow, err = Trapezoidal(outUniverse, 0, 0, 2.5, 5); err != nil {
			return err
		}
		if b.OutRegular, err = Triangular(outUniverse, 2.5, 5, 7.5); err != nil {
			return err
		}
		if b.OutHigh, err = Trapezoidal(outUniverse, 5, 7.5, 10, 10); err != nil {
			return err
		}
	}
	return nil
}

// newVariable builds the three levels of a linguistic variable. Breakpoints
// derived from statistics may collapse or cross on degenerate data, so each
// quadruple is clamped to non-decreasing order before construction.
func newVariable(u *Universe, low, medium, high [4]float64) (*Variable, error) {
	a, b, c, d := clampBreakpoints(low)
	lowMF, err := Trapezoidal(u, a, b, c, d)
	if err != nil {
		return nil, err
	}
	a, b, c, d = clampBreakpoints(medium)
	mediumMF, err := Trapezoidal(u, a, b, c, d)
	if err != nil {
		return nil, err
	}
	a, b, c, d = clampBreakpoints(high)
	highMF, err := Trapezoidal(u, a, b, c, d)
	if err != nil {
		return nil, err
	}
	return &Variable{Low: lowMF, Medium: mediumMF, High: highMF}, nil
}

// clampBreakpoints enforces non-decreasing order by carrying each bound
// forward. Valid quadruples pass through unchanged.
func clampBreakpoints(bp [4]float64) (float64, float64, float64, float64) {
	a := bp[0]
	b := max(a, bp[1])
	c := max(b, bp[2])
	d := max(c, bp[3])
	return a, b, c, d
}
