package fuzzy

import (
	"errors"
	"math"
	"time"

	"github.com/npisim/sourcing/pkg/domain/entities"
)

// Options configures one evaluation.
type Options struct {
	Priority          Priority
	NewSupplier       bool
	MassiveSimulation bool // widen the spend universe tail for extreme sampled values
	SpendScope        SpendScope
}

// Request identifies the supplier and quotation context to evaluate. The
// SOP date anchors the due-time input; the ECN scopes the quotation lookup.
type Request struct {
	SupplierID entities.SupplierID
	ECNID      string
	Project    string
	SOPDate    time.Time
	Options
}

// CategoryActivation is the peak of one consequent's clipped output curve.
type CategoryActivation struct {
	Category Category
	Peak     float64
}

// Decision is the immutable result of one supplier evaluation.
type Decision struct {
	SupplierID  entities.SupplierID
	NewSupplier bool
	Priority    Priority

	// Score is the centroid-defuzzified crisp score on the output universe.
	Score float64
	// Activation is the aggregated curve's own membership at Score.
	Activation float64
	// Activations lists the peak clipped activation per consequent
	// category, in tie-break order.
	Activations []CategoryActivation
	// Action is the category with the largest peak activation.
	Action Category
	// RuleStrengths holds the firing strength of every numbered rule in the
	// full rule base; slots not applicable to the reduced variant are NaN.
	RuleStrengths []float64
	// Degenerate marks an evaluation where no rule fired above zero and the
	// score fell back to the output-universe midpoint.
	Degenerate bool
}

// Evaluate runs one Mamdani inference cycle for a supplier against a
// dataset snapshot. It is a pure function of its inputs: no I/O, no shared
// state, and identical inputs always produce identical decisions.
func Evaluate(records []entities.SourcingRecord, req Request) (*Decision, error) {
	if !req.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	bank, err := NewVariableBank(records, req.SupplierID, req.Project, req.Options)
	if err != nil {
		return nil, err
	}

	if bank.CompletelyNew {
		return fallbackDecision(req), nil
	}

	switch req.Priority {
	case PrioritySpend:
		return evaluateSpendPriority(records, req, bank)
	default:
		return evaluateTimePriority(records, req, bank)
	}
}

// fallbackDecision is the fixed record for a completely new supplier with
// no comparable spend history: inference is bypassed entirely.
func fallbackDecision(req Request) *Decision {
	strengths := make([]float64, len(timeExistingRules))
	for i := range strengths {
		strengths[i] = math.NaN()
	}
	return &Decision{
		SupplierID:  req.SupplierID,
		NewSupplier: req.NewSupplier,
		Priority:    req.Priority,
		Score:       0,
		Activations: []CategoryActivation{
			{Category: CategoryWait, Peak: 1},
			{Category: CategoryImplement, Peak: 0},
		},
		Action:        CategoryWait,
		RuleStrengths: strengths,
	}
}

func evaluateTimePriority(records []entities.SourcingRecord, req Request, bank *VariableBank) (*Decision, error) {
	crispDueTime, err := dueTimeDays(records, req)
	if err != nil {
		return nil, err
	}

	spendTotal, ok := bank.SpendBySupplier[req.SupplierID]
	if !ok {
		return nil, &DataInsufficientError{Statistic: "spend history for evaluated supplier", Need: 1, Got: 0}
	}
	crispSpend := spendTotal / 100

	crispDeliveryTime, err := maxQuotedLeadTime(records, req.SupplierID, req.ECNID)
	if err != nil {
		return nil, err
	}

	in := RuleInputs{
		DueTime:      bank.DueTime.DegreesAt(crispDueTime),
		DeliveryTime: bank.DeliveryTime.DegreesAt(crispDeliveryTime),
		Spend:        bank.Spend.DegreesAt(crispSpend),
	}
	if !req.NewSupplier {
		crispPunctuality, err := punctualityRatio(records, req.SupplierID)
		if err != nil {
			return nil, err
		}
		in.Punctuality = bank.Punctuality.DegreesAt(crispPunctuality)
	}

	rules, totalRules := ruleBase(PriorityTime, req.NewSupplier)
	strengths, byCategory := fireRules(rules, totalRules, in)

	waitClipped := bank.Wait.Clip(byCategory[CategoryWait])
	implementClipped := bank.Implement.Clip(byCategory[CategoryImplement])

	return defuzzify(req, strengths, []*MembershipFunc{waitClipped, implementClipped},
		[]Category{CategoryWait, CategoryImplement})
}

func evaluateSpendPriority(records []entities.SourcingRecord, req Request, bank *VariableBank) (*Decision, error) {
	// The crisp price is always scoped to the project under evaluation.
	var priceTotal float64
	for _, r := range records {
		if r.Project == req.Project && r.SupplierID == req.SupplierID {
			priceTotal += r.FYSpend.InexactFloat64()
		}
	}
	crispPrice := priceTotal / 100

	var crispDeliveryTime float64
	in := RuleInputs{Spend: bank.Spend.DegreesAt(crispPrice)}

	if req.NewSupplier {
		lt, err := meanQuotedLeadTime(records, req.SupplierID)
		if err != nil {
			return nil, err
		}
		crispDeliveryTime = lt
	} else {
		crispPunctuality, err := punctualityRatio(records, req.SupplierID)
		if err != nil {
			return nil, err
		}
		in.Punctuality = bank.Punctuality.DegreesAt(crispPunctuality)

		var sum float64
		var n int
		for _, r := range records {
			if r.SupplierID == req.SupplierID && r.Awarded {
				sum += float64(r.DeliveryTimeDays)
				n++
			}
		}
		if n == 0 {
			return nil, &DataInsufficientError{Statistic: "awarded delivery time for evaluated supplier", Need: 1, Got: 0}
		}
		crispDeliveryTime = sum / float64(n)
	}
	in.DeliveryTime = bank.DeliveryTime.DegreesAt(crispDeliveryTime)

	rules, totalRules := ruleBase(PrioritySpend, req.NewSupplier)
	strengths, byCategory := fireRules(rules, totalRules, in)

	lowClipped := bank.OutLow.Clip(byCategory[CategoryLow])
	regularClipped := bank.OutRegular.Clip(byCategory[CategoryRegular])
	highClipped := bank.OutHigh.Clip(byCategory[CategoryHigh])

	return defuzzify(req, strengths, []*MembershipFunc{lowClipped, regularClipped, highClipped},
		[]Category{CategoryLow, CategoryRegular, CategoryHigh})
}

// defuzzify aggregates the clipped consequent curves, computes the centroid
// score, and picks the category with the largest peak activation. Ties go
// to the first listed category. An all-zero aggregate resolves to the
// output-universe midpoint with the decision flagged degenerate.
func defuzzify(req Request, strengths []float64, clipped []*MembershipFunc, order []Category) (*Decision, error) {
	aggregated, err := Aggregate(clipped...)
	if err != nil {
		return nil, err
	}

	degenerate := false
	score, err := aggregated.Centroid()
	if err != nil {
		if !errors.Is(err, ErrDegenerateAggregate) {
			return nil, err
		}
		degenerate = true
		score = aggregated.Universe().Midpoint()
	}

	activations := make([]CategoryActivation, len(clipped))
	best := 0
	for i, c := range clipped {
		activations[i] = CategoryActivation{Category: order[i], Peak: c.Peak()}
		if activations[i].Peak > activations[best].Peak {
			best = i
		}
	}

	return &Decision{
		SupplierID:    req.SupplierID,
		NewSupplier:   req.NewSupplier,
		Priority:      req.Priority,
		Score:         score,
		Activation:    aggregated.At(score),
		Activations:   activations,
		Action:        order[best],
		RuleStrengths: strengths,
		Degenerate:    degenerate,
	}, nil
}

// dueTimeDays computes whole days between the supplier's latest quotation
// on the ECN and the project's SOP milestone, clamped at zero.
func dueTimeDays(records []entities.SourcingRecord, req Request) (float64, error) {
	var latest time.Time
	found := false
	for _, r := range records {
		if r.SupplierID == req.SupplierID && r.ECN == req.ECNID {
			if !found || r.QuotationDate.After(latest) {
				latest = r.QuotationDate
				found = true
			}
		}
	}
	if !found {
		return 0, &DataInsufficientError{Statistic: "quotations for evaluated supplier on ECN", Need: 1, Got: 0}
	}

	days := math.Floor(req.SOPDate.Sub(latest).Hours() / 24)
	return max(days, 0), nil
}

// maxQuotedLeadTime returns the largest quoted lead time the supplier gave
// on the ECN. Unquoted rows (lead time 0) are ignored.
func maxQuotedLeadTime(records []entities.SourcingRecord, supplierID entities.SupplierID, ecnID string) (float64, error) {
	best := 0
	for _, r := range records {
		if r.SupplierID == supplierID && r.ECN == ecnID && r.LeadTimeDays > best {
			best = r.LeadTimeDays
		}
	}
	if best == 0 {
		return 0, &DataInsufficientError{Statistic: "quoted lead time for evaluated supplier on ECN", Need: 1, Got: 0}
	}
	return float64(best), nil
}

// meanQuotedLeadTime averages the supplier's quoted lead times across the
// whole dataset.
func meanQuotedLeadTime(records []entities.SourcingRecord, supplierID entities.SupplierID) (float64, error) {
	var sum float64
	var n int
	for _, r := range records {
		if r.SupplierID == supplierID && r.LeadTimeDays > 0 {
			sum += float64(r.LeadTimeDays)
			n++
		}
	}
	if n == 0 {
		return 0, &DataInsufficientError{Statistic: "quoted lead time for evaluated supplier", Need: 1, Got: 0}
	}
	return sum / float64(n), nil
}

// punctualityRatio is the supplier's on-time-delivery share across awarded
// business.
func punctualityRatio(records []entities.SourcingRecord, supplierID entities.SupplierID) (float64, error) {
	var awarded, onTime int
	for _, r := range records {
		if r.SupplierID == supplierID && r.Awarded {
			awarded++
			if r.OTD {
				onTime++
			}
		}
	}
	if awarded == 0 {
		return 0, &DataInsufficientError{Statistic: "awarded records for evaluated supplier", Need: 1, Got: 0}
	}
	return float64(onTime) / float64(awarded), nil
}
