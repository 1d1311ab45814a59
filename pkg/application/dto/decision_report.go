package dto

import (
	"math"

	"github.com/npisim/sourcing/pkg/domain/entities"
	"github.com/npisim/sourcing/pkg/fuzzy"
)

// DecisionReport is the complete output of one supplier evaluation,
// flattened for rendering and JSON output.
type DecisionReport struct {
	SupplierID  entities.SupplierID `json:"supplier_id"`
	ECN         string              `json:"ecn"`
	Project     string              `json:"project"`
	Priority    string              `json:"priority"`
	NewSupplier bool                `json:"new_supplier"`

	Score      float64 `json:"score"`
	Activation float64 `json:"activation"`
	Action     string  `json:"action"`

	Activations []CategoryActivation `json:"activations"`
	// RuleStrengths is indexed by rule number minus one; nil marks rules
	// the evaluated variant does not contain.
	RuleStrengths []*float64 `json:"rule_strengths"`
	Degenerate    bool       `json:"degenerate,omitempty"`
}

// CategoryActivation is the peak activation of one output category.
type CategoryActivation struct {
	Category string  `json:"category"`
	Peak     float64 `json:"peak"`
}

// NewDecisionReport flattens an engine decision into a report.
func NewDecisionReport(req fuzzy.Request, decision *fuzzy.Decision) *DecisionReport {
	activations := make([]CategoryActivation, len(decision.Activations))
	for i, a := range decision.Activations {
		activations[i] = CategoryActivation{Category: a.Category.String(), Peak: a.Peak}
	}

	strengths := make([]*float64, len(decision.RuleStrengths))
	for i, s := range decision.RuleStrengths {
		if !math.IsNaN(s) {
			v := s
			strengths[i] = &v
		}
	}

	return &DecisionReport{
		SupplierID:    decision.SupplierID,
		ECN:           req.ECNID,
		Project:       req.Project,
		Priority:      decision.Priority.String(),
		NewSupplier:   decision.NewSupplier,
		Score:         decision.Score,
		Activation:    decision.Activation,
		Action:        decision.Action.String(),
		Activations:   activations,
		RuleStrengths: strengths,
		Degenerate:    decision.Degenerate,
	}
}

// SimulationReport summarizes one simulated sourcing scenario.
type SimulationReport struct {
	Project     string                         `json:"project"`
	Seed        uint64                         `json:"seed"`
	Suppliers   int                            `json:"suppliers"`
	ECNCount    int                            `json:"ecn_count"`
	RecordCount int                            `json:"record_count"`
	AwardedTo   map[string]entities.SupplierID `json:"awarded_to"`
}
