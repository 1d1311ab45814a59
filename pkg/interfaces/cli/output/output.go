package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/npisim/sourcing/pkg/application/dto"
)

// Config holds configuration for report rendering
type Config struct {
	Format string
	Writer io.Writer
}

// RenderDecision writes one evaluation report in the configured format
func RenderDecision(report *dto.DecisionReport, config Config) error {
	switch config.Format {
	case "text":
		return renderDecisionText(report, config.Writer)
	case "json":
		return renderJSON(report, config.Writer)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// RenderRanking writes a scored supplier ranking in the configured format
func RenderRanking(reports []*dto.DecisionReport, config Config) error {
	switch config.Format {
	case "text":
		return renderRankingText(reports, config.Writer)
	case "json":
		return renderJSON(reports, config.Writer)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// RenderSimulation writes a simulation summary in the configured format
func RenderSimulation(report *dto.SimulationReport, config Config) error {
	switch config.Format {
	case "text":
		return renderSimulationText(report, config.Writer)
	case "json":
		return renderJSON(report, config.Writer)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

func renderDecisionText(report *dto.DecisionReport, w io.Writer) error {
	fmt.Fprintf(w, "📊 Supplier Evaluation\n")
	fmt.Fprintf(w, "======================\n\n")

	fmt.Fprintf(w, "Supplier: %s    ECN: %s    Project: %s\n", report.SupplierID, report.ECN, report.Project)
	fmt.Fprintf(w, "Priority: %s    New supplier: %v\n\n", report.Priority, report.NewSupplier)

	fmt.Fprintf(w, "Score: %.2f / 10    Activation: %.3f\n", report.Score, report.Activation)
	fmt.Fprintf(w, "Action: %s\n", report.Action)
	if report.Degenerate {
		fmt.Fprintf(w, "Note: no rule fired; score fell back to the scale midpoint\n")
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Category activations:\n")
	for _, a := range report.Activations {
		fmt.Fprintf(w, "  %-10s %.3f\n", a.Category, a.Peak)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Rule strengths:\n")
	for i, s := range report.RuleStrengths {
		if s == nil {
			fmt.Fprintf(w, "  R%02d      -\n", i+1)
			continue
		}
		fmt.Fprintf(w, "  R%02d  %.3f\n", i+1, *s)
	}

	return nil
}

func renderRankingText(reports []*dto.DecisionReport, w io.Writer) error {
	fmt.Fprintf(w, "📊 Supplier Ranking\n")
	fmt.Fprintf(w, "===================\n\n")

	fmt.Fprintf(w, "%-10s %-8s %-12s %-8s\n", "Supplier", "Score", "Action", "New")
	fmt.Fprintf(w, "%-10s %-8s %-12s %-8s\n", "----------", "--------", "------------", "--------")
	for _, r := range reports {
		fmt.Fprintf(w, "%-10s %-8.2f %-12s %-8v\n", r.SupplierID, r.Score, r.Action, r.NewSupplier)
	}

	return nil
}

func renderSimulationText(report *dto.SimulationReport, w io.Writer) error {
	fmt.Fprintf(w, "🎲 Simulation Summary\n")
	fmt.Fprintf(w, "=====================\n\n")

	fmt.Fprintf(w, "Project: %s    Seed: %d\n", report.Project, report.Seed)
	fmt.Fprintf(w, "Suppliers: %d    ECNs: %d    Records: %d\n\n", report.Suppliers, report.ECNCount, report.RecordCount)

	fmt.Fprintf(w, "Awards:\n")
	ecns := make([]string, 0, len(report.AwardedTo))
	for ecn := range report.AwardedTo {
		ecns = append(ecns, ecn)
	}
	sort.Strings(ecns)
	for _, ecn := range ecns {
		fmt.Fprintf(w, "  %-12s %s\n", ecn, report.AwardedTo[ecn])
	}

	return nil
}

func renderJSON(v interface{}, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
