package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/npisim/sourcing/pkg/application/services"
	"github.com/npisim/sourcing/pkg/domain/entities"
	"github.com/npisim/sourcing/pkg/fuzzy"
	"github.com/npisim/sourcing/pkg/infrastructure/events"
	csvrepo "github.com/npisim/sourcing/pkg/infrastructure/repositories/csv"
	"github.com/npisim/sourcing/pkg/infrastructure/repositories/memory"
	"github.com/npisim/sourcing/pkg/interfaces/cli/output"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a supplier on an ECN with fuzzy inference",
	Long: `evaluate loads an item-master CSV and runs the Mamdani supplier
evaluation for one supplier on one ECN, or ranks every supplier that
quoted the ECN when --rank is set.

In time priority the decision is Wait or Implement against the project's
SOP milestone; in spend priority the supplier is classified as a Low,
Regular or High spend alternative.`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringP("input", "i", "item_master.csv", "path of the item-master CSV to load")
	evaluateCmd.Flags().String("supplier", "", "supplier ID to evaluate (8 characters)")
	evaluateCmd.Flags().String("ecn", "", "ECN to evaluate against (required)")
	evaluateCmd.Flags().String("project", "", "project name (required)")
	evaluateCmd.Flags().String("sop", "", "SOP milestone date, YYYY-MM-DD (required)")
	evaluateCmd.Flags().String("priority", "time", "evaluation priority: time or spend")
	evaluateCmd.Flags().Bool("new-supplier", false, "evaluate without punctuality history")
	evaluateCmd.Flags().Bool("massive", false, "widen the spend scale for massive simulated datasets")
	evaluateCmd.Flags().Bool("project-spend", false, "scope the spend aggregate to the project instead of the supplier's full history")
	evaluateCmd.Flags().Bool("rank", false, "rank every supplier that quoted the ECN")
	evaluateCmd.Flags().String("format", "text", "report format: text or json")

	evaluateCmd.MarkFlagRequired("ecn")
	evaluateCmd.MarkFlagRequired("project")
	evaluateCmd.MarkFlagRequired("sop")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	supplier, _ := cmd.Flags().GetString("supplier")
	ecnID, _ := cmd.Flags().GetString("ecn")
	project, _ := cmd.Flags().GetString("project")
	sopText, _ := cmd.Flags().GetString("sop")
	priorityText, _ := cmd.Flags().GetString("priority")
	newSupplier, _ := cmd.Flags().GetBool("new-supplier")
	massive, _ := cmd.Flags().GetBool("massive")
	projectSpend, _ := cmd.Flags().GetBool("project-spend")
	rank, _ := cmd.Flags().GetBool("rank")
	format, _ := cmd.Flags().GetString("format")

	priority, err := fuzzy.ParsePriority(priorityText)
	if err != nil {
		return err
	}
	sopDate, err := time.Parse("2006-01-02", sopText)
	if err != nil {
		return fmt.Errorf("invalid --sop date: %s (expected YYYY-MM-DD)", sopText)
	}

	scope := fuzzy.SpendScopeSupplierGlobal
	if projectSpend {
		scope = fuzzy.SpendScopeProjectOnly
	}

	req := fuzzy.Request{
		ECNID:   ecnID,
		Project: project,
		SOPDate: sopDate,
		Options: fuzzy.Options{
			Priority:          priority,
			NewSupplier:       newSupplier,
			MassiveSimulation: massive,
			SpendScope:        scope,
		},
	}

	records, err := csvrepo.NewLoader().LoadRecords(inputPath)
	if err != nil {
		return err
	}
	repo := memory.NewRecordRepository(len(records))
	if err := repo.LoadRecords(records); err != nil {
		return err
	}

	svc := services.NewEvaluationService(repo, events.NewInMemoryEventStore(), newLogger())
	renderConfig := output.Config{Format: format, Writer: cmd.OutOrStdout()}

	if rank {
		reports, err := svc.RankSuppliers(cmd.Context(), req)
		if err != nil {
			return err
		}
		return output.RenderRanking(reports, renderConfig)
	}

	supplierID, err := entities.NewSupplierID(supplier)
	if err != nil {
		return fmt.Errorf("--supplier is required unless --rank is set: %w", err)
	}
	req.SupplierID = supplierID

	report, err := svc.EvaluateSupplier(cmd.Context(), req)
	if err != nil {
		return err
	}
	return output.RenderDecision(report, renderConfig)
}
