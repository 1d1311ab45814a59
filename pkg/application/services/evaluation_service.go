package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/npisim/sourcing/pkg/application/dto"
	"github.com/npisim/sourcing/pkg/domain/entities"
	"github.com/npisim/sourcing/pkg/domain/repositories"
	"github.com/npisim/sourcing/pkg/fuzzy"
	"github.com/npisim/sourcing/pkg/infrastructure/events"
)

// EvaluationService runs supplier evaluations against a record repository
// snapshot and publishes the outcomes to the event store.
type EvaluationService struct {
	records repositories.RecordRepository
	store   events.EventStore
	logger  zerolog.Logger
}

// NewEvaluationService creates an evaluation service. The event store may
// be nil when no consumers exist.
func NewEvaluationService(records repositories.RecordRepository, store events.EventStore, logger zerolog.Logger) *EvaluationService {
	return &EvaluationService{records: records, store: store, logger: logger}
}

// EvaluateSupplier evaluates one supplier on one ECN and returns the
// flattened decision report.
func (s *EvaluationService) EvaluateSupplier(ctx context.Context, req fuzzy.Request) (*dto.DecisionReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot, err := s.records.GetAllRecords()
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot records: %w", err)
	}

	decision, err := fuzzy.Evaluate(snapshot, req)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate supplier %s: %w", req.SupplierID, err)
	}

	s.logger.Info().
		Str("supplier", string(req.SupplierID)).
		Str("ecn", req.ECNID).
		Str("priority", req.Priority.String()).
		Float64("score", decision.Score).
		Str("action", decision.Action.String()).
		Msg("supplier evaluated")

	if s.store != nil {
		event := events.NewSupplierEvaluatedEvent(
			req.SupplierID, req.ECNID, req.Priority.String(), decision.Score, decision.Action.String())
		if err := s.store.AppendEvent(string(req.SupplierID), event); err != nil {
			return nil, fmt.Errorf("failed to publish evaluation event: %w", err)
		}
	}

	return dto.NewDecisionReport(req, decision), nil
}

// RankSuppliers evaluates every supplier that quoted the ECN and returns
// their reports sorted by score, highest first. Suppliers without enough
// history for the requested priority are skipped and logged rather than
// failing the whole ranking.
func (s *EvaluationService) RankSuppliers(ctx context.Context, base fuzzy.Request) ([]*dto.DecisionReport, error) {
	ecnRecords, err := s.records.GetECNRecords(base.ECNID)
	if err != nil {
		return nil, fmt.Errorf("failed to read ECN records: %w", err)
	}
	if len(ecnRecords) == 0 {
		return nil, fmt.Errorf("no quotations found for %s", base.ECNID)
	}

	seen := make(map[entities.SupplierID]bool)
	var reports []*dto.DecisionReport
	for _, r := range ecnRecords {
		if seen[r.SupplierID] {
			continue
		}
		seen[r.SupplierID] = true

		req := base
		req.SupplierID = r.SupplierID
		report, err := s.EvaluateSupplier(ctx, req)
		if err != nil {
			if fuzzy.IsDataInsufficient(err) {
				s.logger.Warn().
					Str("supplier", string(r.SupplierID)).
					Err(err).
					Msg("skipping supplier with insufficient history")
				continue
			}
			return nil, err
		}
		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool { return reports[i].Score > reports[j].Score })
	return reports, nil
}
