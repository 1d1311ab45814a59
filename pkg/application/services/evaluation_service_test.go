package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/npisim/sourcing/pkg/domain/entities"
	"github.com/npisim/sourcing/pkg/fuzzy"
	"github.com/npisim/sourcing/pkg/infrastructure/events"
	"github.com/npisim/sourcing/pkg/infrastructure/repositories/memory"
)

var evalSOP = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func quotation(supplier entities.SupplierID, spend float64, leadTime int) entities.SourcingRecord {
	return entities.SourcingRecord{
		Project:       "HVAC-NPI-1",
		ECN:           "ECN-1",
		PartNumber:    "PN-A",
		SupplierID:    supplier,
		QuotationDate: evalSOP.AddDate(0, 0, -75),
		LeadTimeDays:  leadTime,
		FYSpend:       decimal.NewFromFloat(spend),
	}
}

func awarded(supplier entities.SupplierID, deliveryDays int, otd bool) entities.SourcingRecord {
	return entities.SourcingRecord{
		Project:          "HVAC-NPI-1",
		ECN:              "ECN-HIST",
		PartNumber:       "PN-H",
		SupplierID:       supplier,
		QuotationDate:    evalSOP.AddDate(-1, 0, 0),
		DeliveryTimeDays: deliveryDays,
		OTD:              otd,
		Awarded:          true,
		FYSpend:          decimal.Zero,
	}
}

func evaluationDataset() []entities.SourcingRecord {
	records := []entities.SourcingRecord{
		quotation("SUP00001", 10000, 30),
		quotation("SUP00002", 8000, 25),
		quotation("SUP00003", 12000, 45),
	}
	for i := 0; i < 5; i++ {
		records = append(records, awarded("SUP00001", 20, true))
	}
	for i := 0; i < 4; i++ {
		records = append(records, awarded("SUP00001", 40, true))
	}
	return append(records, awarded("SUP00001", 40, false))
}

func newEvaluationService(t *testing.T) (*EvaluationService, *events.InMemoryEventStore) {
	t.Helper()
	repo := memory.NewRecordRepository(16)
	if err := repo.LoadRecords(evaluationDataset()); err != nil {
		t.Fatalf("Failed to load records: %v", err)
	}
	store := events.NewInMemoryEventStore()
	return NewEvaluationService(repo, store, zerolog.Nop()), store
}

func evalRequest(supplier entities.SupplierID) fuzzy.Request {
	return fuzzy.Request{
		SupplierID: supplier,
		ECNID:      "ECN-1",
		Project:    "HVAC-NPI-1",
		SOPDate:    evalSOP,
		Options:    fuzzy.Options{Priority: fuzzy.PriorityTime},
	}
}

func TestEvaluationService_EvaluateSupplier(t *testing.T) {
	svc, store := newEvaluationService(t)

	report, err := svc.EvaluateSupplier(context.Background(), evalRequest("SUP00001"))
	if err != nil {
		t.Fatalf("EvaluateSupplier failed: %v", err)
	}

	if report.Action != "Implement" {
		t.Errorf("action = %s, want Implement", report.Action)
	}
	if report.SupplierID != "SUP00001" || report.ECN != "ECN-1" {
		t.Errorf("report identity = %s/%s", report.SupplierID, report.ECN)
	}
	if report.Priority != "time" {
		t.Errorf("priority = %s, want time", report.Priority)
	}
	if len(report.RuleStrengths) != 18 {
		t.Errorf("rule strengths length = %d, want 18", len(report.RuleStrengths))
	}
	for i, s := range report.RuleStrengths {
		if s == nil {
			t.Errorf("rule %d strength missing in the full rule base", i+1)
		}
	}

	published, err := store.ReadEvents("SUP00001", 0)
	if err != nil {
		t.Fatalf("Failed to read events: %v", err)
	}
	if len(published) != 1 {
		t.Fatalf("Expected 1 published event, got %d", len(published))
	}
	if published[0].Type() != events.SupplierEvaluatedEvent {
		t.Errorf("event type = %s, want %s", published[0].Type(), events.SupplierEvaluatedEvent)
	}
	payload, ok := published[0].Data().(events.SupplierEvaluated)
	if !ok {
		t.Fatalf("unexpected event payload %T", published[0].Data())
	}
	if payload.Score != report.Score || payload.Action != report.Action {
		t.Errorf("event payload %+v does not match report score %g action %s",
			payload, report.Score, report.Action)
	}
}

func TestEvaluationService_PropagatesEngineErrors(t *testing.T) {
	svc, _ := newEvaluationService(t)

	// SUP00002 never won business, so the existing-supplier path has no
	// punctuality history.
	_, err := svc.EvaluateSupplier(context.Background(), evalRequest("SUP00002"))
	if !fuzzy.IsDataInsufficient(err) {
		t.Errorf("err = %v, want DataInsufficientError", err)
	}
}

func TestEvaluationService_CancelledContext(t *testing.T) {
	svc, _ := newEvaluationService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.EvaluateSupplier(ctx, evalRequest("SUP00001")); err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestEvaluationService_RankSuppliers(t *testing.T) {
	svc, _ := newEvaluationService(t)

	reports, err := svc.RankSuppliers(context.Background(), evalRequest(""))
	if err != nil {
		t.Fatalf("RankSuppliers failed: %v", err)
	}

	// Only SUP00001 carries awarded history; the others are skipped.
	if len(reports) != 1 {
		t.Fatalf("Expected 1 rankable supplier, got %d", len(reports))
	}
	if reports[0].SupplierID != "SUP00001" {
		t.Errorf("ranked supplier = %s, want SUP00001", reports[0].SupplierID)
	}
}

func TestEvaluationService_RankSuppliers_UnknownECN(t *testing.T) {
	svc, _ := newEvaluationService(t)

	req := evalRequest("")
	req.ECNID = "ECN-NOPE"
	if _, err := svc.RankSuppliers(context.Background(), req); err == nil {
		t.Error("expected error for ECN without quotations")
	}
}
