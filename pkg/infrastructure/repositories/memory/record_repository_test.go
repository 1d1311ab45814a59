package memory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/npisim/sourcing/pkg/domain/entities"
)

func sampleRecord(supplier entities.SupplierID, ecn, project string) entities.SourcingRecord {
	return entities.SourcingRecord{
		Project:       project,
		ECN:           ecn,
		PartNumber:    "PN-100",
		Complexity:    entities.MediumComplexity,
		EAU:           500,
		SupplierID:    supplier,
		SupplierName:  "Supplier " + string(supplier),
		QuotationDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Price:         decimal.NewFromFloat(12.50),
		LeadTimeDays:  30,
		FYSpend:       decimal.NewFromInt(6250),
	}
}

func TestRecordRepository_LoadAndGetAll(t *testing.T) {
	repo := NewRecordRepository(10)

	records := []entities.SourcingRecord{
		sampleRecord("SUP00001", "ECN-1", "PROJ-A"),
		sampleRecord("SUP00002", "ECN-1", "PROJ-A"),
		sampleRecord("SUP00001", "ECN-2", "PROJ-B"),
	}

	if err := repo.LoadRecords(records); err != nil {
		t.Fatalf("Failed to load records: %v", err)
	}

	all, err := repo.GetAllRecords()
	if err != nil {
		t.Fatalf("Failed to get all records: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(all))
	}

	// Insertion order is preserved.
	if all[0].SupplierID != "SUP00001" || all[0].ECN != "ECN-1" {
		t.Errorf("Expected first record SUP00001/ECN-1, got %s/%s", all[0].SupplierID, all[0].ECN)
	}
}

func TestRecordRepository_GetAllReturnsCopy(t *testing.T) {
	repo := NewRecordRepository(1)
	if err := repo.AppendRecord(sampleRecord("SUP00001", "ECN-1", "PROJ-A")); err != nil {
		t.Fatalf("Failed to append record: %v", err)
	}

	all, _ := repo.GetAllRecords()
	all[0].SupplierID = "MUTATED1"

	again, _ := repo.GetAllRecords()
	if again[0].SupplierID != "SUP00001" {
		t.Errorf("Repository state mutated through returned slice: %s", again[0].SupplierID)
	}
}

func TestRecordRepository_FilteredLookups(t *testing.T) {
	repo := NewRecordRepository(10)
	records := []entities.SourcingRecord{
		sampleRecord("SUP00001", "ECN-1", "PROJ-A"),
		sampleRecord("SUP00002", "ECN-1", "PROJ-A"),
		sampleRecord("SUP00001", "ECN-2", "PROJ-B"),
		sampleRecord("SUP00003", "ECN-2", "PROJ-B"),
	}
	if err := repo.LoadRecords(records); err != nil {
		t.Fatalf("Failed to load records: %v", err)
	}

	bySupplier, err := repo.GetSupplierRecords("SUP00001")
	if err != nil {
		t.Fatalf("Failed to get supplier records: %v", err)
	}
	if len(bySupplier) != 2 {
		t.Errorf("Expected 2 records for SUP00001, got %d", len(bySupplier))
	}

	byECN, err := repo.GetECNRecords("ECN-2")
	if err != nil {
		t.Fatalf("Failed to get ECN records: %v", err)
	}
	if len(byECN) != 2 {
		t.Errorf("Expected 2 records for ECN-2, got %d", len(byECN))
	}

	byProject, err := repo.GetProjectRecords("PROJ-A")
	if err != nil {
		t.Fatalf("Failed to get project records: %v", err)
	}
	if len(byProject) != 2 {
		t.Errorf("Expected 2 records for PROJ-A, got %d", len(byProject))
	}

	empty, err := repo.GetSupplierRecords("SUP99999")
	if err != nil {
		t.Fatalf("Failed to get records for unknown supplier: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected no records for unknown supplier, got %d", len(empty))
	}
}

func TestRecordRepository_SuppliersSorted(t *testing.T) {
	repo := NewRecordRepository(10)
	records := []entities.SourcingRecord{
		sampleRecord("SUP00003", "ECN-1", "PROJ-A"),
		sampleRecord("SUP00001", "ECN-1", "PROJ-A"),
		sampleRecord("SUP00002", "ECN-1", "PROJ-A"),
		sampleRecord("SUP00001", "ECN-2", "PROJ-A"),
	}
	if err := repo.LoadRecords(records); err != nil {
		t.Fatalf("Failed to load records: %v", err)
	}

	suppliers, err := repo.Suppliers()
	if err != nil {
		t.Fatalf("Failed to list suppliers: %v", err)
	}
	want := []entities.SupplierID{"SUP00001", "SUP00002", "SUP00003"}
	if len(suppliers) != len(want) {
		t.Fatalf("Expected %d suppliers, got %d", len(want), len(suppliers))
	}
	for i := range want {
		if suppliers[i] != want[i] {
			t.Errorf("Supplier %d = %s, want %s", i, suppliers[i], want[i])
		}
	}
}
