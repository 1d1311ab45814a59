package memory

import (
	"sort"

	"github.com/npisim/sourcing/pkg/domain/entities"
	"github.com/npisim/sourcing/pkg/domain/repositories"
)

// RecordRepository provides in-memory sourcing record storage
type RecordRepository struct {
	records    []entities.SourcingRecord
	bySupplier map[entities.SupplierID][]int
	byECN      map[string][]int
	byProject  map[string][]int
}

// NewRecordRepository creates a new in-memory record repository
func NewRecordRepository(expectedRecords int) *RecordRepository {
	return &RecordRepository{
		records:    make([]entities.SourcingRecord, 0, expectedRecords),
		bySupplier: make(map[entities.SupplierID][]int),
		byECN:      make(map[string][]int),
		byProject:  make(map[string][]int),
	}
}

// Verify interface compliance
var _ repositories.RecordRepository = (*RecordRepository)(nil)

// LoadRecords loads records into the repository
func (r *RecordRepository) LoadRecords(records []entities.SourcingRecord) error {
	for _, record := range records {
		if err := r.AppendRecord(record); err != nil {
			return err
		}
	}
	return nil
}

// AppendRecord adds a single record to the repository
func (r *RecordRepository) AppendRecord(record entities.SourcingRecord) error {
	index := len(r.records)
	r.records = append(r.records, record)
	r.bySupplier[record.SupplierID] = append(r.bySupplier[record.SupplierID], index)
	r.byECN[record.ECN] = append(r.byECN[record.ECN], index)
	r.byProject[record.Project] = append(r.byProject[record.Project], index)
	return nil
}

// GetAllRecords returns a copy of every record in insertion order
func (r *RecordRepository) GetAllRecords() ([]entities.SourcingRecord, error) {
	out := make([]entities.SourcingRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}

// GetSupplierRecords returns all records for a supplier
func (r *RecordRepository) GetSupplierRecords(supplierID entities.SupplierID) ([]entities.SourcingRecord, error) {
	return r.collect(r.bySupplier[supplierID]), nil
}

// GetECNRecords returns all records under an ECN
func (r *RecordRepository) GetECNRecords(ecnID string) ([]entities.SourcingRecord, error) {
	return r.collect(r.byECN[ecnID]), nil
}

// GetProjectRecords returns all records under a project
func (r *RecordRepository) GetProjectRecords(project string) ([]entities.SourcingRecord, error) {
	return r.collect(r.byProject[project]), nil
}

// Suppliers returns the distinct supplier IDs present, sorted
func (r *RecordRepository) Suppliers() ([]entities.SupplierID, error) {
	ids := make([]entities.SupplierID, 0, len(r.bySupplier))
	for id := range r.bySupplier {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (r *RecordRepository) collect(indices []int) []entities.SourcingRecord {
	out := make([]entities.SourcingRecord, 0, len(indices))
	for _, i := range indices {
		out = append(out, r.records[i])
	}
	return out
}
