package repositories

import "github.com/npisim/sourcing/pkg/domain/entities"

// RecordRepository provides access to the sourcing item master
type RecordRepository interface {
	GetAllRecords() ([]entities.SourcingRecord, error)
	GetSupplierRecords(supplierID entities.SupplierID) ([]entities.SourcingRecord, error)
	GetECNRecords(ecnID string) ([]entities.SourcingRecord, error)
	GetProjectRecords(project string) ([]entities.SourcingRecord, error)
	LoadRecords(records []entities.SourcingRecord) error
	AppendRecord(record entities.SourcingRecord) error
	Suppliers() ([]entities.SupplierID, error)
}
