package events

import (
	"time"

	"github.com/npisim/sourcing/pkg/domain/entities"
)

const (
	RFQIssuedEvent         = "rfq.issued"
	QuotationReceivedEvent = "quotation.received"
	BusinessAwardedEvent   = "business.awarded"
	SampleDeliveredEvent   = "sample.delivered"

	SupplierEvaluatedEvent   = "supplier.evaluated"
	SimulationCompletedEvent = "simulation.completed"
)

type RFQIssued struct {
	Project    string                `json:"project"`
	ECN        string                `json:"ecn"`
	PartNumber entities.PartNumber   `json:"part_number"`
	Suppliers  []entities.SupplierID `json:"suppliers"`
	RFQDate    time.Time             `json:"rfq_date"`
}

type QuotationReceived struct {
	Record entities.SourcingRecord `json:"record"`
}

type BusinessAwarded struct {
	Record entities.SourcingRecord `json:"record"`
}

type SampleDelivered struct {
	Record entities.SourcingRecord `json:"record"`
	OnTime bool                    `json:"on_time"`
}

type SupplierEvaluated struct {
	SupplierID entities.SupplierID `json:"supplier_id"`
	ECN        string              `json:"ecn"`
	Priority   string              `json:"priority"`
	Score      float64             `json:"score"`
	Action     string              `json:"action"`
}

type SimulationCompleted struct {
	Project     string `json:"project"`
	Seed        uint64 `json:"seed"`
	ECNCount    int    `json:"ecn_count"`
	RecordCount int    `json:"record_count"`
}

func NewRFQIssuedEvent(project, ecn string, pn entities.PartNumber, suppliers []entities.SupplierID, rfqDate time.Time) Event {
	return NewEvent(RFQIssuedEvent, ecn, RFQIssued{
		Project:    project,
		ECN:        ecn,
		PartNumber: pn,
		Suppliers:  suppliers,
		RFQDate:    rfqDate,
	})
}

func NewQuotationReceivedEvent(record entities.SourcingRecord) Event {
	return NewEvent(QuotationReceivedEvent, record.ECN, QuotationReceived{Record: record})
}

func NewBusinessAwardedEvent(record entities.SourcingRecord) Event {
	return NewEvent(BusinessAwardedEvent, record.ECN, BusinessAwarded{Record: record})
}

func NewSampleDeliveredEvent(record entities.SourcingRecord) Event {
	return NewEvent(SampleDeliveredEvent, record.ECN, SampleDelivered{
		Record: record,
		OnTime: record.OTD,
	})
}

func NewSupplierEvaluatedEvent(supplierID entities.SupplierID, ecn, priority string, score float64, action string) Event {
	return NewEvent(SupplierEvaluatedEvent, string(supplierID), SupplierEvaluated{
		SupplierID: supplierID,
		ECN:        ecn,
		Priority:   priority,
		Score:      score,
		Action:     action,
	})
}

func NewSimulationCompletedEvent(project string, seed uint64, ecnCount, recordCount int) Event {
	return NewEvent(SimulationCompletedEvent, project, SimulationCompleted{
		Project:     project,
		Seed:        seed,
		ECNCount:    ecnCount,
		RecordCount: recordCount,
	})
}
