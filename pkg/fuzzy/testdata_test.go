package fuzzy

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/npisim/sourcing/pkg/domain/entities"
)

// Shared dataset builders for the engine tests. The scenarios are tuned so
// the data-derived breakpoints land on round numbers: awarded delivery
// times average 30 days, and the spend aggregate averages 10,000 currency
// units (crisp 100 after the /100 normalization).

var testSOP = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func quotationRecord(supplier entities.SupplierID, ecn string, pn entities.PartNumber, spend float64, leadTime int, quoted time.Time) entities.SourcingRecord {
	return entities.SourcingRecord{
		Project:       "HVAC-NPI-1",
		ECN:           ecn,
		PartNumber:    pn,
		SupplierID:    supplier,
		QuotationDate: quoted,
		LeadTimeDays:  leadTime,
		FYSpend:       decimal.NewFromFloat(spend),
	}
}

func awardedRecord(supplier entities.SupplierID, pn entities.PartNumber, deliveryDays int, otd bool) entities.SourcingRecord {
	return entities.SourcingRecord{
		Project:          "HVAC-NPI-1",
		ECN:              "ECN-HIST",
		PartNumber:       pn,
		SupplierID:       supplier,
		QuotationDate:    testSOP.AddDate(-1, 0, 0),
		DeliveryTimeDays: deliveryDays,
		OTD:              otd,
		Awarded:          true,
		FYSpend:          decimal.Zero,
	}
}

// timePriorityDataset builds the scenario used across the time-priority
// tests: supplier SUP00001 quoting PN-A with a 30-day lead time 75 days
// before SOP, a 0.9 punctuality history, delivery statistics of mean 30,
// and a three-supplier spend aggregate of mean 10,000 around SUP00001.
func timePriorityDataset() []entities.SourcingRecord {
	quoted := testSOP.AddDate(0, 0, -75)

	records := []entities.SourcingRecord{
		quotationRecord("SUP00001", "ECN-1", "PN-A", 10000, 30, quoted),
		quotationRecord("SUP00002", "ECN-1", "PN-A", 8000, 25, quoted),
		quotationRecord("SUP00003", "ECN-1", "PN-A", 12000, 45, quoted),
	}

	// SUP00001 delivery history: ten awarded samples, mean 30 days, nine
	// of them on time.
	for i := 0; i < 5; i++ {
		records = append(records, awardedRecord("SUP00001", "PN-H", 20, true))
	}
	records = append(records,
		awardedRecord("SUP00001", "PN-H", 40, true),
		awardedRecord("SUP00001", "PN-H", 40, true),
		awardedRecord("SUP00001", "PN-H", 40, true),
		awardedRecord("SUP00001", "PN-H", 40, true),
		awardedRecord("SUP00001", "PN-H", 40, false),
	)
	return records
}

// spendPriorityDataset builds the scenario for the spend-priority tests:
// SUP00010 is a new supplier whose project spend sits fully in the High
// price band and whose quoted lead times sit fully in the Good delivery
// band; SUP00011 and SUP00012 carry the awarded delivery history.
func spendPriorityDataset() []entities.SourcingRecord {
	quoted := testSOP.AddDate(0, 0, -90)

	records := []entities.SourcingRecord{
		quotationRecord("SUP00010", "ECN-2", "PN-B", 30000, 10, quoted),
		quotationRecord("SUP00011", "ECN-2", "PN-B", 10000, 30, quoted),
		quotationRecord("SUP00012", "ECN-2", "PN-B", 20000, 35, quoted),
	}
	records = append(records,
		awardedRecord("SUP00012", "PN-H", 20, true),
		awardedRecord("SUP00012", "PN-H", 40, false),
	)
	return records
}
