package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/npisim/sourcing/pkg/domain/entities"
)

// recordHeader is the canonical item-master column layout, one row per
// part/supplier/ECN combination.
var recordHeader = []string{
	"project", "ecn", "ecn_release", "rfq_date",
	"part_number", "complexity", "eau",
	"supplier_id", "supplier_name", "quotation_id", "quotation_date",
	"price", "lead_time_days",
	"eta", "delivery_date", "quotation_time_days",
	"otd", "delivery_time_days", "fy_spend", "awarded",
}

// Loader handles loading sourcing data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadRecords loads the item master from a CSV file
func (l *Loader) LoadRecords(filename string) ([]entities.SourcingRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open item master file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read item master CSV: %w", err)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("item master CSV must have header and at least one data row")
	}

	header := rows[0]
	if !validateHeader(header, recordHeader) {
		return nil, fmt.Errorf("item master CSV header mismatch. Expected: %v, Got: %v", recordHeader, header)
	}

	records := make([]entities.SourcingRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(recordHeader) {
			return nil, fmt.Errorf("item master CSV row %d: expected %d columns, got %d", i+2, len(recordHeader), len(row))
		}

		record, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("item master CSV row %d: %w", i+2, err)
		}

		records = append(records, record)
	}

	return records, nil
}

// WriteRecords writes the item master to a CSV file, overwriting any
// existing content. Simulated datasets round-trip through this format.
func (l *Loader) WriteRecords(filename string, records []entities.SourcingRecord) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create item master file %s: %w", filename, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(recordHeader); err != nil {
		return fmt.Errorf("failed to write item master header: %w", err)
	}

	for i, r := range records {
		row := []string{
			r.Project,
			r.ECN,
			formatDate(r.ECNRelease),
			formatDate(r.RFQDate),
			string(r.PartNumber),
			r.Complexity.String(),
			strconv.Itoa(r.EAU),
			string(r.SupplierID),
			r.SupplierName,
			r.QuotationID,
			formatDate(r.QuotationDate),
			r.Price.String(),
			strconv.Itoa(r.LeadTimeDays),
			formatDate(r.ETA),
			formatDate(r.DeliveryDate),
			strconv.Itoa(r.QuotationTimeDays),
			strconv.FormatBool(r.OTD),
			strconv.Itoa(r.DeliveryTimeDays),
			r.FYSpend.String(),
			strconv.FormatBool(r.Awarded),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write item master row %d: %w", i+2, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// Helper functions for parsing CSV records

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseRecord(row []string) (entities.SourcingRecord, error) {
	var zero entities.SourcingRecord

	supplierID, err := entities.NewSupplierID(row[7])
	if err != nil {
		return zero, err
	}

	complexity, err := entities.ParseComplexity(row[5])
	if err != nil {
		return zero, err
	}

	eau, err := strconv.Atoi(row[6])
	if err != nil {
		return zero, fmt.Errorf("invalid eau: %s", row[6])
	}

	quotationDate, err := parseDate(row[10], "quotation_date")
	if err != nil {
		return zero, err
	}
	ecnRelease, err := parseOptionalDate(row[2], "ecn_release")
	if err != nil {
		return zero, err
	}
	rfqDate, err := parseOptionalDate(row[3], "rfq_date")
	if err != nil {
		return zero, err
	}
	eta, err := parseOptionalDate(row[13], "eta")
	if err != nil {
		return zero, err
	}
	deliveryDate, err := parseOptionalDate(row[14], "delivery_date")
	if err != nil {
		return zero, err
	}

	price, err := decimal.NewFromString(row[11])
	if err != nil {
		return zero, fmt.Errorf("invalid price: %s", row[11])
	}
	fySpend, err := decimal.NewFromString(row[18])
	if err != nil {
		return zero, fmt.Errorf("invalid fy_spend: %s", row[18])
	}

	leadTimeDays, err := strconv.Atoi(row[12])
	if err != nil {
		return zero, fmt.Errorf("invalid lead_time_days: %s", row[12])
	}
	quotationTimeDays, err := strconv.Atoi(row[15])
	if err != nil {
		return zero, fmt.Errorf("invalid quotation_time_days: %s", row[15])
	}
	deliveryTimeDays, err := strconv.Atoi(row[17])
	if err != nil {
		return zero, fmt.Errorf("invalid delivery_time_days: %s", row[17])
	}

	otd, err := strconv.ParseBool(row[16])
	if err != nil {
		return zero, fmt.Errorf("invalid otd: %s", row[16])
	}
	awarded, err := strconv.ParseBool(row[19])
	if err != nil {
		return zero, fmt.Errorf("invalid awarded: %s", row[19])
	}

	return entities.SourcingRecord{
		Project:           row[0],
		ECN:               row[1],
		ECNRelease:        ecnRelease,
		RFQDate:           rfqDate,
		PartNumber:        entities.PartNumber(row[4]),
		Complexity:        complexity,
		EAU:               eau,
		SupplierID:        supplierID,
		SupplierName:      row[8],
		QuotationID:       row[9],
		QuotationDate:     quotationDate,
		Price:             price,
		LeadTimeDays:      leadTimeDays,
		ETA:               eta,
		DeliveryDate:      deliveryDate,
		QuotationTimeDays: quotationTimeDays,
		OTD:               otd,
		DeliveryTimeDays:  deliveryTimeDays,
		FYSpend:           fySpend,
		Awarded:           awarded,
	}, nil
}

func parseDate(s, field string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s format: %s (expected YYYY-MM-DD)", field, s)
	}
	return d, nil
}

// parseOptionalDate treats an empty cell as the zero time; delivery columns
// are unfilled until business is awarded and samples arrive.
func parseOptionalDate(s, field string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return parseDate(s, field)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
