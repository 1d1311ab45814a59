package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PartNumber represents a unique part identifier
type PartNumber string

// SupplierID represents a validated supplier identifier
type SupplierID string

// NewSupplierID validates and returns a supplier identifier.
// Supplier IDs are exactly 8 characters in the item master.
func NewSupplierID(id string) (SupplierID, error) {
	if len(id) != 8 {
		return "", fmt.Errorf("invalid supplier ID %q: must be exactly 8 characters", id)
	}
	return SupplierID(id), nil
}

// Complexity represents the manufacturing complexity of a part
type Complexity int

const (
	LowComplexity Complexity = iota
	MediumComplexity
	HighComplexity
)

// String method for Complexity enum
func (c Complexity) String() string {
	switch c {
	case LowComplexity:
		return "Low"
	case MediumComplexity:
		return "Medium"
	case HighComplexity:
		return "High"
	default:
		return "Unknown"
	}
}

// ParseComplexity parses a complexity label from text
func ParseComplexity(s string) (Complexity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return LowComplexity, nil
	case "medium":
		return MediumComplexity, nil
	case "high":
		return HighComplexity, nil
	default:
		return LowComplexity, fmt.Errorf("invalid complexity: %s (expected: Low, Medium, or High)", s)
	}
}

// Item represents one part number inside an ECN with its demand estimate
type Item struct {
	PartNumber PartNumber
	Complexity Complexity
	EAU        int // Estimated Annual Use, whole units
}

// SourcingRecord is one row of the item master: a single part quoted by a
// single supplier under one ECN, plus the delivery bookkeeping filled in
// once the business is awarded and samples are delivered.
type SourcingRecord struct {
	// ECN identification data
	Project    string
	ECN        string
	ECNRelease time.Time
	RFQDate    time.Time

	// Part number data
	PartNumber PartNumber
	Complexity Complexity
	EAU        int

	// Supplier data
	SupplierID    SupplierID
	SupplierName  string
	QuotationID   string
	QuotationDate time.Time
	Price         decimal.Decimal
	LeadTimeDays  int // quoted lead time; 0 means not quoted

	// Sample delivery data
	ETA          time.Time
	DeliveryDate time.Time

	// Evaluation inputs
	QuotationTimeDays int
	OTD               bool
	DeliveryTimeDays  int // days from award to delivery; valid when Awarded

	// Other information
	FYSpend decimal.Decimal // EAU * Price
	Awarded bool
}
