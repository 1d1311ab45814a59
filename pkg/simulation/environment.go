package simulation

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/npisim/sourcing/pkg/domain/entities"
)

// Supplier is a simulated supplier: the domain identity plus the
// behavioral profile its samples are drawn from.
type Supplier struct {
	entities.Supplier
	Profile SupplierProfile

	quotedECNs map[string]bool
}

// Environment drives one Monte Carlo sourcing scenario: suppliers quote
// ECNs, the cheapest aggregate quote wins the business, and the winner
// executes sample deliveries. All randomness flows through the injected
// source, so a fixed seed reproduces the dataset row for row.
type Environment struct {
	cfg    Config
	rng    *rand.Rand
	logger zerolog.Logger

	supplierSeq int
	records     []entities.SourcingRecord
}

// NewSeededRNG builds the deterministic PCG source used by the simulation.
func NewSeededRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+0x9e3779b97f4a7c15))
}

// NewEnvironment creates a simulation environment. The random source is
// required; pass NewSeededRNG for reproducible runs.
func NewEnvironment(cfg Config, rng *rand.Rand, logger zerolog.Logger) (*Environment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("simulation environment requires a random source")
	}
	return &Environment{cfg: cfg, rng: rng, logger: logger}, nil
}

// NewSupplier registers a supplier with a sequential SUPnnnnn identifier.
func (e *Environment) NewSupplier(name string, profile SupplierProfile) *Supplier {
	e.supplierSeq++
	id := entities.SupplierID(fmt.Sprintf("SUP%05d", e.supplierSeq))
	return &Supplier{
		Supplier:   entities.Supplier{ID: id, Name: name},
		Profile:    profile,
		quotedECNs: make(map[string]bool),
	}
}

// Quote simulates one supplier quoting every item on an ECN. The
// quotation turnaround is sampled from the supplier's quotation profile
// with a floor of nine days; prices are sampled per item complexity and
// clamped at the configured minimum. A supplier quotes each ECN at most
// once. A zero lead time means the supplier did not commit to one, so the
// environment samples it from the delivery profile; negative lead times
// are rejected.
func (e *Environment) Quote(s *Supplier, ecn entities.ECN, rfqDate time.Time, leadTimeDays int) ([]entities.SourcingRecord, error) {
	if s.quotedECNs[ecn.ID] {
		return nil, fmt.Errorf("supplier %s already quoted %s", s.Name, ecn.ID)
	}
	if leadTimeDays < 0 {
		return nil, fmt.Errorf("lead time cannot be less than 1 day, got %d", leadTimeDays)
	}
	if leadTimeDays == 0 {
		leadTimeDays = e.sampleDeliveryDays(s.Profile.Delivery)
	}

	quotationTime := int(math.Round(e.normal(quotationProfiles[s.Profile.Quotation])))
	if quotationTime < minimumQuotationTimeDays {
		quotationTime = minimumQuotationTimeDays
	}
	quotationDate := rfqDate.AddDate(0, 0, quotationTime)
	quotationID := uuid.NewString()

	quoted := make([]entities.SourcingRecord, 0, len(ecn.Items))
	for _, item := range ecn.Items {
		price := e.samplePrice(item.Complexity, s.Profile.Price)
		record := entities.SourcingRecord{
			Project:           ecn.Project,
			ECN:               ecn.ID,
			ECNRelease:        ecn.ReleaseDate,
			RFQDate:           rfqDate,
			PartNumber:        item.PartNumber,
			Complexity:        item.Complexity,
			EAU:               item.EAU,
			SupplierID:        s.ID,
			SupplierName:      s.Name,
			QuotationID:       quotationID,
			QuotationDate:     quotationDate,
			Price:             price,
			LeadTimeDays:      leadTimeDays,
			QuotationTimeDays: quotationTime,
			FYSpend:           price.Mul(decimal.NewFromInt(int64(item.EAU))),
		}
		quoted = append(quoted, record)
		e.records = append(e.records, record)
	}

	s.quotedECNs[ecn.ID] = true
	e.logger.Debug().
		Str("supplier", string(s.ID)).
		Str("ecn", ecn.ID).
		Int("items", len(quoted)).
		Int("quotation_time_days", quotationTime).
		Msg("quotation received")

	return quoted, nil
}

// Award grants the ECN's business to the supplier with the lowest
// aggregate quoted spend and executes its sample deliveries: the ETA is
// the award date plus the quoted lead time, and the actual delivery lands
// around the ETA according to the supplier's punctuality profile.
func (e *Environment) Award(ecnID string, awardDate time.Time, suppliers []*Supplier) (entities.SupplierID, error) {
	totals := make(map[entities.SupplierID]decimal.Decimal)
	for _, r := range e.records {
		if r.ECN == ecnID {
			totals[r.SupplierID] = totals[r.SupplierID].Add(r.FYSpend)
		}
	}
	if len(totals) == 0 {
		return "", fmt.Errorf("no quotations to award on %s", ecnID)
	}

	profiles := make(map[entities.SupplierID]SupplierProfile, len(suppliers))
	for _, s := range suppliers {
		profiles[s.ID] = s.Profile
	}

	var winner entities.SupplierID
	first := true
	for id, total := range totals {
		if first || total.LessThan(totals[winner]) || (total.Equal(totals[winner]) && id < winner) {
			winner = id
			first = false
		}
	}
	profile, ok := profiles[winner]
	if !ok {
		return "", fmt.Errorf("winning supplier %s not registered with the scenario", winner)
	}

	for i := range e.records {
		r := &e.records[i]
		if r.ECN != ecnID || r.SupplierID != winner {
			continue
		}
		r.Awarded = true
		r.ETA = awardDate.AddDate(0, 0, r.LeadTimeDays)
		r.DeliveryDate = e.sampleDeliveryDate(r.ETA, profile.Punctuality)
		r.OTD = !r.DeliveryDate.After(r.ETA)
		r.DeliveryTimeDays = int(r.DeliveryDate.Sub(awardDate).Hours() / 24)
	}

	e.logger.Info().
		Str("ecn", ecnID).
		Str("supplier", string(winner)).
		Str("total_spend", totals[winner].String()).
		Msg("business awarded")

	return winner, nil
}

// Records returns a copy of every record produced so far.
func (e *Environment) Records() []entities.SourcingRecord {
	out := make([]entities.SourcingRecord, len(e.records))
	copy(out, e.records)
	return out
}

func (e *Environment) samplePrice(complexity entities.Complexity, level ProfileLevel) decimal.Decimal {
	factor := priceProfileFactors[level]
	stats := e.cfg.Price[complexity]

	sampled := e.normal(meanStd{stats.Mean * factor.mean, stats.StdDev * factor.std})
	sampled = max(sampled, e.cfg.MinimumPrice*factor.mean)
	return decimal.NewFromFloat(math.Round(sampled*100) / 100)
}

func (e *Environment) sampleDeliveryDays(level ProfileLevel) int {
	factor := deliveryProfileFactors[level]
	sampled := e.normal(meanStd{baseDeliveryMean * factor.mean, baseDeliveryStdDev * factor.std})
	return int(math.Round(max(sampled, baseDeliveryMinimum*factor.mean)))
}

// sampleDeliveryDate places the actual delivery around the ETA: a
// punctuality draw decides the side, then the distance is sampled from
// the matching ETA-difference distribution.
func (e *Environment) sampleDeliveryDate(eta time.Time, level ProfileLevel) time.Time {
	if e.rng.Float64() < punctualityProbability[level] {
		early := int(math.Round(math.Abs(e.normal(punctualETADifference))))
		return eta.AddDate(0, 0, -early)
	}
	late := int(math.Round(math.Abs(e.normal(unpunctualETADifference))))
	if late < 1 {
		late = 1
	}
	return eta.AddDate(0, 0, late)
}

func (e *Environment) normal(ms meanStd) float64 {
	return e.rng.NormFloat64()*ms.std + ms.mean
}
