package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/npisim/sourcing/pkg/application/dto"
	"github.com/npisim/sourcing/pkg/domain/entities"
	"github.com/npisim/sourcing/pkg/domain/repositories"
	"github.com/npisim/sourcing/pkg/infrastructure/events"
	"github.com/npisim/sourcing/pkg/simulation"
)

// SupplierSpec names one supplier in a scenario and grades its behavior.
type SupplierSpec struct {
	Name    string
	Profile simulation.SupplierProfile
}

// Scenario describes one Monte Carlo sourcing run: the project, the ECNs
// to source, the supplier pool, and the pacing of the process.
type Scenario struct {
	Project   entities.Project
	ECNs      []entities.ECN
	Suppliers []SupplierSpec
	Seed      uint64

	// RFQDelayDays is the gap between an ECN release and its RFQ;
	// AwardDelayDays the gap between the last quotation and the award.
	// Zero values take the defaults below.
	RFQDelayDays   int
	AwardDelayDays int
}

const (
	defaultRFQDelayDays   = 5
	defaultAwardDelayDays = 15
)

// SimulationService runs sourcing scenarios and persists the resulting
// item-master rows in the record repository.
type SimulationService struct {
	cfg     simulation.Config
	records repositories.RecordRepository
	store   events.EventStore
	logger  zerolog.Logger
}

// NewSimulationService creates a simulation service. The event store may
// be nil when no consumers exist.
func NewSimulationService(cfg simulation.Config, records repositories.RecordRepository, store events.EventStore, logger zerolog.Logger) *SimulationService {
	return &SimulationService{cfg: cfg, records: records, store: store, logger: logger}
}

// Run executes the scenario: every supplier quotes every ECN, each ECN is
// awarded to the lowest aggregate quote, and the produced records are
// loaded into the repository.
func (s *SimulationService) Run(ctx context.Context, scenario Scenario) (*dto.SimulationReport, error) {
	if len(scenario.ECNs) == 0 {
		return nil, fmt.Errorf("scenario has no ECNs to source")
	}
	if len(scenario.Suppliers) == 0 {
		return nil, fmt.Errorf("scenario has no suppliers")
	}

	rfqDelay := scenario.RFQDelayDays
	if rfqDelay == 0 {
		rfqDelay = defaultRFQDelayDays
	}
	awardDelay := scenario.AwardDelayDays
	if awardDelay == 0 {
		awardDelay = defaultAwardDelayDays
	}

	env, err := simulation.NewEnvironment(s.cfg, simulation.NewSeededRNG(scenario.Seed), s.logger)
	if err != nil {
		return nil, err
	}

	suppliers := make([]*simulation.Supplier, 0, len(scenario.Suppliers))
	pool := make([]entities.SupplierID, 0, len(scenario.Suppliers))
	for _, spec := range scenario.Suppliers {
		supplier := env.NewSupplier(spec.Name, spec.Profile)
		suppliers = append(suppliers, supplier)
		pool = append(pool, supplier.ID)
	}

	awardedTo := make(map[string]entities.SupplierID, len(scenario.ECNs))
	for _, ecn := range scenario.ECNs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rfqDate := ecn.ReleaseDate.AddDate(0, 0, rfqDelay)
		for _, item := range ecn.Items {
			if err := s.publish(ecn.ID, events.NewRFQIssuedEvent(scenario.Project.Name, ecn.ID, item.PartNumber, pool, rfqDate)); err != nil {
				return nil, err
			}
		}

		lastQuotation := rfqDate
		for _, supplier := range suppliers {
			quoted, err := env.Quote(supplier, ecn, rfqDate, 0)
			if err != nil {
				return nil, fmt.Errorf("failed to quote %s: %w", ecn.ID, err)
			}
			for _, record := range quoted {
				if err := s.publish(ecn.ID, events.NewQuotationReceivedEvent(record)); err != nil {
					return nil, err
				}
			}
			if d := quoted[0].QuotationDate; d.After(lastQuotation) {
				lastQuotation = d
			}
		}

		awardDate := lastQuotation.AddDate(0, 0, awardDelay)
		winner, err := env.Award(ecn.ID, awardDate, suppliers)
		if err != nil {
			return nil, fmt.Errorf("failed to award %s: %w", ecn.ID, err)
		}
		awardedTo[ecn.ID] = winner
	}

	records := env.Records()
	if err := s.records.LoadRecords(records); err != nil {
		return nil, fmt.Errorf("failed to store simulated records: %w", err)
	}

	for _, record := range records {
		if !record.Awarded {
			continue
		}
		if err := s.publish(record.ECN, events.NewBusinessAwardedEvent(record)); err != nil {
			return nil, err
		}
		if err := s.publish(record.ECN, events.NewSampleDeliveredEvent(record)); err != nil {
			return nil, err
		}
	}

	completed := events.NewSimulationCompletedEvent(
		scenario.Project.Name, scenario.Seed, len(scenario.ECNs), len(records))
	if err := s.publish(scenario.Project.Name, completed); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("project", scenario.Project.Name).
		Uint64("seed", scenario.Seed).
		Int("ecns", len(scenario.ECNs)).
		Int("records", len(records)).
		Msg("simulation completed")

	return &dto.SimulationReport{
		Project:     scenario.Project.Name,
		Seed:        scenario.Seed,
		Suppliers:   len(scenario.Suppliers),
		ECNCount:    len(scenario.ECNs),
		RecordCount: len(records),
		AwardedTo:   awardedTo,
	}, nil
}

// publish appends an event to the store, or does nothing when no store is
// configured.
func (s *SimulationService) publish(streamID string, event events.Event) error {
	if s.store == nil {
		return nil
	}
	if err := s.store.AppendEvent(streamID, event); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type(), err)
	}
	return nil
}

// DefaultScenario builds the copper-piping reference scenario: one NPI
// project, three ECNs released between Design Freeze and MCS, and a
// five-supplier pool spanning the behavioral profiles.
func DefaultScenario(seed uint64) Scenario {
	df := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	project := entities.Project{
		Name:         "HVAC-NPI-1",
		DesignFreeze: df,
		MCS:          df.AddDate(0, 5, 0),
		Pilot:        df.AddDate(0, 9, 0),
		SOP:          df.AddDate(1, 0, 0),
	}

	ecns := []entities.ECN{
		{
			Project:     project.Name,
			ID:          "ECN-0001",
			ReleaseDate: df.AddDate(0, 0, 10),
			Items: []entities.Item{
				{PartNumber: "CU-PIPE-0010", Complexity: entities.LowComplexity, EAU: 12000},
				{PartNumber: "CU-PIPE-0011", Complexity: entities.MediumComplexity, EAU: 6500},
			},
		},
		{
			Project:     project.Name,
			ID:          "ECN-0002",
			ReleaseDate: df.AddDate(0, 1, 0),
			Items: []entities.Item{
				{PartNumber: "CU-COIL-0020", Complexity: entities.HighComplexity, EAU: 1800},
			},
		},
		{
			Project:     project.Name,
			ID:          "ECN-0003",
			ReleaseDate: df.AddDate(0, 2, 0),
			Items: []entities.Item{
				{PartNumber: "CU-PIPE-0030", Complexity: entities.MediumComplexity, EAU: 4200},
				{PartNumber: "CU-ELBOW-0031", Complexity: entities.LowComplexity, EAU: 9800},
				{PartNumber: "CU-COIL-0032", Complexity: entities.HighComplexity, EAU: 950},
			},
		},
	}

	suppliers := []SupplierSpec{
		{Name: "Andes Copperworks", Profile: simulation.SupplierProfile{
			Price: simulation.LowProfile, Punctuality: simulation.LowProfile}},
		{Name: "Borealis Tubing", Profile: simulation.SupplierProfile{}},
		{Name: "Cobre Industrial", Profile: simulation.SupplierProfile{
			Quotation: simulation.HighProfile, Punctuality: simulation.HighProfile}},
		{Name: "Delta Piping Co", Profile: simulation.SupplierProfile{
			Price: simulation.HighProfile, Delivery: simulation.HighProfile}},
		{Name: "Estrella Metals", Profile: simulation.SupplierProfile{
			Price: simulation.LowProfile, Delivery: simulation.LowProfile}},
	}

	return Scenario{Project: project, ECNs: ecns, Suppliers: suppliers, Seed: seed}
}
