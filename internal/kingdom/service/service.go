// Package service orchestrates kingdom operations: it loads records,
// recomputes settlement aggregates, runs the pure turn steps, commits
// the resulting patch once, and emits narration.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/stolenlands.quest/internal/core/dice"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/domain"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/narration"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/settlement"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/turn"
	"github.com/louisbranch/stolenlands.quest/internal/storage"
)

// Deps wires the service's collaborators.
type Deps struct {
	Kingdoms    storage.KingdomStore
	Settlements storage.SettlementStore
	Catalog     *settlement.Catalog
	Roller      dice.Roller
	Emitter     narration.Emitter
	// Log optionally backs TurnLog reads; the StoreEmitter writes it.
	Log storage.TurnEventStore
}

// Service exposes the kingdom operations.
type Service struct {
	kingdoms    storage.KingdomStore
	settlements storage.SettlementStore
	catalog     *settlement.Catalog
	roller      dice.Roller
	emitter     narration.Emitter
	log         storage.TurnEventStore
	tracer      trace.Tracer
}

// New creates a kingdom service. Missing optional collaborators fall
// back to defaults: the bundled structure catalog, crypto-seeded dice,
// and discarded narration.
func New(deps Deps) (*Service, error) {
	if deps.Kingdoms == nil {
		return nil, fmt.Errorf("kingdom store is required")
	}
	if deps.Settlements == nil {
		return nil, fmt.Errorf("settlement store is required")
	}
	if deps.Catalog == nil {
		deps.Catalog = settlement.Default()
	}
	if deps.Roller == nil {
		deps.Roller = dice.CryptoRoller{}
	}
	if deps.Emitter == nil {
		deps.Emitter = narration.NopEmitter{}
	}
	return &Service{
		kingdoms:    deps.Kingdoms,
		settlements: deps.Settlements,
		catalog:     deps.Catalog,
		roller:      deps.Roller,
		emitter:     deps.Emitter,
		log:         deps.Log,
		tracer:      otel.Tracer("stolenlands.quest/kingdom/service"),
	}, nil
}

// CreateKingdom validates and stores a new kingdom, assigning an ID
// when the record has none.
func (s *Service) CreateKingdom(ctx context.Context, kingdom domain.Kingdom) (domain.Kingdom, error) {
	if strings.TrimSpace(kingdom.ID) == "" {
		kingdom.ID = uuid.NewString()
	}
	if err := kingdom.Validate(); err != nil {
		return domain.Kingdom{}, err
	}
	if err := s.kingdoms.CreateKingdom(ctx, kingdom); err != nil {
		return domain.Kingdom{}, err
	}
	return kingdom, nil
}

// Kingdom fetches one kingdom record.
func (s *Service) Kingdom(ctx context.Context, id string) (domain.Kingdom, error) {
	return s.kingdoms.GetKingdom(ctx, id)
}

// Kingdoms lists every stored kingdom.
func (s *Service) Kingdoms(ctx context.Context) ([]domain.Kingdom, error) {
	return s.kingdoms.ListKingdoms(ctx)
}

// PutSettlement validates and stores a settlement record, assigning an
// ID when the record has none.
func (s *Service) PutSettlement(ctx context.Context, record settlement.Record) (settlement.Record, error) {
	if strings.TrimSpace(record.ID) == "" {
		record.ID = uuid.NewString()
	}
	if err := record.Validate(); err != nil {
		return settlement.Record{}, err
	}
	if err := s.settlements.PutSettlement(ctx, record); err != nil {
		return settlement.Record{}, err
	}
	return record, nil
}

// Settlements lists a kingdom's settlement records.
func (s *Service) Settlements(ctx context.Context, kingdomID string) ([]settlement.Record, error) {
	return s.settlements.ListSettlements(ctx, kingdomID)
}

// Aggregate recomputes the kingdom-wide settlement aggregate. Each
// location folds its own structures; non-capital locations inherit the
// capital's unlocked activities before the kingdom-wide merge.
func (s *Service) Aggregate(ctx context.Context, kingdomID string) (settlement.Aggregate, []settlement.Record, error) {
	records, err := s.settlements.ListSettlements(ctx, kingdomID)
	if err != nil {
		return settlement.Aggregate{}, nil, err
	}

	var capital settlement.Aggregate
	locals := make([]settlement.Aggregate, len(records))
	capitalIdx := -1
	for i, record := range records {
		structures, err := s.catalog.Resolve(record.Structures)
		if err != nil {
			return settlement.Aggregate{}, nil, err
		}
		locals[i] = settlement.Evaluate(structures, record.Level)
		if record.IsCapital && capitalIdx == -1 {
			capital = locals[i]
			capitalIdx = i
		}
	}

	merged := make([]settlement.Aggregate, len(locals))
	for i, local := range locals {
		if capitalIdx >= 0 && i != capitalIdx {
			merged[i] = settlement.MergeCapital(capital, local)
		} else {
			merged[i] = local
		}
	}

	return settlement.Merge(merged), records, nil
}

// commit saves the outcome's patch and emits its narration events.
func (s *Service) commit(ctx context.Context, kingdomID string, outcome turn.Outcome) error {
	if err := s.kingdoms.SaveKingdomPatch(ctx, kingdomID, outcome.Patch); err != nil {
		return err
	}
	return narration.EmitAll(ctx, s.emitter, kingdomID, outcome.Events)
}
