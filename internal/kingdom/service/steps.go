package service

import (
	"context"

	"github.com/louisbranch/stolenlands.quest/internal/kingdom/turn"
)

// CollectResources runs the collect step and commits the result.
func (s *Service) CollectResources(ctx context.Context, kingdomID string) (turn.Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "kingdom.CollectResources")
	defer span.End()

	kingdom, err := s.kingdoms.GetKingdom(ctx, kingdomID)
	if err != nil {
		return turn.Outcome{}, err
	}
	aggregate, _, err := s.Aggregate(ctx, kingdomID)
	if err != nil {
		return turn.Outcome{}, err
	}

	outcome, err := turn.CollectResources(ctx, s.roller, kingdom, aggregate.Storage)
	if err != nil {
		return turn.Outcome{}, err
	}
	if err := s.commit(ctx, kingdomID, outcome); err != nil {
		return turn.Outcome{}, err
	}
	return outcome, nil
}

// PayConsumption runs the consumption step and commits the result.
func (s *Service) PayConsumption(ctx context.Context, kingdomID string) (turn.Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "kingdom.PayConsumption")
	defer span.End()

	kingdom, err := s.kingdoms.GetKingdom(ctx, kingdomID)
	if err != nil {
		return turn.Outcome{}, err
	}
	aggregate, _, err := s.Aggregate(ctx, kingdomID)
	if err != nil {
		return turn.Outcome{}, err
	}

	outcome := turn.PayConsumption(kingdom, aggregate.Consumption)
	if err := s.commit(ctx, kingdomID, outcome); err != nil {
		return turn.Outcome{}, err
	}
	return outcome, nil
}

// AdjustUnrest runs the unrest step and commits the result.
func (s *Service) AdjustUnrest(ctx context.Context, kingdomID string) (turn.Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "kingdom.AdjustUnrest")
	defer span.End()

	kingdom, err := s.kingdoms.GetKingdom(ctx, kingdomID)
	if err != nil {
		return turn.Outcome{}, err
	}
	records, err := s.settlements.ListSettlements(ctx, kingdomID)
	if err != nil {
		return turn.Outcome{}, err
	}

	outcome, err := turn.AdjustUnrest(ctx, s.roller, kingdom, records)
	if err != nil {
		return turn.Outcome{}, err
	}
	if err := s.commit(ctx, kingdomID, outcome); err != nil {
		return turn.Outcome{}, err
	}
	return outcome, nil
}

// CheckForEvent runs the event check and commits the result.
func (s *Service) CheckForEvent(ctx context.Context, kingdomID string) (turn.Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "kingdom.CheckForEvent")
	defer span.End()

	kingdom, err := s.kingdoms.GetKingdom(ctx, kingdomID)
	if err != nil {
		return turn.Outcome{}, err
	}

	outcome, err := turn.CheckForEvent(ctx, s.roller, kingdom)
	if err != nil {
		return turn.Outcome{}, err
	}
	if err := s.commit(ctx, kingdomID, outcome); err != nil {
		return turn.Outcome{}, err
	}
	return outcome, nil
}

// EndTurn rolls the staged columns over and commits the result.
func (s *Service) EndTurn(ctx context.Context, kingdomID string) (turn.Outcome, error) {
	ctx, span := s.tracer.Start(ctx, "kingdom.EndTurn")
	defer span.End()

	kingdom, err := s.kingdoms.GetKingdom(ctx, kingdomID)
	if err != nil {
		return turn.Outcome{}, err
	}
	aggregate, _, err := s.Aggregate(ctx, kingdomID)
	if err != nil {
		return turn.Outcome{}, err
	}

	outcome := turn.EndTurn(kingdom, aggregate.Storage)
	if err := s.commit(ctx, kingdomID, outcome); err != nil {
		return turn.Outcome{}, err
	}
	return outcome, nil
}
