package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/louisbranch/stolenlands.quest/internal/kingdom/domain"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/resource"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/turn"
	"github.com/louisbranch/stolenlands.quest/internal/storage"
)

// AdjustResult reports a committed resource adjustment.
type AdjustResult struct {
	// Delta is the evaluated formula value applied to the resource.
	Delta int
	// Value is the resource's value after the adjustment.
	Value int
	// Missing is the shortfall when losing more than was available.
	// Surfaced only on the current turn's column.
	Missing int
}

// AdjustResource applies a generic gain or lose to any resource tag.
// The formula may be a flat integer, dice notation, or a die quantity
// for roll-resource-dice. Capacity ceilings apply only to commodity
// tags on the next-turn column.
func (s *Service) AdjustResource(ctx context.Context, kingdomID string, tag resource.Type, column resource.TurnColumn, mode domain.DeltaMode, formula string) (AdjustResult, error) {
	ctx, span := s.tracer.Start(ctx, "kingdom.AdjustResource")
	defer span.End()

	kingdom, err := s.kingdoms.GetKingdom(ctx, kingdomID)
	if err != nil {
		return AdjustResult{}, err
	}
	aggregate, _, err := s.Aggregate(ctx, kingdomID)
	if err != nil {
		return AdjustResult{}, err
	}

	delta, err := resource.EvaluateValue(ctx, s.roller, kingdom, tag, formula)
	if err != nil {
		return AdjustResult{}, err
	}
	current, err := resource.Read(kingdom, tag, column)
	if err != nil {
		return AdjustResult{}, err
	}

	limit := resource.Limit(kingdom, aggregate.Storage, tag, column)
	result := domain.ApplyDelta(current, delta, mode, limit)
	value := result.Value
	if limit != nil {
		value = domain.ClampToCapacity(value, *limit)
	}

	patch, err := resource.Write(kingdom, tag, column, value)
	if err != nil {
		return AdjustResult{}, err
	}
	if err := s.kingdoms.SaveKingdomPatch(ctx, kingdomID, patch); err != nil {
		return AdjustResult{}, err
	}

	adjusted := AdjustResult{Delta: delta, Value: value}
	if column == resource.TurnNow {
		adjusted.Missing = result.Missing
	}

	event := turn.Event{
		Key: "resource.adjusted",
		Metadata: map[string]string{
			"Resource": string(tag),
			"Column":   string(column),
			"Mode":     string(mode),
			"Delta":    strconv.Itoa(delta),
			"Value":    strconv.Itoa(value),
		},
	}
	if err := s.emitter.Emit(ctx, kingdomID, event); err != nil {
		return AdjustResult{}, err
	}
	return adjusted, nil
}

// TurnLog returns a page of the kingdom's narration log.
func (s *Service) TurnLog(ctx context.Context, kingdomID string, pageSize int, pageToken string) ([]storage.TurnEvent, string, error) {
	if s.log == nil {
		return nil, "", fmt.Errorf("turn log is not configured")
	}
	return s.log.ListTurnEvents(ctx, kingdomID, pageSize, pageToken)
}
