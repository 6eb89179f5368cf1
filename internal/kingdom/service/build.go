package service

import (
	"context"
	"fmt"
	"strconv"

	apperrors "github.com/louisbranch/stolenlands.quest/internal/errors"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/settlement"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/turn"
)

// BuildStructure pays a catalog structure's construction costs and
// records the placement on the settlement. The proficiency gate and
// the payment are checked against the kingdom before anything is
// written; a failed gate leaves both records untouched.
func (s *Service) BuildStructure(ctx context.Context, kingdomID, settlementID, structureName string) error {
	ctx, span := s.tracer.Start(ctx, "kingdom.BuildStructure")
	defer span.End()

	kingdom, err := s.kingdoms.GetKingdom(ctx, kingdomID)
	if err != nil {
		return err
	}
	record, err := s.settlements.GetSettlement(ctx, settlementID)
	if err != nil {
		return err
	}
	structure, err := s.catalog.Get(structureName)
	if err != nil {
		return err
	}

	eligible, err := settlement.CanBuild(kingdom, structure)
	if err != nil {
		return err
	}
	if !eligible {
		return apperrors.WithMetadata(
			apperrors.CodeStructureNotProficient,
			fmt.Sprintf("kingdom lacks the proficiency to build %s", structure.Name),
			map[string]string{"Structure": structure.Name},
		)
	}

	patch, err := settlement.PayStructureCosts(kingdom, structure)
	if err != nil {
		return err
	}
	if err := s.kingdoms.SaveKingdomPatch(ctx, kingdomID, patch); err != nil {
		return err
	}

	record.Structures = append(record.Structures, structure.Name)
	if err := s.settlements.PutSettlement(ctx, record); err != nil {
		return err
	}

	costs := structure.Costs()
	return s.emitter.Emit(ctx, kingdomID, turn.Event{
		Key: "structure.built",
		Metadata: map[string]string{
			"Structure":  structure.Name,
			"Settlement": record.Name,
			"RP":         strconv.Itoa(costs.RP),
		},
	})
}
