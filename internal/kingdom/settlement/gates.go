package settlement

import (
	"fmt"

	apperrors "github.com/louisbranch/stolenlands.quest/internal/errors"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/domain"
)

// CanBuild reports whether the kingdom's proficiency ranks satisfy
// every skill requirement in the structure's construction data. A
// structure with no skill requirements is always eligible. A required
// skill the kingdom does not track at all is a MissingSkill error
// rather than a plain false: the check cannot even be attempted.
func CanBuild(k domain.Kingdom, s domain.Structure) (bool, error) {
	for _, req := range s.SkillRequirements() {
		rank, ok := k.SkillRank(req.Skill)
		if !ok {
			return false, apperrors.WithMetadata(
				apperrors.CodeMissingSkill,
				fmt.Sprintf("kingdom is not trained in %s", req.Skill),
				map[string]string{"Skill": req.Skill},
			)
		}
		if rank < req.Rank {
			return false, nil
		}
	}
	return true, nil
}

// CanAfford reports whether each construction cost is covered by the
// kingdom's corresponding current-turn quantity. Absent costs are
// zero and trivially satisfied.
func CanAfford(k domain.Kingdom, s domain.Structure) bool {
	costs := s.Costs()
	now := k.Commodities.Now
	return costs.RP <= k.ResourcePoints.Now &&
		costs.Lumber <= now.Lumber &&
		costs.Ore <= now.Ore &&
		costs.Stone <= now.Stone &&
		costs.Luxuries <= now.Luxuries
}

// PayStructureCosts deducts the structure's construction costs from
// the current-turn columns, atomically. When any cost is not covered
// the whole payment fails with InsufficientResources and no patch.
func PayStructureCosts(k domain.Kingdom, s domain.Structure) (domain.Patch, error) {
	costs := s.Costs()
	now := k.Commodities.Now

	shortfalls := map[string]string{}
	report := func(resource string, have, need int) {
		if need > have {
			shortfalls[resource] = fmt.Sprintf("%d", need-have)
		}
	}
	report("rp", k.ResourcePoints.Now, costs.RP)
	report("lumber", now.Lumber, costs.Lumber)
	report("ore", now.Ore, costs.Ore)
	report("stone", now.Stone, costs.Stone)
	report("luxuries", now.Luxuries, costs.Luxuries)
	if len(shortfalls) > 0 {
		return domain.Patch{}, apperrors.WithMetadata(
			apperrors.CodeInsufficientResources,
			fmt.Sprintf("cannot afford %s", s.Name),
			shortfalls,
		)
	}

	commodities := k.Commodities
	commodities.Now.Lumber -= costs.Lumber
	commodities.Now.Ore -= costs.Ore
	commodities.Now.Stone -= costs.Stone
	commodities.Now.Luxuries -= costs.Luxuries
	points := k.ResourcePoints
	points.Now -= costs.RP

	return domain.Patch{
		Commodities:    &commodities,
		ResourcePoints: &points,
	}, nil
}
