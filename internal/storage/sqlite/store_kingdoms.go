package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/stolenlands.quest/internal/kingdom/domain"
	"github.com/louisbranch/stolenlands.quest/internal/storage"
)

const kingdomColumns = `id, name, level, size, at_war,
food_now, luxuries_now, ore_now, lumber_now, stone_now,
food_next, luxuries_next, ore_next, lumber_next, stone_next,
rp_now, rp_next, rd_now, rd_next,
consumption_now, consumption_next, consumption_armies,
unrest, ruin_crime, ruin_decay, ruin_corruption, ruin_strife,
mines_quantity, mines_resources,
lumber_camps_quantity, lumber_camps_resources,
luxury_sources_quantity, luxury_sources_resources,
turns_without_event, feats, bonus_feats, skill_ranks`

// CreateKingdom inserts one kingdom record.
func (s *Store) CreateKingdom(ctx context.Context, kingdom domain.Kingdom) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(kingdom.ID) == "" {
		return fmt.Errorf("kingdom id is required")
	}
	if err := kingdom.Validate(); err != nil {
		return err
	}

	feats, err := marshalStrings(kingdom.Feats)
	if err != nil {
		return fmt.Errorf("marshal feats: %w", err)
	}
	bonusFeats, err := marshalStrings(kingdom.BonusFeats)
	if err != nil {
		return fmt.Errorf("marshal bonus feats: %w", err)
	}
	skillRanks, err := marshalRanks(kingdom.SkillRanks)
	if err != nil {
		return fmt.Errorf("marshal skill ranks: %w", err)
	}

	now := toMillis(time.Now())
	_, err = s.sqlDB.ExecContext(ctx, `INSERT INTO kingdoms (`+kingdomColumns+`, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		kingdom.ID, kingdom.Name, kingdom.Level, kingdom.Size, boolToInt(kingdom.AtWar),
		kingdom.Commodities.Now.Food, kingdom.Commodities.Now.Luxuries, kingdom.Commodities.Now.Ore, kingdom.Commodities.Now.Lumber, kingdom.Commodities.Now.Stone,
		kingdom.Commodities.Next.Food, kingdom.Commodities.Next.Luxuries, kingdom.Commodities.Next.Ore, kingdom.Commodities.Next.Lumber, kingdom.Commodities.Next.Stone,
		kingdom.ResourcePoints.Now, kingdom.ResourcePoints.Next,
		kingdom.ResourceDice.Now, kingdom.ResourceDice.Next,
		kingdom.Consumption.Now, kingdom.Consumption.Next, kingdom.Consumption.Armies,
		kingdom.Unrest,
		kingdom.Ruin.Crime.Value, kingdom.Ruin.Decay.Value, kingdom.Ruin.Corruption.Value, kingdom.Ruin.Strife.Value,
		kingdom.WorkSites.Mines.Quantity, kingdom.WorkSites.Mines.Resources,
		kingdom.WorkSites.LumberCamps.Quantity, kingdom.WorkSites.LumberCamps.Resources,
		kingdom.WorkSites.LuxurySources.Quantity, kingdom.WorkSites.LuxurySources.Resources,
		kingdom.TurnsWithoutEvent, feats, bonusFeats, skillRanks,
		now, now,
	)
	if err != nil {
		return fmt.Errorf("insert kingdom: %w", err)
	}
	return nil
}

// GetKingdom fetches one kingdom record by ID.
func (s *Store) GetKingdom(ctx context.Context, id string) (domain.Kingdom, error) {
	if err := ctx.Err(); err != nil {
		return domain.Kingdom{}, err
	}
	if s == nil || s.sqlDB == nil {
		return domain.Kingdom{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(id) == "" {
		return domain.Kingdom{}, fmt.Errorf("kingdom id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+kingdomColumns+` FROM kingdoms WHERE id = ?`, id)
	kingdom, err := scanKingdom(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Kingdom{}, storage.ErrNotFound
		}
		return domain.Kingdom{}, fmt.Errorf("select kingdom: %w", err)
	}
	return kingdom, nil
}

// ListKingdoms fetches every kingdom record ordered by name.
func (s *Store) ListKingdoms(ctx context.Context) ([]domain.Kingdom, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT `+kingdomColumns+` FROM kingdoms ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("select kingdoms: %w", err)
	}
	defer rows.Close()

	var kingdoms []domain.Kingdom
	for rows.Next() {
		kingdom, err := scanKingdom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan kingdom: %w", err)
		}
		kingdoms = append(kingdoms, kingdom)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kingdoms: %w", err)
	}
	return kingdoms, nil
}

// SaveKingdomPatch applies a partial update: only the patch's set
// groups are written, each group replaced wholesale.
func (s *Store) SaveKingdomPatch(ctx context.Context, id string, patch domain.Patch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("kingdom id is required")
	}
	if patch.IsZero() {
		return nil
	}

	var sets []string
	var args []any
	set := func(clause string, values ...any) {
		sets = append(sets, clause)
		args = append(args, values...)
	}

	if patch.Name != nil {
		set("name = ?", *patch.Name)
	}
	if patch.Level != nil {
		set("level = ?", *patch.Level)
	}
	if patch.Size != nil {
		set("size = ?", *patch.Size)
	}
	if patch.AtWar != nil {
		set("at_war = ?", boolToInt(*patch.AtWar))
	}
	if c := patch.Commodities; c != nil {
		set("food_now = ?, luxuries_now = ?, ore_now = ?, lumber_now = ?, stone_now = ?",
			c.Now.Food, c.Now.Luxuries, c.Now.Ore, c.Now.Lumber, c.Now.Stone)
		set("food_next = ?, luxuries_next = ?, ore_next = ?, lumber_next = ?, stone_next = ?",
			c.Next.Food, c.Next.Luxuries, c.Next.Ore, c.Next.Lumber, c.Next.Stone)
	}
	if p := patch.ResourcePoints; p != nil {
		set("rp_now = ?, rp_next = ?", p.Now, p.Next)
	}
	if d := patch.ResourceDice; d != nil {
		set("rd_now = ?, rd_next = ?", d.Now, d.Next)
	}
	if c := patch.Consumption; c != nil {
		set("consumption_now = ?, consumption_next = ?, consumption_armies = ?", c.Now, c.Next, c.Armies)
	}
	if patch.Unrest != nil {
		set("unrest = ?", *patch.Unrest)
	}
	if r := patch.Ruin; r != nil {
		set("ruin_crime = ?, ruin_decay = ?, ruin_corruption = ?, ruin_strife = ?",
			r.Crime.Value, r.Decay.Value, r.Corruption.Value, r.Strife.Value)
	}
	if w := patch.WorkSites; w != nil {
		set("mines_quantity = ?, mines_resources = ?, lumber_camps_quantity = ?, lumber_camps_resources = ?, luxury_sources_quantity = ?, luxury_sources_resources = ?",
			w.Mines.Quantity, w.Mines.Resources,
			w.LumberCamps.Quantity, w.LumberCamps.Resources,
			w.LuxurySources.Quantity, w.LuxurySources.Resources)
	}
	if patch.TurnsWithoutEvent != nil {
		set("turns_without_event = ?", *patch.TurnsWithoutEvent)
	}
	if patch.Feats != nil {
		feats, err := marshalStrings(*patch.Feats)
		if err != nil {
			return fmt.Errorf("marshal feats: %w", err)
		}
		set("feats = ?", feats)
	}
	if patch.BonusFeats != nil {
		bonusFeats, err := marshalStrings(*patch.BonusFeats)
		if err != nil {
			return fmt.Errorf("marshal bonus feats: %w", err)
		}
		set("bonus_feats = ?", bonusFeats)
	}
	if patch.SkillRanks != nil {
		skillRanks, err := marshalRanks(*patch.SkillRanks)
		if err != nil {
			return fmt.Errorf("marshal skill ranks: %w", err)
		}
		set("skill_ranks = ?", skillRanks)
	}

	set("updated_at = ?", toMillis(time.Now()))
	args = append(args, id)

	result, err := s.sqlDB.ExecContext(ctx,
		"UPDATE kingdoms SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("update kingdom: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update kingdom rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// DeleteKingdom removes one kingdom record and its settlements.
func (s *Store) DeleteKingdom(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("kingdom id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM kingdoms WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete kingdom: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete kingdom rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanKingdom(row rowScanner) (domain.Kingdom, error) {
	var k domain.Kingdom
	var atWar int
	var feats, bonusFeats, skillRanks string

	err := row.Scan(
		&k.ID, &k.Name, &k.Level, &k.Size, &atWar,
		&k.Commodities.Now.Food, &k.Commodities.Now.Luxuries, &k.Commodities.Now.Ore, &k.Commodities.Now.Lumber, &k.Commodities.Now.Stone,
		&k.Commodities.Next.Food, &k.Commodities.Next.Luxuries, &k.Commodities.Next.Ore, &k.Commodities.Next.Lumber, &k.Commodities.Next.Stone,
		&k.ResourcePoints.Now, &k.ResourcePoints.Next,
		&k.ResourceDice.Now, &k.ResourceDice.Next,
		&k.Consumption.Now, &k.Consumption.Next, &k.Consumption.Armies,
		&k.Unrest,
		&k.Ruin.Crime.Value, &k.Ruin.Decay.Value, &k.Ruin.Corruption.Value, &k.Ruin.Strife.Value,
		&k.WorkSites.Mines.Quantity, &k.WorkSites.Mines.Resources,
		&k.WorkSites.LumberCamps.Quantity, &k.WorkSites.LumberCamps.Resources,
		&k.WorkSites.LuxurySources.Quantity, &k.WorkSites.LuxurySources.Resources,
		&k.TurnsWithoutEvent, &feats, &bonusFeats, &skillRanks,
	)
	if err != nil {
		return domain.Kingdom{}, err
	}

	k.AtWar = atWar != 0
	if err := json.Unmarshal([]byte(feats), &k.Feats); err != nil {
		return domain.Kingdom{}, fmt.Errorf("unmarshal feats: %w", err)
	}
	if err := json.Unmarshal([]byte(bonusFeats), &k.BonusFeats); err != nil {
		return domain.Kingdom{}, fmt.Errorf("unmarshal bonus feats: %w", err)
	}
	if err := json.Unmarshal([]byte(skillRanks), &k.SkillRanks); err != nil {
		return domain.Kingdom{}, fmt.Errorf("unmarshal skill ranks: %w", err)
	}
	return k, nil
}

func marshalStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	payload, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func marshalRanks(values map[string]int) (string, error) {
	if values == nil {
		values = map[string]int{}
	}
	payload, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
