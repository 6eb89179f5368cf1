package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/stolenlands.quest/internal/kingdom/settlement"
	"github.com/louisbranch/stolenlands.quest/internal/storage"
)

const settlementColumns = `id, kingdom_id, name, level, is_capital, overcrowded, secondary_territory, structures`

// PutSettlement inserts or replaces one settlement record.
func (s *Store) PutSettlement(ctx context.Context, record settlement.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return fmt.Errorf("settlement id is required")
	}
	if err := record.Validate(); err != nil {
		return err
	}

	structures, err := marshalStrings(record.Structures)
	if err != nil {
		return fmt.Errorf("marshal structures: %w", err)
	}

	now := toMillis(time.Now())
	_, err = s.sqlDB.ExecContext(ctx, `INSERT INTO settlements (`+settlementColumns+`, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    kingdom_id = excluded.kingdom_id,
    name = excluded.name,
    level = excluded.level,
    is_capital = excluded.is_capital,
    overcrowded = excluded.overcrowded,
    secondary_territory = excluded.secondary_territory,
    structures = excluded.structures,
    updated_at = excluded.updated_at`,
		record.ID, record.KingdomID, record.Name, record.Level,
		boolToInt(record.IsCapital), boolToInt(record.Overcrowded), boolToInt(record.SecondaryTerritory),
		structures, now, now,
	)
	if err != nil {
		return fmt.Errorf("upsert settlement: %w", err)
	}
	return nil
}

// GetSettlement fetches one settlement record by ID.
func (s *Store) GetSettlement(ctx context.Context, id string) (settlement.Record, error) {
	if err := ctx.Err(); err != nil {
		return settlement.Record{}, err
	}
	if s == nil || s.sqlDB == nil {
		return settlement.Record{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(id) == "" {
		return settlement.Record{}, fmt.Errorf("settlement id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `SELECT `+settlementColumns+` FROM settlements WHERE id = ?`, id)
	record, err := scanSettlement(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return settlement.Record{}, storage.ErrNotFound
		}
		return settlement.Record{}, fmt.Errorf("select settlement: %w", err)
	}
	return record, nil
}

// ListSettlements fetches a kingdom's settlements, capital first, then
// by name.
func (s *Store) ListSettlements(ctx context.Context, kingdomID string) ([]settlement.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(kingdomID) == "" {
		return nil, fmt.Errorf("kingdom id is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT `+settlementColumns+` FROM settlements WHERE kingdom_id = ? ORDER BY is_capital DESC, name`, kingdomID)
	if err != nil {
		return nil, fmt.Errorf("select settlements: %w", err)
	}
	defer rows.Close()

	var records []settlement.Record
	for rows.Next() {
		record, err := scanSettlement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan settlement: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate settlements: %w", err)
	}
	return records, nil
}

// DeleteSettlement removes one settlement record.
func (s *Store) DeleteSettlement(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("settlement id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `DELETE FROM settlements WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete settlement: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete settlement rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanSettlement(row rowScanner) (settlement.Record, error) {
	var record settlement.Record
	var isCapital, overcrowded, secondary int
	var structures string

	err := row.Scan(
		&record.ID, &record.KingdomID, &record.Name, &record.Level,
		&isCapital, &overcrowded, &secondary, &structures,
	)
	if err != nil {
		return settlement.Record{}, err
	}

	record.IsCapital = isCapital != 0
	record.Overcrowded = overcrowded != 0
	record.SecondaryTerritory = secondary != 0
	if err := json.Unmarshal([]byte(structures), &record.Structures); err != nil {
		return settlement.Record{}, fmt.Errorf("unmarshal structures: %w", err)
	}
	return record, nil
}
