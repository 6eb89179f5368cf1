package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/stolenlands.quest/internal/kingdom/domain"
	"github.com/louisbranch/stolenlands.quest/internal/kingdom/settlement"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// KingdomStore persists kingdom records. SaveKingdomPatch applies a
// partial update: only the patch's set groups are written, each group
// replaced wholesale.
type KingdomStore interface {
	CreateKingdom(ctx context.Context, kingdom domain.Kingdom) error
	GetKingdom(ctx context.Context, id string) (domain.Kingdom, error)
	SaveKingdomPatch(ctx context.Context, id string, patch domain.Patch) error
	ListKingdoms(ctx context.Context) ([]domain.Kingdom, error)
	DeleteKingdom(ctx context.Context, id string) error
}

// SettlementStore persists settlement records.
type SettlementStore interface {
	PutSettlement(ctx context.Context, record settlement.Record) error
	GetSettlement(ctx context.Context, id string) (settlement.Record, error)
	ListSettlements(ctx context.Context, kingdomID string) ([]settlement.Record, error)
	DeleteSettlement(ctx context.Context, id string) error
}

// TurnEvent is one appended narration log entry.
type TurnEvent struct {
	Seq       uint64
	KingdomID string
	Key       string
	Metadata  map[string]string
	Timestamp time.Time
}

// TurnEventStore appends and reads the per-kingdom turn log. Listing
// paginates oldest-first with an opaque token; an empty token starts
// from the beginning and an empty returned token means the log is
// exhausted.
type TurnEventStore interface {
	AppendTurnEvent(ctx context.Context, event TurnEvent) error
	ListTurnEvents(ctx context.Context, kingdomID string, pageSize int, pageToken string) ([]TurnEvent, string, error)
}
