// Package bbolt provides a BoltDB-backed turn event log.
package bbolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/stolenlands.quest/internal/storage"
	"github.com/louisbranch/stolenlands.quest/internal/storage/cursor"
	"go.etcd.io/bbolt"
)

const eventBucket = "turn_events"

// Store provides a BoltDB-backed turn event log.
type Store struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed log at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// AppendTurnEvent appends one event to the kingdom's log. The store
// assigns the sequence number.
func (s *Store) AppendTurnEvent(ctx context.Context, event storage.TurnEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(event.KingdomID) == "" {
		return fmt.Errorf("kingdom id is required")
	}
	if strings.TrimSpace(event.Key) == "" {
		return fmt.Errorf("event key is required")
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		root := tx.Bucket([]byte(eventBucket))
		if root == nil {
			return fmt.Errorf("event bucket is missing")
		}
		bucket, err := root.CreateBucketIfNotExists([]byte(event.KingdomID))
		if err != nil {
			return fmt.Errorf("create kingdom log bucket: %w", err)
		}
		seq, err := bucket.NextSequence()
		if err != nil {
			return fmt.Errorf("next log sequence: %w", err)
		}
		event.Seq = seq

		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal event: %w", err)
		}
		return bucket.Put(seqKey(seq), payload)
	})
}

// ListTurnEvents returns a page of the kingdom's log, oldest first.
// An empty page token starts from the beginning; an empty returned
// token means the log is exhausted.
func (s *Store) ListTurnEvents(ctx context.Context, kingdomID string, pageSize int, pageToken string) ([]storage.TurnEvent, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}
	if s == nil || s.db == nil {
		return nil, "", fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(kingdomID) == "" {
		return nil, "", fmt.Errorf("kingdom id is required")
	}
	if pageSize <= 0 {
		pageSize = 50
	}

	after := uint64(0)
	if pageToken != "" {
		c, err := cursor.Decode(pageToken)
		if err != nil {
			return nil, "", fmt.Errorf("decode page token: %w", err)
		}
		if err := cursor.ValidateFilterHash(c, kingdomID); err != nil {
			return nil, "", fmt.Errorf("validate page token: %w", err)
		}
		after = c.Seq
	}

	var events []storage.TurnEvent
	err := s.db.View(func(tx *bbolt.Tx) error {
		root := tx.Bucket([]byte(eventBucket))
		if root == nil {
			return fmt.Errorf("event bucket is missing")
		}
		bucket := root.Bucket([]byte(kingdomID))
		if bucket == nil {
			return nil
		}

		c := bucket.Cursor()
		key, value := c.Seek(seqKey(after + 1))
		for ; key != nil && len(events) < pageSize; key, value = c.Next() {
			var event storage.TurnEvent
			if err := json.Unmarshal(value, &event); err != nil {
				return fmt.Errorf("unmarshal event: %w", err)
			}
			events = append(events, event)
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	nextToken := ""
	if len(events) == pageSize {
		token, err := cursor.Encode(cursor.NewForwardCursor(events[len(events)-1].Seq, kingdomID))
		if err != nil {
			return nil, "", fmt.Errorf("encode page token: %w", err)
		}
		nextToken = token
	}
	return events, nextToken, nil
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(eventBucket))
		if err != nil {
			return fmt.Errorf("create event bucket: %w", err)
		}
		return nil
	})
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}

var _ storage.TurnEventStore = (*Store)(nil)
