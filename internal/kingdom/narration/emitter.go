package narration

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/louisbranch/stolenlands.quest/internal/kingdom/turn"
	"github.com/louisbranch/stolenlands.quest/internal/storage"
)

// Emitter delivers one narration event to a sink.
type Emitter interface {
	Emit(ctx context.Context, kingdomID string, event turn.Event) error
}

// EmitAll delivers a step's events in order, stopping on the first
// failure.
func EmitAll(ctx context.Context, e Emitter, kingdomID string, events []turn.Event) error {
	for _, event := range events {
		if err := e.Emit(ctx, kingdomID, event); err != nil {
			return err
		}
	}
	return nil
}

// WriterEmitter renders events through a catalog and writes one line
// per event.
type WriterEmitter struct {
	out     io.Writer
	catalog *Catalog
}

// NewWriterEmitter creates a writer-backed emitter. A nil catalog
// falls back to the built-in messages.
func NewWriterEmitter(out io.Writer, catalog *Catalog) *WriterEmitter {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &WriterEmitter{out: out, catalog: catalog}
}

// Emit writes the formatted message for the event.
func (e *WriterEmitter) Emit(_ context.Context, _ string, event turn.Event) error {
	_, err := fmt.Fprintln(e.out, e.catalog.Format(event.Key, event.Metadata))
	return err
}

// StoreEmitter appends events to the turn log. It is a no-op when the
// store is nil.
type StoreEmitter struct {
	store storage.TurnEventStore
	clock func() time.Time
}

// NewStoreEmitter creates a store-backed emitter.
func NewStoreEmitter(store storage.TurnEventStore) *StoreEmitter {
	return &StoreEmitter{store: store, clock: time.Now}
}

// Emit records the event against the kingdom's turn log.
func (e *StoreEmitter) Emit(ctx context.Context, kingdomID string, event turn.Event) error {
	if e == nil || e.store == nil {
		return nil
	}
	return e.store.AppendTurnEvent(ctx, storage.TurnEvent{
		KingdomID: kingdomID,
		Key:       event.Key,
		Metadata:  event.Metadata,
		Timestamp: e.clock().UTC(),
	})
}

// MultiEmitter fans one event out to several sinks in order.
type MultiEmitter []Emitter

// Emit delivers the event to every sink, stopping on the first
// failure.
func (m MultiEmitter) Emit(ctx context.Context, kingdomID string, event turn.Event) error {
	for _, e := range m {
		if err := e.Emit(ctx, kingdomID, event); err != nil {
			return err
		}
	}
	return nil
}

// NopEmitter discards every event.
type NopEmitter struct{}

// Emit discards the event.
func (NopEmitter) Emit(context.Context, string, turn.Event) error { return nil }

var (
	_ Emitter = (*WriterEmitter)(nil)
	_ Emitter = (*StoreEmitter)(nil)
	_ Emitter = MultiEmitter(nil)
	_ Emitter = NopEmitter{}
)
