// Package storage defines the persistence interfaces for the kingdom
// engine.
//
// It provides a high-level abstraction for storing kingdom records,
// settlement records, and the append-only turn narration log.
// Implementations of these interfaces (SQLite for records, bbolt for
// the turn log) live in subpackages.
package storage
