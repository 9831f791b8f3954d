// Package sqlite provides a SQLite-backed implementation of driven.HearingStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO. The database lives in memory and is discarded when the store is closed;
// records never outlive the process.
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Each hearing row carries a dense 0-based position
// column that mirrors its index in the ordered sequence.
//
// # Thread Safety
//
// The pool is pinned to a single connection, since every connection to
// ":memory:" would otherwise open its own empty database. Multi-statement
// writes run inside a transaction.
package sqlite
