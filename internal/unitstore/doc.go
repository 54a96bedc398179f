// Package unitstore provides an in-memory, thread-safe guard that resolves
// every build unit at most once per invocation.
//
// # Purpose
//
// A build unit's record must be identical every time it is consulted. Once
// runs the resolution for a unit on first use and hands back the stored entry
// afterwards, so a unit is never re-resolved. Get reads a finished entry back
// without resolving anything.
//
// # Concurrency Model
//
// Entries live in a sync.Map keyed by unit name. Concurrent Once calls for the
// same unit share a single resolution through a per-unit sync.Once cell.
package unitstore
