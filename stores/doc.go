// Package stores caches backend reference data on the client.
//
// Each store wraps one slice of the API surface, refreshes its cache
// wholesale from a list endpoint, and answers lookups from memory.
// Stores never invent data: every entry came from the backend, and a
// Refresh replaces the previous generation completely, so a deleted
// entity disappears on the next refresh rather than lingering.
//
// Local mutation helpers (reply appends, status updates) call the
// backend first and mirror the confirmed result into the cache, keeping
// the displayed thread consistent without a full refresh.
//
// All stores are safe for concurrent use.
//
// # What this package must NOT do
//
//   - Hold session or authorization state; that belongs to the engine
//     and the gate.
//   - Serve stale data as fresh: zero values and false mean "not
//     cached", and callers decide when to Refresh.
package stores
