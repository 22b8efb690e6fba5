// Package tokenstore persists the bearer token of the current session.
//
// A token store holds at most one string. Absence is reported as an empty
// string, never an error: "no token" is the normal logged-out state. No
// expiry is tracked locally; an expired token is detected reactively when a
// later API call fails with an unauthorized error.
//
// Three implementations are provided: [Memory] for tests and short-lived
// processes, [File] for durability across restarts, and [Redis] for
// deployments that share one session across processes.
//
// # What this package must NOT do
//
//   - Validate tokens. [ExpiresAt] peeks at JWT claims without verifying
//     the signature and is advisory only.
//   - Cache profile state; that belongs to the session engine.
package tokenstore
