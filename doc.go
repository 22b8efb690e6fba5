// Package metro provides the session engine of the metro-information
// client: login and logout against the backend, a cached user profile,
// role-derived queries, and the collaborators the navigation gate needs to
// decide access.
//
// The package is designed for concurrent callers: Engine methods are safe
// to call from multiple goroutines after initialization through
// [Builder.Build]. Session state has a single logical writer at a time (the
// gate plus explicit login/logout actions); a mutex preserves the invariant
// that the cached profile is populated only while a token is stored.
//
// # Architecture boundaries
//
// metro is the public surface. It exposes [Engine], [Builder], [Config],
// the audit pipeline, and the metrics snapshot. Wire DTOs and HTTP plumbing
// live in api; token persistence in tokenstore; the role enumeration in
// roles; the navigation map in routes; the gate state machine in gate.
//
// # What this package must NOT do
//
//   - Render anything or hold view state.
//   - Talk to the backend except through the injected API interfaces.
//   - Cache an access decision; the gate recomputes on every navigation.
package metro
