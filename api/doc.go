// Package api is the typed HTTP client for the metro backend.
//
// All endpoints share one [Client]: it injects the bearer token from an
// injected [TokenSource], stamps every request with an X-Request-Id, decodes
// the backend's uniform envelope {code, data, message, success}, and maps
// transport and status failures onto the [Error] taxonomy (network,
// unauthorized, forbidden, not found, server, validation).
//
// # Architecture boundaries
//
// api owns wire DTOs and request/response plumbing. It holds no session
// state: token lifecycle and profile caching live in the root package, and
// entity caching lives in stores.
//
// # What this package must NOT do
//
//   - Store or clear tokens; it only reads them through [TokenSource].
//   - Interpret a 401 beyond classifying it; the session engine decides
//     what invalidation means.
//   - Retry requests.
package api
