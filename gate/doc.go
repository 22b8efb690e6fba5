// Package gate decides, before any view renders, whether a navigation is
// allowed. It is the client's only authorization chokepoint.
//
// An [Evaluator] runs a fixed state machine per navigation attempt:
// public routes pass untouched; authenticated routes without a token
// redirect to login carrying the intended destination; a token without a
// cached profile triggers one profile fetch, whose failure logs the
// session out; finally the route's role requirements are checked any-of
// against the profile. Evaluation never fails — every branch resolves to
// an explicit allow or redirect.
//
// Decisions are recomputed on every navigation. The profile is cached by
// the session, but the role decision is not: recomputing is cheap and
// stays correct after role changes mid-session. When navigations overlap,
// last-request-wins: a decision whose target was superseded by a newer
// Evaluate call comes back marked [ActionSuperseded] and must be dropped.
//
// # What this package must NOT do
//
//   - Mutate session state beyond the logout triggered by a failed
//     profile fetch.
//   - Cache decisions across navigations.
//   - Return errors for access outcomes.
package gate
