// Package roles defines the closed set of authorization tiers used by the
// metro client and the pure predicates evaluated against them.
//
// # Architecture boundaries
//
// roles owns the [Label] enumeration and its wire codec. Authorization
// decisions (route gating, home-route selection) live in the gate and root
// packages; this package only answers set-membership questions.
//
// # What this package must NOT do
//
//   - Perform I/O or touch session state.
//   - Import any other package of this module.
//   - Treat an unknown wire string as an error; unknown roles are simply
//     invisible to the predicates.
package roles
