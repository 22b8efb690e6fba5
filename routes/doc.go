// Package routes holds the static navigation map of the metro client: a
// tree of path segments annotated with authentication and role requirements.
//
// A [Table] is constructed once at startup and never mutated. The gate
// package matches incoming paths against it and aggregates the matched
// chain's requirements; this package has no behavior beyond matching and
// metadata lookup.
//
// # What this package must NOT do
//
//   - Decide access. Aggregation helpers report requirements; the gate
//     applies them.
//   - Mutate a table after construction.
//   - Perform I/O.
package routes
