// Package database provides the database abstraction layer for ClubSphere.
//
// The Database interface abstracts SurrealDB behind three query methods:
//   - Query: Returns multiple results (for SELECT queries returning lists)
//   - QueryOne: Returns a single result (for SELECT by ID)
//   - Execute: No return value (for CREATE/UPDATE/DELETE mutations)
//
// Standard errors are defined for common failure cases and checked with
// errors.Is():
//   - ErrNotFound: Record does not exist
//   - ErrDuplicate: Unique constraint violation
//   - ErrConflict: Version-token mismatch on an aggregate write
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Club aggregates are stored as single documents and written whole; the
// repository layer implements the version compare-and-swap on top of
// Query by inspecting whether the guarded UPDATE matched a row.
package database
