// Package database provides the storage abstraction for the Biolink API.
//
// The Database interface wraps SurrealDB with three query shapes:
//   - Query: SELECT queries returning lists
//   - QueryOne: point reads returning a single record
//   - Execute: mutations with no return value
//
// # Transactions
//
// Multi-record atomicity goes through AtomicBatch: statements accumulate in
// memory and are wrapped in BEGIN TRANSACTION / COMMIT TRANSACTION at
// execute time, so the store commits them all-or-nothing. There is no
// isolation between Add() calls; reads that decide what to write happen
// before the batch is built, and a conflicting concurrent commit fails the
// whole batch without leaving partial state.
//
// # Error Handling
//
// Sentinel errors are defined for common failure cases and matched with
// errors.Is in calling code:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // handle missing record
//	}
package database
