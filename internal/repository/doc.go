// Package repository implements the data access layer for the Biolink API.
//
// Each repository wraps a database.Database handle and speaks SurrealQL.
// Registration and follow-edge mutations are the only multi-record writes;
// both go through database batch transactions so the store commits them
// all-or-nothing. View and click counters use plain single-statement
// increments on purpose: they are commutative and loss-tolerant.
//
// Records come back from the SurrealDB client in loosely typed form
// (record IDs as structured values, timestamps as custom datetime types);
// helpers.go normalizes them before mapping onto model structs.
package repository
