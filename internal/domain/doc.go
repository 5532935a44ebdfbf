// Package domain defines the core domain types and interfaces.
//
// This package contains the Job record type, the Registry contract implemented
// by the in-memory store, and the shared error values. No implementation code -
// just contracts. Prevents circular imports by keeping interfaces on the
// consumer side.
package domain
