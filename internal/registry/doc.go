// Package registry implements the in-memory job store.
//
// A single RWMutex guards the ordered slice: echo serves each request on its
// own goroutine, so read-modify-write sequences need the lock even though no
// handler blocks mid-operation. Lookup is a linear scan, which is fine at the
// scale this service targets.
package registry
