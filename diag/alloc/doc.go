// Package alloc provides the allocation indirection layer: a single
// allocate/resize/release primitive dispatched to a pluggable backend.
//
// # Request protocol
//
// Every memory operation is one call to Allocator.Allocate with a
// Request and an optional existing Block. The operation performed is
// selected purely by the (total, block) combination, where
// total = Head + Count*Size:
//
//	total == 0, block == nil  → no-op
//	total == 0, block != nil  → release
//	total  > 0, block == nil  → fresh allocation
//	total  > 0, block != nil  → resize in place or move
//
// There is no separate malloc/calloc/realloc/free surface; the
// convenience wrappers in package diag express all of those through
// this one primitive.
//
// # Backends
//
// Passthrough: forwards directly to a Provider, no bookkeeping. This is
// the default when no debug instrumentation is requested.
//
// Tracking: additionally records every live allocation in a registry (a
// doubly linked list of entries in insertion order) together with the
// provenance supplied in the Request. The registry can be enumerated
// with Walk to inspect leaks and allocation provenance.
//
// # Failure semantics
//
// Allocation or resize failure is reported with an error and a nil
// Block; the original block, its contents and its registry entry are
// left untouched. No partial registry mutation occurs on any failure
// path.
//
// # Thread safety
//
// Passthrough is as safe as its Provider. Tracking serializes all
// registry mutation internally; Walk holds a read lock for the duration
// of the traversal, so a visitor must not allocate or release through
// the same Tracking instance.
package alloc
