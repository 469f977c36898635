// Package diag ties the allocation and logging indirection layers
// together: a Context selects which allocator and logger are active and
// supplies timestamps, and a set of convenience wrappers expresses the
// traditional malloc/calloc/realloc/free and leveled-logging surfaces
// through the two underlying protocols.
//
// Call sites are identified by explicit provenance (label, file,
// function, line); Caller captures it from the runtime so most callers
// never spell it out.
//
// Backends can also be chosen declaratively; see Config.
package diag
