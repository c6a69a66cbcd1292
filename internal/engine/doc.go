// Package engine implements the collection engine: deck and note CRUD,
// search, integrity checking, and the synchronization primitives of the
// local study-material store.
//
// The engine never owns the collection handle. Every operation receives the
// open [store.Handle] from its caller, which is expected to hold the access
// coordinator's gate for the duration of the call. The engine itself is
// stateless apart from its injected sync transport and logger, so a single
// instance is safe to share.
package engine
