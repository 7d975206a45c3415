// Package capability defines the host capabilities the sandboxed
// application depends on, one interface per capability, and the Registry
// that binds each capability identifier to the implementation serving it.
//
// The registry is an explicit object created by the composition root and
// handed to whoever needs lookups; there is no package-level registry.
package capability
