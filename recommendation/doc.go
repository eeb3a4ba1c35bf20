// Package recommendation contains recommendation store implementations. The
// store is append-only: content is immutable once created and records are
// soft-deleted by clearing the active flag, never removed.
package recommendation
