package storage

import "context"

// SnapshotStore is the opaque whole-collection persistence
// collaborator. Save replaces the stored snapshot of a named
// collection; Load fills out with the last saved snapshot. A missing
// or unreadable snapshot loads as an empty collection, never an error,
// so repositories tolerate empty state at startup.
type SnapshotStore interface {
	Save(ctx context.Context, collection string, v any) error
	Load(ctx context.Context, collection string, out any) error
}
