package port

import "context"

// SnapshotStore is the durable key-value port: one opaque serialized blob
// under one fixed key. Implementations exist for local files, redis and
// mysql; the persistence bridge neither knows nor cares which is wired.
type SnapshotStore interface {
	// Load returns the stored blob, or (nil, nil) when none exists
	Load(ctx context.Context) ([]byte, error)

	// Save overwrites the stored blob
	Save(ctx context.Context, blob []byte) error
}
