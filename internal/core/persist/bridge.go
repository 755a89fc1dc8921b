// Package persist mirrors store items to durable storage and rehydrates
// them at startup. Persistence is best effort: a failing snapshot store
// must never interrupt the in-memory mutation that triggered the write.
package persist

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ttran/storeadmin/internal/core/domain"
	"github.com/ttran/storeadmin/internal/core/store"
	"github.com/ttran/storeadmin/internal/port"
)

// Attach subscribes the bridge to the store. After every mutation the items
// of both collections are serialized and fully overwrite the stored blob;
// loading and error are deliberately excluded. The returned function
// detaches the bridge.
func Attach(st *store.Store, repo port.SnapshotStore) func() {
	return st.Subscribe(func(state store.State) {
		snap := domain.Snapshot{
			Products: domain.ProductItems{Items: state.Products.Items},
			Orders:   domain.OrderItems{Items: state.Orders.Items},
		}
		blob, err := json.Marshal(snap)
		if err != nil {
			log.Printf("persist: marshal snapshot: %v", err)
			return
		}
		if err := repo.Save(context.Background(), blob); err != nil {
			// Swallowed: persistence failures are non-fatal.
			log.Printf("persist: save snapshot: %v", err)
		}
	})
}

// Load reads the snapshot once at startup. Absent, unreadable or malformed
// content degrades to "no persisted state" so the caller falls back to
// fetching from the origin.
func Load(ctx context.Context, repo port.SnapshotStore) (domain.Snapshot, bool) {
	blob, err := repo.Load(ctx)
	if err != nil {
		log.Printf("persist: load snapshot: %v", err)
		return domain.Snapshot{}, false
	}
	if len(blob) == 0 {
		return domain.Snapshot{}, false
	}
	var snap domain.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		log.Printf("persist: decode snapshot: %v", err)
		return domain.Snapshot{}, false
	}
	return snap, true
}

// Rehydrate builds a store from persisted state when present, or a fresh
// empty store otherwise. The boolean tells the caller whether a fetch from
// the origin is still needed; rehydrated stores must not be refetched, or
// stale seed data would clobber user-created records.
func Rehydrate(ctx context.Context, repo port.SnapshotStore) (*store.Store, bool) {
	snap, ok := Load(ctx, repo)
	if !ok {
		return store.New(), false
	}
	return store.NewFromSnapshot(snap), true
}
