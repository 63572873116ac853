package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/kyuff/projections"
)

// NewSnapshots returns an empty in-memory SnapshotSource.
func NewSnapshots[S any, V cmp.Ordered]() *Snapshots[S, V] {
	return &Snapshots[S, V]{
		snapshots: make(map[string][]projections.Snapshot[S, V]),
	}
}

var _ projections.SnapshotSource[int, int] = (*Snapshots[int, int])(nil)

// Snapshots keeps the snapshot history of each entity in memory. Reads
// with position Last or Before resolve the most recent safe snapshot
// first, so a Count 1 read returns the best possible baseline.
type Snapshots[S any, V cmp.Ordered] struct {
	mux       sync.RWMutex
	snapshots map[string][]projections.Snapshot[S, V]
}

// Write stores a snapshot of entityID taken at version.
func (s *Snapshots[S, V]) Write(entityID string, version V, data S) {
	s.mux.Lock()
	defer s.mux.Unlock()

	history := append(s.snapshots[entityID], projections.Snapshot[S, V]{
		EntityID: entityID,
		Version:  version,
		Data:     data,
	})
	slices.SortStableFunc(history, func(a, b projections.Snapshot[S, V]) int {
		return cmp.Compare(a.Version, b.Version)
	})
	s.snapshots[entityID] = history
}

func (s *Snapshots[S, V]) Read(ctx context.Context, spec projections.ReadSpec[V]) ([]projections.Snapshot[S, V], error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	s.mux.RLock()
	defer s.mux.RUnlock()

	return resolve(s.snapshots[spec.EntityID], func(snapshot projections.Snapshot[S, V]) V {
		return snapshot.Version
	}, spec, true)
}
