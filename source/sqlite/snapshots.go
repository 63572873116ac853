package sqlite

import (
	"cmp"
	"context"
	"database/sql"
	"fmt"

	"github.com/kyuff/projections"
	"github.com/kyuff/projections/codecs"
)

// NewSnapshots returns a SnapshotSource persisting snapshots in db.
func NewSnapshots[S any, V cmp.Ordered](db *sql.DB, codec codecs.Codec[S]) *Snapshots[S, V] {
	return &Snapshots[S, V]{db: db, codec: codec}
}

var _ projections.SnapshotSource[int, int] = (*Snapshots[int, int])(nil)

// Snapshots stores the snapshot history of each entity in a SQLite
// database. Reads with position Last or Before resolve the most recent
// safe snapshot first, so a Count 1 read returns the best possible
// baseline.
type Snapshots[S any, V cmp.Ordered] struct {
	db    *sql.DB
	codec codecs.Codec[S]
}

// Write stores a snapshot of entityID taken at version. Writing the same
// version twice replaces the stored state.
func (s *Snapshots[S, V]) Write(ctx context.Context, entityID string, version V, data S) error {
	encoded, err := s.codec.Encode(data)
	if err != nil {
		return fmt.Errorf("sqlite: encode snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO snapshots (entity_id, version, data) VALUES (?, ?, ?)`,
		entityID, version, encoded,
	)
	if err != nil {
		return fmt.Errorf("sqlite: write snapshot %s at %v: %w", entityID, version, err)
	}

	return nil
}

func (s *Snapshots[S, V]) Read(ctx context.Context, spec projections.ReadSpec[V]) ([]projections.Snapshot[S, V], error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	query, args, err := buildQuery("snapshots", "version, data", spec, true)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: read snapshots %s: %w", spec.EntityID, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var snapshots []projections.Snapshot[S, V]
	for rows.Next() {
		var (
			version V
			encoded []byte
		)
		if err := rows.Scan(&version, &encoded); err != nil {
			return nil, fmt.Errorf("sqlite: scan snapshot: %w", err)
		}

		data, err := s.codec.Decode(encoded)
		if err != nil {
			return nil, fmt.Errorf("sqlite: decode snapshot: %w", err)
		}

		snapshots = append(snapshots, projections.Snapshot[S, V]{
			EntityID: spec.EntityID,
			Version:  version,
			Data:     data,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: read snapshots %s: %w", spec.EntityID, err)
	}

	return snapshots, nil
}
