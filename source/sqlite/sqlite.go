package sqlite

import (
	"cmp"
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/kyuff/projections"
	"github.com/kyuff/projections/codecs"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

// Open opens, or creates, a SQLite database ready to back a Source and a
// Snapshots.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	// WAL allows concurrent readers.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, errors.Join(fmt.Errorf("sqlite: set WAL mode: %w", err), db.Close())
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, errors.Join(fmt.Errorf("sqlite: create schema: %w", err), db.Close())
	}

	return db, nil
}

// New returns a Source reading records from db. codec translates the
// stored content column.
func New[R any, V cmp.Ordered](db *sql.DB, codec codecs.Codec[R]) *Source[R, V] {
	return &Source[R, V]{db: db, codec: codec}
}

var _ projections.Source[int, int] = (*Source[int, int])(nil)
var _ projections.EntityLister = (*Source[int, int])(nil)

// Source reads and writes ordered records in a SQLite database.
type Source[R any, V cmp.Ordered] struct {
	db    *sql.DB
	codec codecs.Codec[R]
}

// Append writes a record for entityID at version. Writing the same
// version twice for an entity is an error.
func (s *Source[R, V]) Append(ctx context.Context, entityID string, version V, record R) error {
	content, err := s.codec.Encode(record)
	if err != nil {
		return fmt.Errorf("sqlite: encode record: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (entity_id, version, content) VALUES (?, ?, ?)`,
		entityID, version, content,
	)
	if err != nil {
		return fmt.Errorf("sqlite: append %s at %v: %w", entityID, version, err)
	}

	return nil
}

func (s *Source[R, V]) Read(ctx context.Context, spec projections.ReadSpec[V]) ([]R, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	query, args, err := buildQuery("records", "content", spec, false)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: read %s: %w", spec.EntityID, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []R
	for rows.Next() {
		var content []byte
		if err := rows.Scan(&content); err != nil {
			return nil, fmt.Errorf("sqlite: scan record: %w", err)
		}

		record, err := s.codec.Decode(content)
		if err != nil {
			return nil, fmt.Errorf("sqlite: decode record: %w", err)
		}

		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: read %s: %w", spec.EntityID, err)
	}

	return records, nil
}

// Stream resolves spec with a live cursor. The cursor is opened before
// consume runs and closed on every exit path, also when consume fails.
func (s *Source[R, V]) Stream(ctx context.Context, spec projections.ReadSpec[V], consume projections.Consumer[R]) (err error) {
	if err := spec.Validate(); err != nil {
		return err
	}

	query, args, err := buildQuery("records", "content", spec, false)
	if err != nil {
		return err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("sqlite: stream %s: %w", spec.EntityID, err)
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	return consume(func(yield func(R, error) bool) {
		var empty R
		for rows.Next() {
			var content []byte
			if scanErr := rows.Scan(&content); scanErr != nil {
				yield(empty, fmt.Errorf("sqlite: scan record: %w", scanErr))
				return
			}

			record, decodeErr := s.codec.Decode(content)
			if decodeErr != nil {
				yield(empty, fmt.Errorf("sqlite: decode record: %w", decodeErr))
				return
			}

			if !yield(record, nil) {
				return
			}
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			yield(empty, fmt.Errorf("sqlite: stream %s: %w", spec.EntityID, rowsErr))
		}
	})
}

// EntityIDs lists distinct entity ids greater than after, at most limit.
func (s *Source[R, V]) EntityIDs(ctx context.Context, after string, limit int64) ([]string, string, error) {
	query := `SELECT DISTINCT entity_id FROM records WHERE entity_id > ? ORDER BY entity_id ASC`
	args := []any{after}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("sqlite: list entity ids: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var (
		ids   []string
		token string
	)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, "", fmt.Errorf("sqlite: scan entity id: %w", err)
		}

		ids = append(ids, id)
		token = id
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("sqlite: list entity ids: %w", err)
	}

	return ids, token, nil
}

// buildQuery translates spec into SQL, preserving the ordering and bound
// contract. With newestFirst the Before position orders descending, so a
// Count 1 snapshot lookup resolves the most recent safe snapshot.
func buildQuery[V cmp.Ordered](table, columns string, spec projections.ReadSpec[V], newestFirst bool) (string, []any, error) {
	var (
		sb   strings.Builder
		args []any
	)

	sb.WriteString("SELECT ")
	sb.WriteString(columns)
	sb.WriteString(" FROM ")
	sb.WriteString(table)
	sb.WriteString(" WHERE entity_id = ?")
	args = append(args, spec.EntityID)

	descending := false
	switch spec.Position.Kind() {
	case projections.KindFirst:
	case projections.KindLast:
		descending = true
	case projections.KindAfter:
		sb.WriteString(" AND version > ?")
		args = append(args, spec.Position.Version())
	case projections.KindBefore:
		sb.WriteString(" AND version < ?")
		args = append(args, spec.Position.Version())
		descending = newestFirst
	default:
		return "", nil, fmt.Errorf("%w: unknown position %s", projections.ErrInvalidSpec, spec.Position.Kind())
	}

	if spec.Until != nil {
		sb.WriteString(" AND version < ?")
		args = append(args, *spec.Until)
	}
	if spec.Through != nil {
		sb.WriteString(" AND version <= ?")
		args = append(args, *spec.Through)
	}

	if descending {
		sb.WriteString(" ORDER BY version DESC")
	} else {
		sb.WriteString(" ORDER BY version ASC")
	}

	if spec.Count != projections.Unbounded {
		sb.WriteString(" LIMIT ?")
		args = append(args, spec.Count)
	}

	return sb.String(), args, nil
}
