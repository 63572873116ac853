package projections

import (
	"cmp"
	"context"
	"iter"
)

//go:generate go tool moq -rm -out mock_test.go -pkg projections_test . Source SnapshotSource Reducer Window

// Consumer receives the lazily produced records of a Stream call. Its
// return value becomes the result of the call.
type Consumer[R any] func(records iter.Seq2[R, error]) error

// Source is an ordered stream of immutable records that a Store
// materializes projections from.
//
// First, After and Before resolve records in ascending version order.
// Last resolves the most recent Count records in descending version
// order. Until and Through narrow the result per ReadSpec.
type Source[R any, V cmp.Ordered] interface {
	// Read resolves spec into a materialized list of records.
	Read(ctx context.Context, spec ReadSpec[V]) ([]R, error)
	// Stream resolves spec into a lazily produced sequence given to
	// consume. Any underlying resource, such as a cursor or a
	// transaction, is acquired before consume is called and released on
	// every exit path, also when consume fails.
	Stream(ctx context.Context, spec ReadSpec[V], consume Consumer[R]) error
}

// SnapshotSource reads previously stored snapshots. A read with position
// Last or Before and Count 1 resolves to at most one snapshot.
type SnapshotSource[S any, V cmp.Ordered] interface {
	Read(ctx context.Context, spec ReadSpec[V]) ([]Snapshot[S, V], error)
}

// EntityLister is an optional capability of a Source to list the entity
// ids it holds records for, ordered by id and paged by a continuation
// token.
type EntityLister interface {
	EntityIDs(ctx context.Context, after string, limit int64) ([]string, string, error)
}
