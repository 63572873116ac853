package projections

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"sync"

	"golang.org/x/sync/errgroup"
)

// New creates a Store that materializes projections defined by reducer
// from the records in source.
func New[R, S any, V cmp.Ordered](reducer Reducer[R, S], source Source[R, V], opts ...Option) *Store[R, S, V] {
	return &Store[R, S, V]{
		reducer: reducer,
		source:  source,
		cfg:     applyOptions(defaultOptions(), opts...),
	}
}

// Store materializes read models by folding the ordered record stream of
// a single entity, optionally bootstrapped from a snapshot.
//
// The configuration of a Store is immutable once constructed. Get calls
// write no shared state and can run concurrently without coordination.
type Store[R, S any, V cmp.Ordered] struct {
	reducer   Reducer[R, S]
	source    Source[R, V]
	snapshots SnapshotSource[S, V]
	cfg       *Config
}

// WithSnapshots returns a copy of the Store that bootstraps every Get
// from the most recent snapshot that is safe for the requested bounds.
func (s *Store[R, S, V]) WithSnapshots(snapshots SnapshotSource[S, V]) *Store[R, S, V] {
	next := *s
	next.snapshots = snapshots

	return &next
}

// GetOption narrows or reshapes a single Get call. Options are built
// with the With methods on the Store.
type GetOption[R, S any, V cmp.Ordered] func(*getConfig[R, S, V])

type getConfig[R, S any, V cmp.Ordered] struct {
	window  Window[R, S]
	until   *V
	through *V
}

// WithWindow materializes with w instead of the default PassThrough.
func (s *Store[R, S, V]) WithWindow(w Window[R, S]) GetOption[R, S, V] {
	return func(cfg *getConfig[R, S, V]) {
		cfg.window = w
	}
}

// WithUntil excludes records with a version greater than or equal to
// version.
func (s *Store[R, S, V]) WithUntil(version V) GetOption[R, S, V] {
	return func(cfg *getConfig[R, S, V]) {
		cfg.until = &version
	}
}

// WithThrough excludes records with a version greater than version.
func (s *Store[R, S, V]) WithThrough(version V) GetOption[R, S, V] {
	return func(cfg *getConfig[R, S, V]) {
		cfg.through = &version
	}
}

// Get materializes the projection for entityID. The result is the final
// state and, for a TriggerWindow, the values emitted on the way there.
// Errors from the source, the reducer or a trigger abort the
// materialization and are returned without a partial result.
func (s *Store[R, S, V]) Get(ctx context.Context, entityID string, opts ...GetOption[R, S, V]) (Result[S], error) {
	cfg := &getConfig[R, S, V]{
		window: NewPassThrough[R, S](),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	baseline, spec, err := s.resolve(ctx, entityID, cfg)
	if err != nil {
		return Result[S]{}, err
	}

	if err := spec.Validate(); err != nil {
		return Result[S]{}, err
	}

	var result Result[S]
	err = s.source.Stream(ctx, spec, func(records iter.Seq2[R, error]) error {
		var err error
		result, err = cfg.window.Materialize(records, s.reducer, baseline)

		return err
	})
	if err != nil {
		return Result[S]{}, err
	}

	return result, nil
}

// resolve decides the baseline state and the slice of the record stream
// that must be folded on top of it.
func (s *Store[R, S, V]) resolve(ctx context.Context, entityID string, cfg *getConfig[R, S, V]) (S, ReadSpec[V], error) {
	if s.snapshots == nil {
		return s.fromScratch(entityID, cfg)
	}

	// A snapshot strictly before either bound is safe as a baseline,
	// since the records between it and the bound are still folded in.
	bound := Last[V]()
	if cfg.until != nil {
		bound = Before(*cfg.until)
	} else if cfg.through != nil {
		bound = Before(*cfg.through)
	}

	snapshots, err := s.snapshots.Read(ctx, ReadSpec[V]{
		EntityID: entityID,
		Position: bound,
		Count:    1,
	})
	if err != nil {
		var empty S
		return empty, ReadSpec[V]{}, err
	}

	switch len(snapshots) {
	case 0:
		s.cfg.logger.InfofCtx(ctx, "no snapshot for %s, materializing from the first record", entityID)
		return s.fromScratch(entityID, cfg)
	case 1:
		return snapshots[0].Data, ReadSpec[V]{
			EntityID: entityID,
			Position: After(snapshots[0].Version),
			Count:    Unbounded,
			Until:    cfg.until,
			Through:  cfg.through,
		}, nil
	default:
		var empty S
		s.cfg.logger.ErrorfCtx(ctx, "snapshot source returned %d snapshots for %s on a count 1 read", len(snapshots), entityID)
		return empty, ReadSpec[V]{}, fmt.Errorf("%w: got %d for %s", ErrSnapshotContract, len(snapshots), entityID)
	}
}

func (s *Store[R, S, V]) fromScratch(entityID string, cfg *getConfig[R, S, V]) (S, ReadSpec[V], error) {
	baseline, err := s.reducer.Init()
	if err != nil {
		var empty S
		return empty, ReadSpec[V]{}, fmt.Errorf("init state for %s: %w", entityID, err)
	}

	return baseline, ReadSpec[V]{
		EntityID: entityID,
		Position: First[V](),
		Count:    Unbounded,
		Until:    cfg.until,
		Through:  cfg.through,
	}, nil
}

// GetMany materializes the projection of several entities concurrently,
// bounded by the WithConcurrency option. The first error cancels the
// batch and is returned without a partial result.
func (s *Store[R, S, V]) GetMany(ctx context.Context, entityIDs []string, opts ...GetOption[R, S, V]) (map[string]Result[S], error) {
	var (
		mux     sync.Mutex
		results = make(map[string]Result[S], len(entityIDs))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.concurrency)
	for _, entityID := range entityIDs {
		g.Go(func() error {
			result, err := s.Get(ctx, entityID, opts...)
			if err != nil {
				return fmt.Errorf("get %s: %w", entityID, err)
			}

			mux.Lock()
			defer mux.Unlock()
			results[entityID] = result

			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	return results, nil
}

// EntityIDs lists the entity ids the Source holds records for, if it
// implements EntityLister.
func (s *Store[R, S, V]) EntityIDs(ctx context.Context, after string, limit int64) ([]string, string, error) {
	lister, ok := s.source.(EntityLister)
	if !ok {
		return nil, "", ErrNoEntityListing
	}

	return lister.EntityIDs(ctx, after, limit)
}
