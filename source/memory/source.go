package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/kyuff/projections"
)

// New returns an empty in-memory Source. version extracts the ordering
// key of a record.
func New[R any, V cmp.Ordered](version func(record R) V) *Source[R, V] {
	return &Source[R, V]{
		version: version,
		streams: make(map[string][]R),
	}
}

var _ projections.Source[int, int] = (*Source[int, int])(nil)
var _ projections.EntityLister = (*Source[int, int])(nil)

// Source keeps the ordered records of each entity in memory. It is meant
// for tests and small tools, not durable storage.
type Source[R any, V cmp.Ordered] struct {
	version func(record R) V

	mux     sync.RWMutex
	streams map[string][]R
	ids     []string
}

// Append adds records to the stream of entityID, keeping version order.
func (s *Source[R, V]) Append(entityID string, records ...R) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if _, ok := s.streams[entityID]; !ok {
		s.ids = append(s.ids, entityID)
		slices.Sort(s.ids)
	}

	stream := append(s.streams[entityID], records...)
	slices.SortStableFunc(stream, func(a, b R) int {
		return cmp.Compare(s.version(a), s.version(b))
	})
	s.streams[entityID] = stream
}

func (s *Source[R, V]) Read(ctx context.Context, spec projections.ReadSpec[V]) ([]R, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	s.mux.RLock()
	defer s.mux.RUnlock()

	return resolve(s.streams[spec.EntityID], s.version, spec, false)
}

// Stream holds a read lock while consume runs, so the records given to
// it stay consistent with the Source at the time of the call.
func (s *Source[R, V]) Stream(ctx context.Context, spec projections.ReadSpec[V], consume projections.Consumer[R]) error {
	if err := spec.Validate(); err != nil {
		return err
	}

	s.mux.RLock()
	defer s.mux.RUnlock()

	records, err := resolve(s.streams[spec.EntityID], s.version, spec, false)
	if err != nil {
		return err
	}

	return consume(func(yield func(R, error) bool) {
		for _, record := range records {
			if !yield(record, nil) {
				return
			}
		}
	})
}

// EntityIDs lists known entity ids greater than after, at most limit.
func (s *Source[R, V]) EntityIDs(ctx context.Context, after string, limit int64) ([]string, string, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	var (
		ids   []string
		token string
	)
	for _, id := range s.ids {
		if id <= after {
			continue
		}

		ids = append(ids, id)
		token = id

		if limit > 0 && int64(len(ids)) >= limit {
			break
		}
	}

	return ids, token, nil
}
