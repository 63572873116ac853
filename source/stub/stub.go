package stub

import (
	"cmp"
	"context"
	"sync"

	"github.com/kyuff/projections"
)

// New returns a scripted Source with no prepared replies.
func New[R any, V cmp.Ordered]() *Source[R, V] {
	return &Source[R, V]{}
}

var _ projections.Source[int, int] = (*Source[int, int])(nil)

// Source is a scripted projections.Source for tests. Replies are served
// from a FIFO of prepared responses, falling back to an optional default
// when the queue is empty. Every call is recorded and offered to the
// registered observers.
type Source[R any, V cmp.Ordered] struct {
	script   script[R]
	recorder recorder[V]
}

// ReturnRecords queues records as the reply of the next unserved call.
func (s *Source[R, V]) ReturnRecords(records ...R) {
	s.script.push(records, nil)
}

// ReturnError queues err as the reply of the next unserved call.
func (s *Source[R, V]) ReturnError(err error) {
	s.script.push(nil, err)
}

// Fallback serves records whenever the reply queue is empty.
func (s *Source[R, V]) Fallback(records ...R) {
	s.script.setFallback(records)
}

// Observe registers fn to be called with the spec of every Read and
// Stream.
func (s *Source[R, V]) Observe(fn func(spec projections.ReadSpec[V])) {
	s.recorder.observe(fn)
}

// Specs returns the specs of all recorded calls in call order.
func (s *Source[R, V]) Specs() []projections.ReadSpec[V] {
	return s.recorder.specs()
}

func (s *Source[R, V]) Read(ctx context.Context, spec projections.ReadSpec[V]) ([]R, error) {
	s.recorder.record(spec)
	return s.script.next()
}

func (s *Source[R, V]) Stream(ctx context.Context, spec projections.ReadSpec[V], consume projections.Consumer[R]) error {
	s.recorder.record(spec)

	records, err := s.script.next()
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

// NewSnapshots returns a scripted SnapshotSource with no prepared
// replies.
func NewSnapshots[S any, V cmp.Ordered]() *Snapshots[S, V] {
	return &Snapshots[S, V]{}
}

var _ projections.SnapshotSource[int, int] = (*Snapshots[int, int])(nil)

// Snapshots is a scripted projections.SnapshotSource for tests, with the
// same reply queue and observer behavior as Source.
type Snapshots[S any, V cmp.Ordered] struct {
	script   script[projections.Snapshot[S, V]]
	recorder recorder[V]
}

// ReturnSnapshots queues snapshots as the reply of the next unserved
// call.
func (s *Snapshots[S, V]) ReturnSnapshots(snapshots ...projections.Snapshot[S, V]) {
	s.script.push(snapshots, nil)
}

// ReturnError queues err as the reply of the next unserved call.
func (s *Snapshots[S, V]) ReturnError(err error) {
	s.script.push(nil, err)
}

// Fallback serves snapshots whenever the reply queue is empty.
func (s *Snapshots[S, V]) Fallback(snapshots ...projections.Snapshot[S, V]) {
	s.script.setFallback(snapshots)
}

// Observe registers fn to be called with the spec of every Read.
func (s *Snapshots[S, V]) Observe(fn func(spec projections.ReadSpec[V])) {
	s.recorder.observe(fn)
}

// Specs returns the specs of all recorded calls in call order.
func (s *Snapshots[S, V]) Specs() []projections.ReadSpec[V] {
	return s.recorder.specs()
}

func (s *Snapshots[S, V]) Read(ctx context.Context, spec projections.ReadSpec[V]) ([]projections.Snapshot[S, V], error) {
	s.recorder.record(spec)
	return s.script.next()
}

type reply[T any] struct {
	items []T
	err   error
}

// script is a mutex guarded FIFO of prepared replies with an optional
// fallback.
type script[T any] struct {
	mux         sync.Mutex
	replies     []reply[T]
	fallback    []T
	hasFallback bool
}

func (s *script[T]) push(items []T, err error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.replies = append(s.replies, reply[T]{items: items, err: err})
}

func (s *script[T]) setFallback(items []T) {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.fallback = items
	s.hasFallback = true
}

func (s *script[T]) next() ([]T, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if len(s.replies) > 0 {
		head := s.replies[0]
		s.replies = s.replies[1:]
		return head.items, head.err
	}

	if s.hasFallback {
		return s.fallback, nil
	}

	return nil, nil
}

// recorder keeps the specs of served calls and notifies observers.
type recorder[V cmp.Ordered] struct {
	mux       sync.Mutex
	observers []func(spec projections.ReadSpec[V])
	served    []projections.ReadSpec[V]
}

func (r *recorder[V]) observe(fn func(spec projections.ReadSpec[V])) {
	r.mux.Lock()
	defer r.mux.Unlock()

	r.observers = append(r.observers, fn)
}

func (r *recorder[V]) record(spec projections.ReadSpec[V]) {
	r.mux.Lock()
	r.served = append(r.served, spec)
	observers := make([]func(spec projections.ReadSpec[V]), len(r.observers))
	copy(observers, r.observers)
	r.mux.Unlock()

	for _, observe := range observers {
		observe(spec)
	}
}

func (r *recorder[V]) specs() []projections.ReadSpec[V] {
	r.mux.Lock()
	defer r.mux.Unlock()

	specs := make([]projections.ReadSpec[V], len(r.served))
	copy(specs, r.served)

	return specs
}
