package poll

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/kyuff/projections"
)

// Getter materializes the projection of a single entity. Typically a
// closure over Store.Get.
type Getter[S any] func(ctx context.Context, entityID string) (projections.Result[S], error)

// New returns a Poller that re-materializes through get until the
// configured checker accepts the final state. It serves sources that are
// eventually consistent with the writes a test or caller just made.
func New[S any](get Getter[S], opts ...Option[S]) *Poller[S] {
	return &Poller[S]{
		get: get,
		cfg: applyOptions(
			defaultOptions[S](),
			opts...,
		),
	}
}

type Poller[S any] struct {
	get Getter[S]
	cfg *Config[S]
}

// Wait blocks until the checker accepts a materialized state, an error
// occurs or ctx is done.
func (p *Poller[S]) Wait(ctx context.Context, entityID string) (S, error) {

	var (
		result  = make(chan S)
		errChan = make(chan error)
		done    = atomic.Bool{}
	)

	defer func() {
		done.Store(true)
	}()

	go func() {
		retries := 0
		for !done.Load() {
			materialized, err := p.get(ctx, entityID)
			if err != nil {
				errChan <- fmt.Errorf("materializing %s: %w", entityID, err)
				return
			}

			if p.cfg.checker(materialized.Final) {
				result <- materialized.Final
				return
			}

			retries++
			time.Sleep(p.cfg.backoff(materialized.Final, retries))
		}
	}()

	select {
	case <-ctx.Done():
		var empty S
		return empty, ctx.Err()
	case err := <-errChan:
		var empty S
		return empty, err
	case value := <-result:
		return value, nil
	}

}
