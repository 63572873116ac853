package memory

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/kyuff/projections"
)

// resolve filters and orders the already version-sorted items of one
// entity per spec. With newestFirst the Last and Before positions keep
// the most recent items when Count truncates, which is the resolution a
// snapshot lookup needs.
func resolve[T any, V cmp.Ordered](items []T, version func(T) V, spec projections.ReadSpec[V], newestFirst bool) ([]T, error) {
	var matched []T
	for _, item := range items {
		v := version(item)
		if !spec.InBounds(v) {
			continue
		}

		switch spec.Position.Kind() {
		case projections.KindFirst, projections.KindLast:
		case projections.KindAfter:
			if v <= spec.Position.Version() {
				continue
			}
		case projections.KindBefore:
			if v >= spec.Position.Version() {
				continue
			}
		default:
			return nil, fmt.Errorf("%w: unknown position %s", projections.ErrInvalidSpec, spec.Position.Kind())
		}

		matched = append(matched, item)
	}

	switch spec.Position.Kind() {
	case projections.KindLast:
		slices.Reverse(matched)
	case projections.KindBefore:
		if newestFirst {
			slices.Reverse(matched)
		}
	}

	if spec.Count != projections.Unbounded && int64(len(matched)) > spec.Count {
		matched = matched[:spec.Count]
	}

	return matched, nil
}
