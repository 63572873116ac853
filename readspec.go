package projections

import (
	"cmp"
	"fmt"
)

// Unbounded marks a ReadSpec that is not limited in the number of records
// it resolves to.
const Unbounded int64 = -1

// PositionKind enumerates where in a record stream a read can begin.
type PositionKind int

const (
	KindFirst PositionKind = iota + 1
	KindLast
	KindAfter
	KindBefore
)

func (k PositionKind) String() string {
	switch k {
	case KindFirst:
		return "First"
	case KindLast:
		return "Last"
	case KindAfter:
		return "After"
	case KindBefore:
		return "Before"
	default:
		return fmt.Sprintf("PositionKind(%d)", int(k))
	}
}

// First reads from the start of the stream.
func First[V cmp.Ordered]() Position[V] {
	return Position[V]{kind: KindFirst}
}

// Last reads the most recent records of the stream.
func Last[V cmp.Ordered]() Position[V] {
	return Position[V]{kind: KindLast}
}

// After reads records with a version strictly greater than version.
func After[V cmp.Ordered](version V) Position[V] {
	return Position[V]{kind: KindAfter, version: version}
}

// Before reads records with a version strictly less than version.
func Before[V cmp.Ordered](version V) Position[V] {
	return Position[V]{kind: KindBefore, version: version}
}

// Position is a closed set of read positions, constructed with First,
// Last, After or Before. The zero value is not a valid position.
type Position[V cmp.Ordered] struct {
	kind    PositionKind
	version V
}

func (p Position[V]) Kind() PositionKind {
	return p.kind
}

// Version is the bound of an After or Before position. It carries no
// meaning for First and Last.
func (p Position[V]) Version() V {
	return p.version
}

// ReadSpec describes a single read against a Source or SnapshotSource.
// It is the only data contract passed to an adapter.
type ReadSpec[V cmp.Ordered] struct {
	// EntityID identifies the stream to read.
	EntityID string
	// Position is where in the stream the read begins.
	Position Position[V]
	// Count is the maximum number of records the read resolves to,
	// applied after ordering and filtering. Use Unbounded for no limit.
	Count int64
	// Until excludes records with a version greater than or equal to it.
	Until *V
	// Through excludes records with a version greater than it.
	Through *V
}

// Validate reports a configuration error if a required field is missing
// or carries a value outside the contract.
func (spec ReadSpec[V]) Validate() error {
	if spec.EntityID == "" {
		return fmt.Errorf("%w: missing entity id", ErrInvalidSpec)
	}

	switch spec.Position.Kind() {
	case KindFirst, KindLast, KindAfter, KindBefore:
	default:
		return fmt.Errorf("%w: unknown position %s", ErrInvalidSpec, spec.Position.Kind())
	}

	if spec.Count < 0 && spec.Count != Unbounded {
		return fmt.Errorf("%w: negative count %d", ErrInvalidSpec, spec.Count)
	}

	return nil
}

// InBounds reports whether a record at version passes the Until and
// Through filters. The filters are independent and combined with AND.
func (spec ReadSpec[V]) InBounds(version V) bool {
	if spec.Until != nil && version >= *spec.Until {
		return false
	}

	if spec.Through != nil && version > *spec.Through {
		return false
	}

	return true
}
