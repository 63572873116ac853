package projections

import "errors"

var (
	// ErrInvalidSpec signals a ReadSpec that violates its contract.
	ErrInvalidSpec = errors.New("invalid read spec")
	// ErrSnapshotContract signals a SnapshotSource that returned more
	// than one snapshot for a read with Count 1.
	ErrSnapshotContract = errors.New("snapshot source returned more than one snapshot")
	// ErrInvalidDecision signals a Trigger that returned a Decision
	// outside the closed set of Emit, EmitAdjusted and Continue.
	ErrInvalidDecision = errors.New("invalid trigger decision")
	// ErrNoEntityListing is returned by Store.EntityIDs when the Source
	// does not implement EntityLister.
	ErrNoEntityListing = errors.New("source does not support entity listing")
)
