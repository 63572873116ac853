package projections

import "cmp"

// Snapshot is a previously materialized projection state together with
// the version of the last record folded into it. A Store uses it as the
// baseline of a materialization so the full history does not have to be
// folded again.
type Snapshot[S any, V cmp.Ordered] struct {
	// EntityID is the identity the snapshot was materialized for.
	EntityID string
	// Version is the version of the last record reflected in Data.
	Version V
	// Data is the stored projection state.
	Data S
}
