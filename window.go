package projections

import "iter"

// Window is the strategy that drives a materialization. It consumes an
// ordered record sequence once, folds every record through the Reducer
// starting at baseline and produces a Result.
type Window[R, S any] interface {
	Materialize(records iter.Seq2[R, error], reducer Reducer[R, S], baseline S) (Result[S], error)
}

// Result of a materialization.
type Result[S any] struct {
	// Emitted holds the intermediate values in emission order. It is
	// always nil for a PassThrough window.
	Emitted []S
	// Final is the state after the last record was folded.
	Final S
}

// States returns the emitted values followed by the final state. The
// returned slice always has at least one element.
func (r Result[S]) States() []S {
	states := make([]S, 0, len(r.Emitted)+1)
	states = append(states, r.Emitted...)

	return append(states, r.Final)
}
