package projections

// Reducer is the transition logic of a projection. It can produce the
// empty state and fold one record into an existing state.
//
// States are treated as immutable. Project receives the prior state and
// returns the next, possibly new, state. The Store never mutates a state
// in place.
type Reducer[R, S any] interface {
	// Init returns the empty projection state.
	Init() (S, error)
	// Project folds record into state and returns the next state.
	Project(record R, state S) (S, error)
}

// NewReducer is a convenience to build a Reducer from an init and a
// project func.
func NewReducer[R, S any](init func() (S, error), project func(record R, state S) (S, error)) Reducer[R, S] {
	return reducerFunc[R, S]{init: init, project: project}
}

type reducerFunc[R, S any] struct {
	init    func() (S, error)
	project func(record R, state S) (S, error)
}

func (fn reducerFunc[R, S]) Init() (S, error) {
	return fn.init()
}

func (fn reducerFunc[R, S]) Project(record R, state S) (S, error) {
	return fn.project(record, state)
}
