package projections

import "iter"

// NewPassThrough returns the Window a Store materializes with when the
// caller picks none.
func NewPassThrough[R, S any]() PassThrough[R, S] {
	return PassThrough[R, S]{}
}

var _ Window[int, int] = PassThrough[int, int]{}

// PassThrough folds every record in sequence order and returns only the
// final state. It never emits intermediate values.
type PassThrough[R, S any] struct{}

func (PassThrough[R, S]) Materialize(records iter.Seq2[R, error], reducer Reducer[R, S], baseline S) (Result[S], error) {
	var (
		state = baseline
		err   error
	)

	for record, readErr := range records {
		if readErr != nil {
			return Result[S]{}, readErr
		}

		state, err = reducer.Project(record, state)
		if err != nil {
			return Result[S]{}, err
		}
	}

	return Result[S]{Final: state}, nil
}
