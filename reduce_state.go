package projections

import (
	"testing"

	"github.com/kyuff/projections/internal/assert"
)

// ReduceState is a test helper meant to make it easy to fold records
// into a projection state.
func ReduceState[R, S any](t *testing.T, reducer Reducer[R, S], records ...R) S {
	t.Helper()

	state, err := reducer.Init()
	assert.NoError(t, err)

	for _, record := range records {
		state, err = reducer.Project(record, state)
		assert.NoError(t, err)
	}

	return state
}
