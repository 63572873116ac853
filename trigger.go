package projections

import (
	"fmt"
	"iter"
)

type decisionKind int

const (
	decisionEmit decisionKind = iota + 1
	decisionEmitAdjusted
	decisionContinue
)

// Decision is the outcome of a Trigger for a single record. It is a
// closed set built with Emit, EmitAdjusted or Continue. The zero value
// is not a valid decision.
type Decision[S, W any] struct {
	kind   decisionKind
	value  S
	state  S
	window W
}

// Emit appends value to the emitted values and folds the record into the
// unchanged pre-record state. The window continues with window.
func Emit[S, W any](value S, window W) Decision[S, W] {
	return Decision[S, W]{kind: decisionEmit, value: value, window: window}
}

// EmitAdjusted appends value to the emitted values and folds the record
// into adjusted instead of the pre-record state. It lets a Trigger reset
// the running projection exactly at an emission boundary, before the
// triggering record itself is applied.
func EmitAdjusted[S, W any](value S, adjusted S, window W) Decision[S, W] {
	return Decision[S, W]{kind: decisionEmitAdjusted, value: value, state: adjusted, window: window}
}

// Continue emits nothing and folds the record into state. Pass the
// pre-record state and the incoming window through unchanged for plain
// accumulation.
func Continue[S, W any](state S, window W) Decision[S, W] {
	return Decision[S, W]{kind: decisionContinue, state: state, window: window}
}

// Trigger decides per record whether an intermediate value is emitted
// and which state the record is folded into. It is called before the
// record is applied, with the state and window as they were after the
// previous record. An error aborts the fold and discards the values
// emitted so far.
type Trigger[R, S, W any] func(record R, state S, window W) (Decision[S, W], error)

// NewTriggerWindow returns a Window that lets trigger emit intermediate
// values while folding. window is the initial window state, owned by the
// trigger and threaded through every decision.
func NewTriggerWindow[R, S, W any](window W, trigger Trigger[R, S, W]) *TriggerWindow[R, S, W] {
	return &TriggerWindow[R, S, W]{window: window, trigger: trigger}
}

var _ Window[int, int] = (*TriggerWindow[int, int, int])(nil)

// TriggerWindow materializes a Result where the emitted values are
// decided per record by a Trigger. The final state is always present,
// also when nothing was emitted.
type TriggerWindow[R, S, W any] struct {
	window  W
	trigger Trigger[R, S, W]
}

func (w *TriggerWindow[R, S, W]) Materialize(records iter.Seq2[R, error], reducer Reducer[R, S], baseline S) (Result[S], error) {
	var (
		window  = w.window
		state   = baseline
		emitted []S
	)

	for record, readErr := range records {
		if readErr != nil {
			return Result[S]{}, readErr
		}

		decision, err := w.trigger(record, state, window)
		if err != nil {
			return Result[S]{}, err
		}

		next := state
		switch decision.kind {
		case decisionEmit:
			emitted = append(emitted, decision.value)
		case decisionEmitAdjusted:
			emitted = append(emitted, decision.value)
			next = decision.state
		case decisionContinue:
			next = decision.state
		default:
			return Result[S]{}, fmt.Errorf("%w: kind %d", ErrInvalidDecision, decision.kind)
		}

		state, err = reducer.Project(record, next)
		if err != nil {
			return Result[S]{}, err
		}

		window = decision.window
	}

	return Result[S]{Emitted: emitted, Final: state}, nil
}
