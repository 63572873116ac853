package seqs

import "iter"

// Seq2 returns a sequence of the items, each paired with a nil error.
func Seq2[T any](items ...T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Error returns a sequence that yields the items and then fails with err.
func Error[T any](err error, items ...T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}

		var empty T
		yield(empty, err)
	}
}
