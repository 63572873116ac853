package codecs

import "encoding/json"

// Codec translates values to and from their stored byte representation.
type Codec[T any] interface {
	Encode(value T) ([]byte, error)
	Decode(data []byte) (T, error)
}

func NewJSON[T any]() JSON[T] {
	return JSON[T]{}
}

var _ Codec[int] = JSON[int]{}

// JSON stores values as JSON.
type JSON[T any] struct{}

func (JSON[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (JSON[T]) Decode(data []byte) (T, error) {
	var value T
	err := json.Unmarshal(data, &value)
	if err != nil {
		var empty T
		return empty, err
	}

	return value, nil
}
