package types

import "encoding/json"

// Optional holds a reading a source may omit. The zero value is unknown,
// which keeps a missing visibility distinct from a visibility of 0m.
type Optional[T any] struct {
	Value T
	Known bool
}

func Known[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Known: true}
}

func Unknown[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is known
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Known
}

// Or returns the value, or def when unknown
func (o Optional[T]) Or(def T) T {
	if !o.Known {
		return def
	}
	return o.Value
}

// MarshalJSON encodes unknown readings as null
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Known {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Known(v)
	return nil
}
