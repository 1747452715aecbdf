// internal/data/optional.go
package data

import "encoding/json"

// Optional is a JSON field that remembers whether it was sent at all.
// A zero Optional means the key was absent from the request body.
// Set is true whenever the key was present; Null is additionally true
// when the key was present with a JSON null.
type Optional[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Present reports whether the field carries a usable (non-null) value.
func (o Optional[T]) Present() bool {
	return o.Set && !o.Null
}

// UnmarshalJSON is only invoked by encoding/json when the key exists in the
// object, which is what lets Set tell "not sent" apart from "sent as zero".
func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.Set = true
	if string(b) == "null" {
		var zero T
		o.Value = zero
		o.Null = true
		return nil
	}
	o.Null = false
	return json.Unmarshal(b, &o.Value)
}
