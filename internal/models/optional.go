package models

import (
	"bytes"
	"encoding/json"
)

// Optional distinguishes a JSON key that was omitted from one that was sent
// as null and from one that carries a value. The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
	null    bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

func Null[T any]() Optional[T] {
	return Optional[T]{present: true, null: true}
}

// IsPresent reports whether the key was supplied, with a value or as null.
func (o Optional[T]) IsPresent() bool { return o.present }

func (o Optional[T]) IsNull() bool { return o.present && o.null }

// HasValue reports whether the key was supplied with a non-null value.
func (o Optional[T]) HasValue() bool { return o.present && !o.null }

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.HasValue()
}

// OrNil returns the value or nil when absent or null. Used by the request
// validator so that omitempty rules skip missing fields.
func (o Optional[T]) OrNil() any {
	if !o.HasValue() {
		return nil
	}
	return o.value
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		o.value = zero
		o.null = true
		return nil
	}
	o.null = false
	return json.Unmarshal(data, &o.value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.HasValue() {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}
