// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package rest

import "encoding/json"

// Array is a slice that serializes to JSON as '[]' not 'null' for a nil value.
// The UI distinguishes "no records" from "no data yet", so the empty case
// must be a real array.
type Array[T any] []T

func (a Array[T]) MarshalJSON() ([]byte, error) {
	if a == nil {
		return json.Marshal([]T{})
	}
	return json.Marshal([]T(a))
}
