// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package otel

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ID is a trace or span identifier as found in OTLP JSON payloads.
// Exporters disagree on the encoding: the OTLP/JSON spec says lowercase hex
// string, but some producers emit the raw protobuf bytes as a JSON array.
// Both forms unmarshal to the hex string, an absent ID is "".
type ID string

// UnmarshalJSON from a JSON string (kept as-is) or an array of byte values
// (hex encoded, lowercase, no separators).
func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var ns []int16
		if err := json.Unmarshal(data, &ns); err != nil {
			return err
		}
		b := make([]byte, len(ns))
		for i, n := range ns {
			if n < 0 || n > 0xff {
				return fmt.Errorf("byte out of range in id: %v", n)
			}
			b[i] = byte(n)
		}
		*id = ID(hex.EncodeToString(b))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*id = ID(s)
	return nil
}

// MarshalJSON as a JSON string.
func (id ID) MarshalJSON() ([]byte, error) { return json.Marshal(string(id)) }
