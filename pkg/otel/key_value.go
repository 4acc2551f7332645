// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package otel

// KeyValueList holds attributes as a list of key:value pairs.
type KeyValueList []KeyValue

// KeyValue is an attribute key:value pair.
type KeyValue struct {
	Key   string `json:"key"`
	Value Value  `json:"value"`
}

// Map converts a KeyValueList into a new map[string]any.
// Pairs without a key are skipped, a later duplicate key overwrites an earlier one.
func (l KeyValueList) Map() map[string]any {
	m := map[string]any{}
	for _, kv := range l {
		if kv.Key == "" {
			continue
		}
		m[kv.Key] = kv.Value.Value
	}
	return m
}
