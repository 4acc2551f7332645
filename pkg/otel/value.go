// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package otel

import (
	"encoding/json"

	otlpcommon "go.opentelemetry.io/proto/otlp/common/v1"
	"google.golang.org/protobuf/encoding/protojson"
)

// Value is an any that can convert from and unmarshal as an OTEL [otlpcommon.AnyValue]
type Value struct{ Value any }

// UnmarshalJSON unmarshal from the OTLP JSON protobuf value format.
// An empty object (no oneof variant populated) unmarshals to a nil Value.
func (v *Value) UnmarshalJSON(data []byte) error {
	var av otlpcommon.AnyValue
	err := protojson.Unmarshal(data, &av)
	v.Value = ValueOf(&av)
	return err
}

// MarshalJSON as a plain JSON value, not the OTLP oneof shape.
// Loglens only reads payloads, it never re-encodes them for export.
func (v Value) MarshalJSON() ([]byte, error) { return json.Marshal(v.Value) }

// ValueOf converts an [otlpcommon.AnyValue] to a Go value, one of:
// string, bool, int64, float64, []byte, []any, [KeyValueList] or nil.
func ValueOf(v *otlpcommon.AnyValue) any {
	switch v := v.Value.(type) {
	case *otlpcommon.AnyValue_StringValue:
		return v.StringValue
	case *otlpcommon.AnyValue_BoolValue:
		return v.BoolValue
	case *otlpcommon.AnyValue_IntValue:
		return v.IntValue
	case *otlpcommon.AnyValue_DoubleValue:
		return v.DoubleValue
	case *otlpcommon.AnyValue_ArrayValue:
		a := make([]any, len(v.ArrayValue.Values))
		for i, v := range v.ArrayValue.Values {
			a[i] = ValueOf(v)
		}
		return a
	case *otlpcommon.AnyValue_KvlistValue:
		var a KeyValueList
		for _, kv := range v.KvlistValue.Values {
			a = append(a, KeyValue{Key: kv.Key, Value: Value{ValueOf(kv.Value)}})
		}
		return a
	case *otlpcommon.AnyValue_BytesValue:
		return v.BytesValue
	}
	return nil
}

// Primitive projects a decoded value onto the 4-variant union used for
// flattened attributes: string, number (int64 or float64), bool or nil.
// Composite and bytes values collapse to nil.
func Primitive(v any) any {
	switch v := v.(type) {
	case string, bool, int64, float64:
		return v
	default:
		return nil
	}
}
