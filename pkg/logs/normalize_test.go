// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package logs

import (
	"encoding/json"
	"testing"

	"github.com/loglens/loglens/pkg/otel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) otel.Value { return otel.Value{Value: s} }
func attr(k string, v any) otel.KeyValue {
	return otel.KeyValue{Key: k, Value: otel.Value{Value: v}}
}

func TestNormalize(t *testing.T) {
	req := &otel.ExportLogsServiceRequest{
		ResourceLogs: []otel.ResourceLogs{{
			ScopeLogs: []otel.ScopeLogs{{
				Scope: &otel.InstrumentationScope{Name: "svc", Version: "1.0"},
				LogRecords: []otel.LogRecord{
					{TimeUnixNano: 1000000000, Body: str("hello")},
					{TimeUnixNano: 2000000000, Body: str("world")},
				},
			}},
		}},
	}
	entries := Normalize(req)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Equal(t, "2000000000", entries[0].TimeUnixNano)
	assert.Equal(t, "world", entries[0].Body)
	assert.Equal(t, "1000000000", entries[1].TimeUnixNano)
	assert.Equal(t, "hello", entries[1].Body)
	for _, e := range entries {
		assert.Equal(t, map[string]any{"scope.name": "svc", "scope.version": "1.0"}, e.ScopeAttributes)
		assert.Equal(t, map[string]any{}, e.ResourceAttributes)
		assert.Equal(t, map[string]any{}, e.Attributes)
	}
}

func TestNormalize_empty(t *testing.T) {
	assert.Empty(t, Normalize(&otel.ExportLogsServiceRequest{}))
	assert.Empty(t, Normalize(nil))
}

func TestNormalize_countPreserved(t *testing.T) {
	// Optional containers absent at every level, no record dropped.
	req := &otel.ExportLogsServiceRequest{
		ResourceLogs: []otel.ResourceLogs{
			{
				Resource: &otel.Resource{Attributes: otel.KeyValueList{attr("service.name", "a")}},
				ScopeLogs: []otel.ScopeLogs{
					{LogRecords: []otel.LogRecord{{TimeUnixNano: 3}, {TimeUnixNano: 1}}},
					{Scope: &otel.InstrumentationScope{Name: "s"}},
				},
			},
			{ScopeLogs: []otel.ScopeLogs{{LogRecords: []otel.LogRecord{{TimeUnixNano: 2}}}}},
			{},
		},
	}
	entries := Normalize(req)
	assert.Len(t, entries, 3)
}

func TestNormalize_sortNewestFirst(t *testing.T) {
	req := &otel.ExportLogsServiceRequest{
		ResourceLogs: []otel.ResourceLogs{{
			ScopeLogs: []otel.ScopeLogs{{
				LogRecords: []otel.LogRecord{
					{TimeUnixNano: 5, Body: str("b")},
					{TimeUnixNano: 0, Body: str("no time")},
					{TimeUnixNano: 9, Body: str("a")},
				},
			}},
		}},
	}
	entries := Normalize(req)
	require.Len(t, entries, 3)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i-1].Time(), entries[i].Time())
	}
	// Records without a time sort last.
	assert.Equal(t, "no time", entries[2].Body)
}

func TestNormalize_sharedAttributeMaps(t *testing.T) {
	req := &otel.ExportLogsServiceRequest{
		ResourceLogs: []otel.ResourceLogs{{
			Resource: &otel.Resource{Attributes: otel.KeyValueList{attr("k8s.pod.name", "p-1")}},
			ScopeLogs: []otel.ScopeLogs{{
				Scope:      &otel.InstrumentationScope{Name: "svc"},
				LogRecords: []otel.LogRecord{{TimeUnixNano: 1}, {TimeUnixNano: 2}, {TimeUnixNano: 3}},
			}},
		}},
	}
	entries := Normalize(req)
	require.Len(t, entries, 3)
	for _, e := range entries[1:] {
		assert.Equal(t, entries[0].ResourceAttributes, e.ResourceAttributes)
		assert.Equal(t, entries[0].ScopeAttributes, e.ScopeAttributes)
	}
}

func TestNormalize_bodyOnlyString(t *testing.T) {
	req := &otel.ExportLogsServiceRequest{
		ResourceLogs: []otel.ResourceLogs{{
			ScopeLogs: []otel.ScopeLogs{{
				LogRecords: []otel.LogRecord{
					{TimeUnixNano: 1, Body: otel.Value{Value: int64(42)}},
					{TimeUnixNano: 2, Body: otel.Value{}},
				},
			}},
		}},
	}
	entries := Normalize(req)
	require.Len(t, entries, 2)
	assert.Equal(t, "", entries[0].Body)
	assert.Equal(t, "", entries[1].Body)
}

func TestNormalize_attributeProjection(t *testing.T) {
	req := &otel.ExportLogsServiceRequest{
		ResourceLogs: []otel.ResourceLogs{{
			ScopeLogs: []otel.ScopeLogs{{
				LogRecords: []otel.LogRecord{{
					TimeUnixNano: 1,
					Attributes: otel.KeyValueList{
						attr("b", true),
						attr("none", nil),
						attr("list", []any{"x"}),
						attr("dup", "first"),
						attr("dup", "last"),
						{Key: "", Value: str("skipped")},
					},
				}},
			}},
		}},
	}
	entries := Normalize(req)
	require.Len(t, entries, 1)
	assert.Equal(t, map[string]any{
		"b":    true,
		"none": nil,
		"list": nil, // composites collapse to nil
		"dup":  "last",
	}, entries[0].Attributes)
}

func TestNormalize_scopeMetadataWins(t *testing.T) {
	req := &otel.ExportLogsServiceRequest{
		ResourceLogs: []otel.ResourceLogs{{
			ScopeLogs: []otel.ScopeLogs{{
				Scope: &otel.InstrumentationScope{
					Name:       "real",
					Attributes: otel.KeyValueList{attr("scope.name", "fake")},
				},
				LogRecords: []otel.LogRecord{{TimeUnixNano: 1}},
			}},
		}},
	}
	entries := Normalize(req)
	require.Len(t, entries, 1)
	assert.Equal(t, map[string]any{"scope.name": "real"}, entries[0].ScopeAttributes)
}

// End to end: wire payload through decode and flatten.
func TestNormalize_fromJSON(t *testing.T) {
	const payload = `{
	  "resourceLogs": [{
	    "resource": {"attributes": [{"key": "service.name", "value": {"stringValue": "checkout"}}]},
	    "scopeLogs": [{
	      "scope": {"name": "svc", "version": "1.0"},
	      "logRecords": [{
	        "timeUnixNano": "1757764363000000021",
	        "severityNumber": 13,
	        "severityText": "WARN",
	        "body": {"stringValue": "disk low"},
	        "attributes": [
	          {"key": "flag", "value": {"boolValue": true}},
	          {"key": "unset", "value": {}}
	        ],
	        "traceId": [171, 205],
	        "spanId": "eee19b7ec3c1b174"
	      }]
	    }]
	  }]
	}`
	var req otel.ExportLogsServiceRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))
	entries := Normalize(&req)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "1757764363000000021", e.TimeUnixNano) // precision beyond float53 preserved
	assert.Equal(t, int32(13), e.SeverityNumber)
	assert.Equal(t, "WARN", e.SeverityText)
	assert.Equal(t, "disk low", e.Body)
	assert.Equal(t, "abcd", e.TraceID) // byte form hex-encoded
	assert.Equal(t, "eee19b7ec3c1b174", e.SpanID)
	assert.Equal(t, map[string]any{"flag": true, "unset": nil}, e.Attributes)
	assert.Equal(t, map[string]any{"service.name": "checkout"}, e.ResourceAttributes)
	assert.Equal(t, map[string]any{"scope.name": "svc", "scope.version": "1.0"}, e.ScopeAttributes)
}
