// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package logs

import (
	"cmp"
	"slices"

	"github.com/loglens/loglens/pkg/otel"
)

// Normalize flattens an OTLP export payload into one Entry per log record,
// newest first. No record is dropped or duplicated: the result length is the
// total count of log records across all resource and scope groups.
//
// Absent optional containers degrade to empty attribute maps, never an error.
func Normalize(req *otel.ExportLogsServiceRequest) []*Entry {
	var entries []*Entry
	if req == nil {
		return entries
	}
	for _, rl := range req.ResourceLogs {
		var resourceAttrs map[string]any
		if rl.Resource != nil {
			resourceAttrs = attributeMap(rl.Resource.Attributes)
		} else {
			resourceAttrs = map[string]any{}
		}
		for _, sl := range rl.ScopeLogs {
			scopeAttrs := scopeAttributes(sl.Scope)
			for _, r := range sl.LogRecords {
				entries = append(entries, newEntry(&r, resourceAttrs, scopeAttrs))
			}
		}
	}
	// Stable, so records with equal times keep their payload order.
	slices.SortStableFunc(entries, func(a, b *Entry) int { return cmp.Compare(b.Time(), a.Time()) })
	return entries
}

// newEntry builds one flat entry. The resource and scope maps are shared
// with sibling entries, the caller must not modify them afterwards.
func newEntry(r *otel.LogRecord, resourceAttrs, scopeAttrs map[string]any) *Entry {
	body, _ := r.Body.Value.(string) // Only a string body survives flattening.
	return &Entry{
		TimeUnixNano:           r.TimeUnixNano.String(),
		SeverityNumber:         r.SeverityNumber,
		SeverityText:           r.SeverityText,
		Body:                   body,
		Attributes:             attributeMap(r.Attributes),
		ResourceAttributes:     resourceAttrs,
		ScopeAttributes:        scopeAttrs,
		DroppedAttributesCount: r.DroppedAttributesCount,
		TraceID:                string(r.TraceID),
		SpanID:                 string(r.SpanID),
		Flags:                  r.Flags,
	}
}

// attributeMap projects a decoded attribute list onto the flattened value
// union: string, number, bool or nil. Pairs without a key are skipped, a
// later duplicate key overwrites an earlier one.
func attributeMap(l otel.KeyValueList) map[string]any {
	m := make(map[string]any, len(l))
	for _, kv := range l {
		if kv.Key == "" {
			continue
		}
		m[kv.Key] = otel.Primitive(kv.Value.Value)
	}
	return m
}

// scopeAttributes is attributeMap for an instrumentation scope, with the
// scope name and version injected as synthetic attributes. They are added
// last, so scope metadata wins over a colliding real attribute.
func scopeAttributes(scope *otel.InstrumentationScope) map[string]any {
	if scope == nil {
		return map[string]any{}
	}
	m := attributeMap(scope.Attributes)
	if scope.Name != "" {
		m[otel.AttrScopeName] = scope.Name
	}
	if scope.Version != "" {
		m[otel.AttrScopeVersion] = scope.Version
	}
	return m
}
