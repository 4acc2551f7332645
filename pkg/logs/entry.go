// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package logs

import "strconv"

// Entry is one flattened log record with its inherited resource and scope
// context denormalized onto it. Entries are immutable after construction.
//
// ResourceAttributes and ScopeAttributes are shared: every entry under the
// same resource or scope references the same map. The maps are never written
// after Normalize returns.
type Entry struct {
	// TimeUnixNano is the record time as a decimal string.
	// The string form preserves fixed64 precision through JSON re-encoding,
	// where a number would be read back as a float64.
	TimeUnixNano           string         `json:"timeUnixNano,omitempty"`
	SeverityNumber         int32          `json:"severityNumber,omitempty"`
	SeverityText           string         `json:"severityText,omitempty"`
	Body                   string         `json:"body"`
	Attributes             map[string]any `json:"attributes"`
	ResourceAttributes     map[string]any `json:"resourceAttributes"`
	ScopeAttributes        map[string]any `json:"scopeAttributes"`
	DroppedAttributesCount uint32         `json:"droppedAttributesCount,omitempty"`
	TraceID                string         `json:"traceId,omitempty"`
	SpanID                 string         `json:"spanId,omitempty"`
	Flags                  uint32         `json:"flags,omitempty"`
}

// Time is the entry time in nanoseconds since the Unix epoch.
// An absent or unparseable TimeUnixNano is 0.
func (e *Entry) Time() int64 {
	n, _ := strconv.ParseInt(e.TimeUnixNano, 10, 64)
	return n
}
