// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

package otel

// ExportLogsServiceRequest is the OTLP logs export payload defined at:
// https://opentelemetry.io/docs/specs/otlp/
//
// Every field at every level is optional, an absent field decodes to its
// zero value. Decoding never fails on missing data, only on malformed JSON.
type ExportLogsServiceRequest struct {
	ResourceLogs []ResourceLogs `json:"resourceLogs,omitempty"`
}

// ResourceLogs groups the log batches produced by one resource.
type ResourceLogs struct {
	Resource  *Resource   `json:"resource,omitempty"`
	ScopeLogs []ScopeLogs `json:"scopeLogs,omitempty"`
	SchemaURL string      `json:"schemaUrl,omitempty"`
}

// Resource describes the entity that produced the telemetry,
// for example a service instance.
type Resource struct {
	Attributes             KeyValueList `json:"attributes,omitempty"`
	DroppedAttributesCount uint32       `json:"droppedAttributesCount,omitempty"`
}

// ScopeLogs groups the log records emitted by one instrumentation scope.
type ScopeLogs struct {
	Scope      *InstrumentationScope `json:"scope,omitempty"`
	LogRecords []LogRecord           `json:"logRecords,omitempty"`
	SchemaURL  string                `json:"schemaUrl,omitempty"`
}

// InstrumentationScope identifies the library that generated a batch of records.
type InstrumentationScope struct {
	Name       string       `json:"name,omitempty"`
	Version    string       `json:"version,omitempty"`
	Attributes KeyValueList `json:"attributes,omitempty"`
}

// LogRecord is one OTEL log record, see
// https://opentelemetry.io/docs/specs/otel/logs/data-model
type LogRecord struct {
	TimeUnixNano           Int          `json:"timeUnixNano,omitempty"`         // fixed64 ns, number or numeric string
	ObservedTimeUnixNano   Int          `json:"observedTimeUnixNano,omitempty"` // time the record was observed
	SeverityNumber         int32        `json:"severityNumber,omitempty"`       // 0-24 per the OTEL spec
	SeverityText           string       `json:"severityText,omitempty"`
	Body                   Value        `json:"body,omitempty"`
	Attributes             KeyValueList `json:"attributes,omitempty"`
	DroppedAttributesCount uint32       `json:"droppedAttributesCount,omitempty"` // opaque pass-through
	Flags                  uint32       `json:"flags,omitempty"`                  // opaque pass-through
	TraceID                ID           `json:"traceId,omitempty"`
	SpanID                 ID           `json:"spanId,omitempty"`
	EventName              string       `json:"eventName,omitempty"`
}
