// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

// Package otel implements the OTLP logs data model as transported by the
// JSON protobuf encoding of ExportLogsServiceRequest.
//
// Loglens does not directly expose packages from [go.opentelemetry.io],
// they are not well suited to a read-only viewer of raw export payloads.
//
// Internally this package uses official [go.opentelemetry.io] packages where
// possible to better comply with the spec.
package otel
