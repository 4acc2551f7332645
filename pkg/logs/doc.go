// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

// Package logs flattens OTLP log export payloads into self-contained entries
// and derives a time-bucketed histogram from them.
//
// Both operations are pure functions over in-memory input: no I/O, no shared
// state between calls, no mutation of their arguments.
package logs
