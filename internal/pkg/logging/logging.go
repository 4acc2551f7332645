// Copyright: This file is part of loglens, released under https://github.com/loglens/loglens/blob/main/LICENSE

// package logging initializes the root logger and provides some helpers.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

const verboseEnv = "LOGLENS_VERBOSE"

var root logr.Logger

// The root logger.
func Log() logr.Logger { return root }

func init() { // Set env verbosity on init, Init() can over-ride.
	root = stdr.New(log.New(os.Stderr, "loglens ", log.Ltime))
	if n, err := strconv.Atoi(os.Getenv(verboseEnv)); err == nil {
		stdr.SetVerbosity(n)
	}
}

// Init sets verbosity for the root logger.
func Init(verbosity int) {
	if verbosity != 0 { // If not set, let env verbosity stand
		stdr.SetVerbosity(verbosity)
	}
}

// LogWriter returns an io.Writer that writes lines to the root logger,
// for libraries that want a writer rather than a logger.
func LogWriter() io.Writer { return writer{} }

type writer struct{}

func (writer) Write(b []byte) (int, error) {
	root.Info(string(b))
	return len(b), nil
}

// JSONString returns the JSON marshaled string from v, or the error message if marshal fails
func JSONString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%q", err.Error())
	}
	return string(b)
}

type logJSON struct{ v any }

func (l logJSON) MarshalLog() any { return JSONString(l.v) }

// JSON wraps a value so it will be printed as JSON if logged.
func JSON(v any) logr.Marshaler { return logJSON{v: v} }
