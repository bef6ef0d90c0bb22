package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/swapunits/swapunits/internal/calendar"
	"github.com/swapunits/swapunits/internal/land"
	"github.com/swapunits/swapunits/internal/storage"
	"github.com/swapunits/swapunits/internal/units"
)

// DefaultSearchLimit is the default limit for search results.
const DefaultSearchLimit = 20

// outputJSON writes a value as formatted JSON to stdout, exits on error.
func outputJSON(v interface{}) {
	exitOnError(encodeJSON(os.Stdout, v), "writing output")
}

// encodeJSON writes v as indented JSON. Nothing is written if v cannot be encoded.
func encodeJSON(w io.Writer, v interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// finite returns nil for NaN and ±Inf so they encode as JSON null.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// outputHuman writes a human-readable string to stdout.
func outputHuman(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	} else {
		encodeJSON(os.Stdout, ErrorResponse{Error: msg})
	}
	os.Exit(code)
}

// exitCodeFor maps an error to its exit code.
func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, calendar.ErrInvalidDate),
		errors.Is(err, units.ErrUnknownCategory),
		errors.Is(err, units.ErrUnknownUnit),
		errors.Is(err, land.ErrUnknownRegion),
		errors.Is(err, storage.ErrNotFound):
		return ExitDataError
	default:
		return ExitError
	}
}

// exitOnError exits with the mapped exit code when err is non-nil.
func exitOnError(err error, what string) {
	if err == nil {
		return
	}
	exitWithError(exitCodeFor(err), "%s: %v", what, err)
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
