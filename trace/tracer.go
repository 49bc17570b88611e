package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"rvec/types"
)

// Tracer provides access tracing for debugging
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance
var globalTracer *Tracer

// Init initializes the global tracer
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// Disable turns the global tracer off
func Disable() {
	globalTracer = nil
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// ParseFilters splits a comma separated filter flag
func ParseFilters(s string) []string {
	var filters []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			filters = append(filters, f)
		}
	}
	return filters
}

// matchesFilter checks if an operation name matches any of the filter patterns
func (t *Tracer) matchesFilter(op string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, op); matched {
			return true
		}
	}
	return false
}

// Access logs the start of an extract or replace
func (t *Tracer) Access(op string, target types.Value, positions []types.Value) {
	if !t.enabled || !t.matchesFilter(op) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	posStrs := make([]string, len(positions))
	for i, p := range positions {
		posStrs[i] = display(p)
	}

	fmt.Fprintf(t.writer, "[TRACE] ACCESS %s target=%s positions=[%s]\n",
		op, display(target), strings.Join(posStrs, ", "))
}

// Result logs the value an access produced
func (t *Tracer) Result(op string, result types.Value) {
	if !t.enabled || !t.matchesFilter(op) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] RESULT %s => %s\n", op, display(result))
}

// Failure logs an access error
func (t *Tracer) Failure(op string, err error) {
	if !t.enabled || !t.matchesFilter(op) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] ERROR %s %v\n", op, err)
}

// Warning logs a recoverable condition
func (t *Tracer) Warning(op string, w *types.Error) {
	if !t.enabled || !t.matchesFilter(op) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE]   WARNING %s %s\n", op, w.Code)
}

// Copy logs a copy made to protect a shared vector
func (t *Tracer) Copy(op string, reason string) {
	if !t.enabled || !t.matchesFilter(op) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE]   COPY %s (%s)\n", op, reason)
}

// display truncates long values for readability
func display(v types.Value) string {
	if v == nil {
		return "NULL"
	}
	s := v.String()
	if types.IsMissing(v) {
		s = "<missing>"
	}
	if len(s) > 60 {
		s = s[:57] + "..."
	}
	return s
}

// Global convenience functions

// Access logs an access using the global tracer
func Access(op string, target types.Value, positions []types.Value) {
	if globalTracer != nil {
		globalTracer.Access(op, target, positions)
	}
}

// Result logs a result using the global tracer
func Result(op string, result types.Value) {
	if globalTracer != nil {
		globalTracer.Result(op, result)
	}
}

// Failure logs an error using the global tracer
func Failure(op string, err error) {
	if globalTracer != nil {
		globalTracer.Failure(op, err)
	}
}

// Warning logs a warning using the global tracer
func Warning(op string, w *types.Error) {
	if globalTracer != nil {
		globalTracer.Warning(op, w)
	}
}

// Copy logs a protective copy using the global tracer
func Copy(op string, reason string) {
	if globalTracer != nil {
		globalTracer.Copy(op, reason)
	}
}
