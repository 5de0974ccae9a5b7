// Package telemetry collects opt-in timing data for pipeline phases.
// A collector travels through context so that parsing, importing, and
// insight computation can be timed without changing signatures; when no
// collector is attached, every call is a no-op.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector gathers timers and renders a report.
type Collector interface {
	// Start begins timing a phase. End the returned Timer when the
	// phase completes.
	Start(name string) Timer

	// Report writes the collected timings.
	Report(w io.Writer)
}

// Timer times one phase. Nested phases are created with Child.
type Timer interface {
	End()
	Child(name string) Timer
}

// WithCollector attaches a collector to the context.
func WithCollector(ctx context.Context, c Collector) context.Context {
	return context.WithValue(ctx, collectorKey, c)
}

// FromContext returns the collector attached to ctx, or a no-op
// collector if none is present.
func FromContext(ctx context.Context) Collector {
	if c, ok := ctx.Value(collectorKey).(Collector); ok {
		return c
	}
	return noop{}
}

type noop struct{}

func (noop) Start(string) Timer { return noopTimer{} }
func (noop) Report(io.Writer)   {}

type noopTimer struct{}

func (noopTimer) End()               {}
func (noopTimer) Child(string) Timer { return noopTimer{} }

// TimingCollector records phases as a tree and reports them indented.
type TimingCollector struct {
	mu    sync.Mutex
	roots []*span
}

type span struct {
	name     string
	start    time.Time
	elapsed  time.Duration
	children []*span
}

// NewTimingCollector creates an empty collector.
func NewTimingCollector() *TimingCollector {
	return &TimingCollector{}
}

// Start begins a top-level phase.
func (c *TimingCollector) Start(name string) Timer {
	s := &span{name: name, start: time.Now()}
	c.mu.Lock()
	c.roots = append(c.roots, s)
	c.mu.Unlock()
	return &spanTimer{collector: c, span: s}
}

// Report writes one line per phase, children indented under parents.
func (c *TimingCollector) Report(w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.roots {
		reportSpan(w, s, 0)
	}
}

func reportSpan(w io.Writer, s *span, depth int) {
	elapsed := s.elapsed
	if elapsed == 0 {
		elapsed = time.Since(s.start)
	}
	_, _ = fmt.Fprintf(w, "%s%s  %s\n", strings.Repeat("  ", depth), s.name, formatDuration(elapsed))
	for _, child := range s.children {
		reportSpan(w, child, depth+1)
	}
}

// formatDuration renders durations at a precision matching their size,
// so sub-millisecond phases don't report as "0ms".
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	default:
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
}

type spanTimer struct {
	collector *TimingCollector
	span      *span
}

func (t *spanTimer) End() {
	t.collector.mu.Lock()
	t.span.elapsed = time.Since(t.span.start)
	t.collector.mu.Unlock()
}

func (t *spanTimer) Child(name string) Timer {
	s := &span{name: name, start: time.Now()}
	t.collector.mu.Lock()
	t.span.children = append(t.span.children, s)
	t.collector.mu.Unlock()
	return &spanTimer{collector: t.collector, span: s}
}
