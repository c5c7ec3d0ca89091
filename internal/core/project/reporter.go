package project

import (
	"fmt"
	"io"
	"os"
)

// ProgressReporter receives materialization progress.
type ProgressReporter interface {
	// StepStart is called before a step runs.
	StepStart(name, message string)
	// StepComplete is called after a step succeeds.
	StepComplete(message string)
	// StepError is called when a step fails. Soft failures are reported
	// here too.
	StepError(err error)
}

// NoOpReporter discards all progress.
type NoOpReporter struct{}

func (*NoOpReporter) StepStart(string, string) {}
func (*NoOpReporter) StepComplete(string)      {}
func (*NoOpReporter) StepError(error)          {}

// ConsoleReporter prints one line per step event.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter creates a ConsoleReporter writing to os.Stdout.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{w: os.Stdout}
}

// NewConsoleReporterTo creates a ConsoleReporter writing to w.
func NewConsoleReporterTo(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

// StepStart implements ProgressReporter.
func (r *ConsoleReporter) StepStart(name, message string) {
	if message == "" {
		_, _ = fmt.Fprintf(r.w, "  → %s\n", name)
		return
	}
	_, _ = fmt.Fprintf(r.w, "  → %s: %s\n", name, message)
}

// StepComplete implements ProgressReporter.
func (r *ConsoleReporter) StepComplete(message string) {
	if message != "" {
		_, _ = fmt.Fprintf(r.w, "  ✓ %s\n", message)
	}
}

// StepError implements ProgressReporter.
func (r *ConsoleReporter) StepError(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(r.w, "  ✗ %v\n", err)
	}
}
