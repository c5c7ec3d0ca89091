package ui

import (
	"fmt"
	"io"
)

// StepReporter drives a ProgressBar from materializer step events. Errors
// are held back until Finish so they do not tear through the bar.
type StepReporter struct {
	bar    ProgressBar
	theme  *Theme
	writer io.Writer
	errs   []error
}

// NewStepReporter creates a StepReporter. Held-back errors are written to w.
func NewStepReporter(bar ProgressBar, theme *Theme, w io.Writer) *StepReporter {
	return &StepReporter{bar: bar, theme: theme, writer: w}
}

// StepStart shows the step name as the bar title.
func (r *StepReporter) StepStart(name, _ string) {
	r.bar.SetTitle(name)
}

// StepComplete advances the bar by one step.
func (r *StepReporter) StepComplete(string) {
	r.bar.Increment(1)
}

// StepError records err for Finish.
func (r *StepReporter) StepError(err error) {
	if err != nil {
		r.errs = append(r.errs, err)
	}
}

// Errors returns the errors reported so far.
func (r *StepReporter) Errors() []error {
	return r.errs
}

// Finish completes the bar and prints every recorded error.
func (r *StepReporter) Finish() {
	r.bar.Done()
	for _, err := range r.errs {
		_, _ = fmt.Fprintln(r.writer, r.theme.ErrorLine(err.Error()))
	}
}
