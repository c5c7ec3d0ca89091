// Package ui provides the terminal presentation layer: headless detection,
// the color theme, progress bars and spinners, result cards and markdown
// rendering. Every component has a plain-text fallback for non-TTY use.
package ui

// Progress creates progress indicators.
type Progress interface {
	// Start creates a determinate progress bar with total steps.
	Start(title string, total int) ProgressBar
	// Spinner creates an indeterminate spinner.
	Spinner(title string) Spinner
}

// ProgressBar is a determinate progress indicator.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}

// Spinner is an indeterminate progress indicator.
type Spinner interface {
	SetTitle(title string)
	Stop()
}
