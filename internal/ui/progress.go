package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// progressImpl implements the Progress interface.
type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress writing to os.Stdout.
func NewProgress(theme *Theme, hm *HeadlessManager) Progress {
	return NewProgressTo(theme, hm, os.Stdout)
}

// NewProgressTo creates a Progress writing to w.
func NewProgressTo(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

// Start creates a determinate progress bar with the given total.
// In headless mode it returns a log-based progress bar.
func (p *progressImpl) Start(title string, total int) ProgressBar {
	if p.plain() {
		return newHeadlessProgressBar(p.theme, title, total, p.writer)
	}
	return newInteractiveProgressBar(p.theme, title, total, p.writer)
}

// Spinner creates an indeterminate spinner.
// In headless mode it prints the title as a log line.
func (p *progressImpl) Spinner(title string) Spinner {
	if p.plain() {
		return newHeadlessSpinner(title, p.writer)
	}
	return newInteractiveSpinner(p.theme, title, p.writer)
}

func (p *progressImpl) plain() bool {
	return p.headless.IsHeadless() || p.theme.NoColor
}

// --- interactiveSpinner ---

type spinnerTitleMsg string

type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner implements Spinner with an animated bubbles spinner.
type interactiveSpinner struct {
	program *tea.Program
	once    sync.Once
}

// @MX:WARN: [AUTO] The tea program runs in its own goroutine; Stop must be called or Wait never returns.
// @MX:REASON: [AUTO] goroutine lifetime is tied to the tea program
func newInteractiveSpinner(theme *Theme, title string, w io.Writer) *interactiveSpinner {
	p := tea.NewProgram(newSpinnerModel(theme, title),
		tea.WithOutput(w),
		tea.WithInput(nil),
	)
	go func() {
		_, _ = p.Run()
	}()
	return &interactiveSpinner{program: p}
}

// SetTitle updates the spinner title.
func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

// Stop halts the spinner.
func (s *interactiveSpinner) Stop() {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
	})
}

// --- interactiveProgressBar ---

type progressIncrMsg int

type progressTitleMsg string

type progressDoneMsg struct{}

// progressModel is the bubbletea Model for the step progress bar.
type progressModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newProgressModel(theme *Theme, title string, total int) progressModel {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(32),
	)
	if !theme.NoColor {
		bar = progress.New(
			progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
			progress.WithWidth(32),
		)
	}
	return progressModel{bar: bar, title: title, total: total}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressIncrMsg:
		m.current = min(m.current+int(msg), m.total)
		return m, nil
	case progressTitleMsg:
		m.title = string(msg)
		return m, nil
	case progressDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	return m.bar.ViewAs(m.percent()) + " " + fmt.Sprintf("[%d/%d] %s\n", m.current, m.total, m.title)
}

func (m progressModel) percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.current) / float64(m.total)
}

// interactiveProgressBar implements ProgressBar with an animated bubbles progress bar.
type interactiveProgressBar struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveProgressBar(theme *Theme, title string, total int, w io.Writer) *interactiveProgressBar {
	p := tea.NewProgram(newProgressModel(theme, title, total),
		tea.WithOutput(w),
		tea.WithInput(nil),
	)
	go func() {
		_, _ = p.Run()
	}()
	return &interactiveProgressBar{program: p}
}

// Increment advances the progress by n.
func (b *interactiveProgressBar) Increment(n int) {
	b.program.Send(progressIncrMsg(n))
}

// SetTitle updates the progress bar title.
func (b *interactiveProgressBar) SetTitle(title string) {
	b.program.Send(progressTitleMsg(title))
}

// Done completes the progress bar at 100%.
func (b *interactiveProgressBar) Done() {
	b.once.Do(func() {
		b.program.Send(progressDoneMsg{})
		b.program.Wait()
	})
}

// --- headlessProgressBar ---

// headlessProgressBar implements ProgressBar with one log line per step.
type headlessProgressBar struct {
	theme   *Theme
	title   string
	total   int
	current int
	writer  io.Writer
}

func newHeadlessProgressBar(theme *Theme, title string, total int, w io.Writer) *headlessProgressBar {
	return &headlessProgressBar{theme: theme, title: title, total: total, writer: w}
}

// Increment advances the progress by n and writes a log line.
func (b *headlessProgressBar) Increment(n int) {
	b.current = min(b.current+n, b.total)
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}

// SetTitle updates the progress bar title.
func (b *headlessProgressBar) SetTitle(title string) {
	b.title = title
}

// Done completes the progress bar. It prints nothing when every step was
// already logged.
func (b *headlessProgressBar) Done() {
	if b.current == b.total {
		return
	}
	b.current = b.total
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}

// --- headlessSpinner ---

// headlessSpinner implements Spinner with plain text log output.
type headlessSpinner struct {
	writer io.Writer
}

func newHeadlessSpinner(title string, w io.Writer) *headlessSpinner {
	_, _ = fmt.Fprintln(w, title)
	return &headlessSpinner{writer: w}
}

// SetTitle prints the new title as a log line.
func (s *headlessSpinner) SetTitle(title string) {
	_, _ = fmt.Fprintln(s.writer, title)
}

// Stop is a no-op for the headless spinner.
func (s *headlessSpinner) Stop() {}
