package wizard

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/charmbracelet/huh"

	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/core/validate"
)

// Compile-time interface compliance check.
var _ Prompter = (*FormPrompter)(nil)

// FormPrompter asks each question as its own huh form. Running one form
// per question keeps huh's select viewport from scrolling options out of
// view when several groups share a form.
type FormPrompter struct {
	theme      *huh.Theme
	accessible bool
}

// FormOption configures a FormPrompter.
type FormOption func(*FormPrompter)

// WithAccessible switches huh to its screen-reader friendly line mode.
func WithAccessible(on bool) FormOption {
	return func(p *FormPrompter) { p.accessible = on }
}

// NewFormPrompter creates a FormPrompter using the wizard theme.
func NewFormPrompter(opts ...FormOption) *FormPrompter {
	p := &FormPrompter{theme: newWizardTheme()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ask implements Prompter. Input validators also run inside the form so a
// rejection is shown inline before the answer is submitted.
func (p *FormPrompter) Ask(ctx context.Context, pr Prompt) (any, error) {
	field, value := buildField(pr)

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithAccessible(p.accessible).
		WithShowHelp(true)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("prompt %s: %w", pr.Question.Key, err)
	}
	return value(), nil
}

// buildField creates the huh field for a prompt and a getter for its value.
func buildField(pr Prompt) (huh.Field, func() any) {
	q := pr.Question
	desc := q.Description
	if pr.Rejection != "" {
		if desc != "" {
			desc += "\n"
		}
		desc += "✗ " + pr.Rejection
	}

	switch q.Kind {
	case KindSelect:
		selected, _ := pr.Default.(string)
		sel := huh.NewSelect[string]().
			Title(q.Title).
			Description(desc).
			Options(huhOptions(q.Options, nil)...).
			Value(&selected)
		return sel, func() any { return selected }

	case KindMultiSelect:
		defaults, _ := pr.Default.([]string)
		values := slices.Clone(defaults)
		ms := huh.NewMultiSelect[string]().
			Title(q.Title).
			Description(desc).
			Options(huhOptions(q.Options, defaults)...).
			Value(&values)
		return ms, func() any {
			if values == nil {
				return []string{}
			}
			return values
		}

	case KindConfirm:
		b, _ := pr.Default.(bool)
		c := huh.NewConfirm().
			Title(q.Title).
			Description(desc).
			Affirmative("Yes").
			Negative("No").
			Value(&b)
		return c, func() any { return b }

	default:
		s, _ := pr.Default.(string)
		in := huh.NewInput().
			Title(q.Title).
			Description(desc).
			Value(&s).
			Validate(validate.Chain(q.Validators...))
		return in, func() any { return s }
	}
}

// huhOptions converts wizard options. A nil selected keeps each option's
// own Selected flag.
func huhOptions(options []Option, selected []string) []huh.Option[string] {
	out := make([]huh.Option[string], len(options))
	for i, o := range options {
		key := o.Label
		if o.Desc != "" {
			key = o.Label + " - " + o.Desc
		}
		on := o.Selected
		if selected != nil {
			on = slices.Contains(selected, o.Value)
		}
		out[i] = huh.NewOption(key, o.Value).Selected(on)
	}
	return out
}
