package wizard

import (
	"context"
	"fmt"
	"maps"
)

// Compile-time interface compliance check.
var _ Prompter = (*PresetPrompter)(nil)

// PresetPrompter answers from preset values, typically command line flags.
// Without a fallback it never touches a terminal: questions without a
// preset take their default and any rejection is fatal. With a fallback,
// those questions and rejected presets are asked through the fallback.
type PresetPrompter struct {
	presets  map[string]any
	fallback Prompter
}

// PresetOption configures a PresetPrompter.
type PresetOption func(*PresetPrompter)

// WithFallback asks unanswered or rejected questions through p.
func WithFallback(p Prompter) PresetOption {
	return func(pp *PresetPrompter) { pp.fallback = p }
}

// NewPresetPrompter creates a PresetPrompter. Preset values must have the
// type the question kind expects: string, []string or bool.
func NewPresetPrompter(presets map[string]any, opts ...PresetOption) *PresetPrompter {
	p := &PresetPrompter{presets: make(map[string]any, len(presets))}
	maps.Copy(p.presets, presets)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ask implements Prompter.
func (p *PresetPrompter) Ask(ctx context.Context, pr Prompt) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if pr.Rejection != "" {
		if p.fallback != nil {
			return p.fallback.Ask(ctx, pr)
		}
		return nil, fmt.Errorf("%w: %s: %s", ErrPresetRejected, pr.Question.Key, pr.Rejection)
	}

	if v, ok := p.presets[pr.Question.Key]; ok {
		return v, nil
	}
	if p.fallback != nil {
		return p.fallback.Ask(ctx, pr)
	}
	return pr.Default, nil
}
