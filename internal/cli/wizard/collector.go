package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/core/validate"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/pkg/models"
)

// Collector asks a fixed question sequence through a Prompter and builds
// the AnswerSet. It holds no state between Collect calls.
type Collector struct {
	questions []Question
	prompter  Prompter
	logger    *slog.Logger
}

// NewCollector validates the sequence and returns a Collector. Keys must be
// unique, choice questions need options, and every deriver may only read
// keys of questions that come strictly earlier.
func NewCollector(questions []Question, prompter Prompter, logger *slog.Logger) (*Collector, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	seen := make(map[string]bool, len(questions))
	for i := range questions {
		q := &questions[i]
		if q.Key == "" {
			return nil, fmt.Errorf("%w: question %d has no key", ErrInvalidQuestion, i+1)
		}
		if seen[q.Key] {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidQuestion, q.Key)
		}
		if (q.Kind == KindSelect || q.Kind == KindMultiSelect) && len(q.Options) == 0 {
			return nil, fmt.Errorf("%w: %s question %q has no options", ErrInvalidQuestion, q.Kind, q.Key)
		}
		if q.Derive != nil {
			if q.Derive.Func == nil {
				return nil, fmt.Errorf("%w: deriver of %q has no function", ErrInvalidQuestion, q.Key)
			}
			for _, dep := range q.Derive.Requires {
				if !seen[dep] {
					return nil, fmt.Errorf("%w: %q requires %q", ErrDeriverDependency, q.Key, dep)
				}
			}
		}
		seen[q.Key] = true
	}

	return &Collector{
		questions: slices.Clone(questions),
		prompter:  prompter,
		logger:    logger.With("module", "wizard"),
	}, nil
}

// @MX:ANCHOR: [AUTO] Collect is the question state machine; every answer that reaches the manifest passes through it.
// @MX:REASON: [AUTO] fan_in=3, called from cli/create.go and wizard tests
// Collect asks every question in order. A rejected answer re-asks the same
// question with the rejection message; it never advances. Cancellation by
// the prompter or ctx returns an error matching ErrCancelled.
func (c *Collector) Collect(ctx context.Context) (*models.AnswerSet, error) {
	answers := models.NewAnswerSet()

	for i := range c.questions {
		q := &c.questions[i]
		value, err := c.ask(ctx, q, answers)
		if err != nil {
			return nil, err
		}
		if err := answers.Set(q.Key, value); err != nil {
			return nil, fmt.Errorf("store %s: %w", q.Key, err)
		}
		c.logger.Debug("question answered", "key", q.Key)
	}

	return answers, nil
}

// ask runs pending(i) until an answer is accepted.
func (c *Collector) ask(ctx context.Context, q *Question, answers *models.AnswerSet) (any, error) {
	prompt := Prompt{Question: q, Default: defaultFor(q, answers)}

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		prompt.Attempt = attempt
		raw, err := c.prompter.Ask(ctx, prompt)
		if err != nil {
			switch {
			case errors.Is(err, ErrCancelled):
				c.logger.Debug("wizard cancelled", "key", q.Key)
				return nil, err
			case errors.Is(err, context.Canceled):
				c.logger.Debug("wizard interrupted", "key", q.Key)
				return nil, fmt.Errorf("%w: %w", ErrCancelled, err)
			}
			return nil, fmt.Errorf("ask %s: %w", q.Key, err)
		}

		value, err := normalize(q, raw)
		if err != nil {
			return nil, err
		}
		if rejection := check(q, value); rejection != nil {
			c.logger.Debug("answer rejected", "key", q.Key, "attempt", attempt, "reason", rejection)
			prompt.Rejection = rejection.Error()
			continue
		}
		return value, nil
	}
}

// defaultFor computes the value a question is pre-filled with.
func defaultFor(q *Question, answers *models.AnswerSet) any {
	switch q.Kind {
	case KindConfirm:
		b, _ := q.Initial.(bool)
		return b
	case KindMultiSelect:
		if v, ok := q.Initial.([]string); ok && v != nil {
			return slices.Clone(v)
		}
		selected := []string{}
		for _, o := range q.Options {
			if o.Selected {
				selected = append(selected, o.Value)
			}
		}
		return selected
	case KindSelect:
		if v, ok := q.Initial.(string); ok && v != "" {
			return v
		}
		return q.Options[0].Value
	default:
		if q.Derive != nil {
			return q.Derive.Func(answers)
		}
		s, _ := q.Initial.(string)
		return s
	}
}

// normalize checks the answer type against the question kind.
func normalize(q *Question, raw any) (any, error) {
	switch q.Kind {
	case KindConfirm:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	case KindMultiSelect:
		if v, ok := raw.([]string); ok {
			if v == nil {
				v = []string{}
			}
			return v, nil
		}
	default:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s question %q got %T", ErrAnswerType, q.Kind, q.Key, raw)
}

// check applies option membership and the question's validators.
func check(q *Question, value any) error {
	switch q.Kind {
	case KindSelect:
		if !hasOption(q, value.(string)) {
			return fmt.Errorf("%w: choose one of %s", validate.ErrInvalid, optionValues(q))
		}
	case KindMultiSelect:
		for _, v := range value.([]string) {
			if !hasOption(q, v) {
				return fmt.Errorf("%w: %q is not one of %s", validate.ErrInvalid, v, optionValues(q))
			}
		}
		return nil
	case KindConfirm:
		return nil
	}

	s := value.(string)
	for _, fn := range q.Validators {
		if err := fn(s); err != nil {
			return err
		}
	}
	return nil
}

func hasOption(q *Question, value string) bool {
	return slices.ContainsFunc(q.Options, func(o Option) bool { return o.Value == value })
}

func optionValues(q *Question) string {
	values := make([]string, len(q.Options))
	for i, o := range q.Options {
		values[i] = o.Value
	}
	return strings.Join(values, ", ")
}
