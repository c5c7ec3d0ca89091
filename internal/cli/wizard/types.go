// Package wizard asks the plugin questions in a fixed order and collects
// the answers. The question sequence, the Collector state machine, and the
// two prompting capabilities (an interactive huh form and a headless
// preset) live here.
package wizard

import (
	"context"
	"errors"

	"github.com/liteloaderqqnt/create-llqqnt-plugin/internal/core/validate"
	"github.com/liteloaderqqnt/create-llqqnt-plugin/pkg/models"
)

// Kind is the input widget a question is asked with.
type Kind int

const (
	// KindInput is a free text question; the answer is a string.
	KindInput Kind = iota
	// KindSelect picks one option; the answer is the option value.
	KindSelect
	// KindMultiSelect picks any number of options; the answer is []string.
	KindMultiSelect
	// KindConfirm is a yes/no toggle; the answer is a bool.
	KindConfirm
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindSelect:
		return "select"
	case KindMultiSelect:
		return "multiselect"
	case KindConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// Question defines a single wizard question.
type Question struct {
	Key         string          // AnswerSet key, one of the models.Key* constants
	Kind        Kind            // Widget
	Title       string          // Prompt title
	Description string          // Help text shown under the title
	Initial     any             // Static default: string, bool or []string
	Derive      *Deriver        // Default computed from earlier answers; wins over Initial
	Validators  []validate.Func // Applied to string answers, in order
	Options     []Option        // Choices for select kinds
}

// Option represents a selectable option.
type Option struct {
	Label    string // Display label
	Value    string // Actual value stored
	Desc     string // Optional description
	Selected bool   // Pre-selected in a multi-select
}

// Deriver computes a suggested default from answers already given.
type Deriver struct {
	// Requires lists the keys Func reads. Each must belong to a question
	// that comes strictly earlier in the sequence.
	Requires []string
	Func     func(answers *models.AnswerSet) string
}

// Prompt is one request to a Prompter.
type Prompt struct {
	Question  *Question
	Default   any    // string, bool or []string depending on Kind
	Rejection string // Why the previous answer was refused; empty on the first attempt
	Attempt   int    // 1 for the first ask, incremented on every re-ask
}

// Prompter obtains a raw answer for one question. It returns ErrCancelled
// when the user aborts.
type Prompter interface {
	Ask(ctx context.Context, p Prompt) (any, error)
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrInvalidQuestion is returned for a malformed question definition.
	ErrInvalidQuestion = errors.New("invalid question")
	// ErrDeriverDependency is returned when a deriver reads a key that is
	// not answered before its question.
	ErrDeriverDependency = errors.New("deriver depends on a later or unknown question")
	// ErrPresetRejected is returned when a non-interactive answer fails
	// validation and cannot be asked again.
	ErrPresetRejected = errors.New("preset answer rejected")
	// ErrAnswerType is returned when a prompter yields a value of the wrong type.
	ErrAnswerType = errors.New("answer has the wrong type")
)
