package models

import (
	"errors"
	"fmt"
	"slices"
)

// Question keys, in the order the wizard asks them.
const (
	KeyProjectName       = "project-name"
	KeyPluginSlug        = "plugin-slug"
	KeyPluginName        = "plugin-name"
	KeyPluginType        = "plugin-type"
	KeyPluginDescription = "plugin-description"
	KeyPluginPlatform    = "plugin-platform"
	KeyPluginVersion     = "plugin-version"
	KeyPluginPackageNPM  = "plugin-package-npm"
	KeyPluginGit         = "plugin-git"
)

// ErrAnswerExists is returned when a key is written twice.
var ErrAnswerExists = errors.New("answer already recorded")

// AnswerSet maps question keys to answers. Values are string, []string or bool.
// Each key is written at most once; insertion order is preserved.
type AnswerSet struct {
	values map[string]any
	keys   []string
}

// NewAnswerSet returns an empty AnswerSet.
func NewAnswerSet() *AnswerSet {
	return &AnswerSet{values: make(map[string]any)}
}

// Set records the answer for key. It fails if the key already has an answer
// or the value is not one of the supported answer types.
func (a *AnswerSet) Set(key string, value any) error {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, ok := a.values[key]; ok {
		return fmt.Errorf("%w: %s", ErrAnswerExists, key)
	}
	switch v := value.(type) {
	case string, bool:
	case []string:
		value = slices.Clone(v)
	default:
		return fmt.Errorf("answer %s: unsupported type %T", key, value)
	}
	a.values[key] = value
	a.keys = append(a.keys, key)
	return nil
}

// Has reports whether key has been answered.
func (a *AnswerSet) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Get returns the raw answer for key.
func (a *AnswerSet) Get(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

// String returns the answer for key, or "" when it is missing or not a string.
func (a *AnswerSet) String(key string) string {
	s, _ := a.values[key].(string)
	return s
}

// Strings returns a copy of the answer for key, or nil when it is missing or not a list.
func (a *AnswerSet) Strings(key string) []string {
	s, _ := a.values[key].([]string)
	return slices.Clone(s)
}

// Bool returns the answer for key, or false when it is missing or not a bool.
func (a *AnswerSet) Bool(key string) bool {
	b, _ := a.values[key].(bool)
	return b
}

// Keys returns the answered keys in the order they were recorded.
func (a *AnswerSet) Keys() []string {
	return slices.Clone(a.keys)
}

// Len returns the number of answers.
func (a *AnswerSet) Len() int {
	return len(a.keys)
}
