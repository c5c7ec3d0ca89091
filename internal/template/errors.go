// Package template provides the source file templates copied into a newly
// scaffolded plugin and the single placeholder substitution applied to them.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates a required template is missing from the template set.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrUnexpandedToken indicates a placeholder survived substitution.
	ErrUnexpandedToken = errors.New("unexpanded placeholder in template output")
)
