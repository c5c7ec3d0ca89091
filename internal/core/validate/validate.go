// Package validate provides the string predicates used to check wizard
// answers. Every validator returns nil for an acceptable candidate or an
// error whose message can be shown to the user as-is.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ErrInvalid is wrapped by every rejection returned from this package.
var ErrInvalid = errors.New("invalid value")

// Func checks a single candidate string.
type Func func(candidate string) error

// reservedChars are rejected by Windows file systems.
const reservedChars = `\/:*?"<>|`

// semverPattern is the canonical grammar from semver.org.
var semverPattern = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
	`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// rejection builds a user-facing error that still matches ErrInvalid.
type rejection struct {
	msg string
}

func (r *rejection) Error() string { return r.msg }

func (r *rejection) Unwrap() error { return ErrInvalid }

func reject(format string, args ...any) error {
	return &rejection{msg: fmt.Sprintf(format, args...)}
}

// NonEmpty rejects candidates that are empty after trimming whitespace.
func NonEmpty(candidate string) error {
	if strings.TrimSpace(candidate) == "" {
		return reject("value must not be blank")
	}
	return nil
}

// ASCIIPrintable rejects any character outside 0x20-0x7E.
func ASCIIPrintable(candidate string) error {
	for _, r := range candidate {
		if r < 0x20 || r > 0x7e {
			return reject("use English letters, digits and punctuation only (found %q)", r)
		}
	}
	return nil
}

// NoWhitespace rejects candidates containing any whitespace character.
func NoWhitespace(candidate string) error {
	if strings.IndexFunc(candidate, unicode.IsSpace) >= 0 {
		return reject("value must not contain spaces")
	}
	return nil
}

// NoReservedChars rejects the characters Windows does not allow in file names.
func NoReservedChars(candidate string) error {
	if i := strings.IndexAny(candidate, reservedChars); i >= 0 {
		return reject(`value must not contain any of \ / : * ? " < > | (found %q)`, candidate[i])
	}
	return nil
}

// SemVer accepts MAJOR.MINOR.PATCH with optional pre-release and build metadata.
func SemVer(candidate string) error {
	if !semverPattern.MatchString(candidate) {
		return reject("%q is not a semantic version (e.g. 1.0.0, 2.1.0-beta.1)", candidate)
	}
	return nil
}

// Chain runs fns in order and returns the first rejection.
func Chain(fns ...Func) Func {
	return func(candidate string) error {
		for _, fn := range fns {
			if err := fn(candidate); err != nil {
				return err
			}
		}
		return nil
	}
}

// Optional accepts the empty string and defers to fn otherwise.
func Optional(fn Func) Func {
	return func(candidate string) error {
		if candidate == "" {
			return nil
		}
		return fn(candidate)
	}
}

// FileName is the rule set for names that end up in paths and identifiers.
var FileName = Chain(NonEmpty, ASCIIPrintable, NoWhitespace, NoReservedChars)

var repoPattern = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?/[A-Za-z0-9._-]+$`)

// GitHubRepo accepts an "owner/name" repository reference.
func GitHubRepo(candidate string) error {
	if !repoPattern.MatchString(candidate) {
		return reject("%q is not a GitHub repository in owner/name form", candidate)
	}
	return nil
}
