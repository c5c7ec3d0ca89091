// Package naming derives identifiers and display strings from a project
// name. All functions are pure and never fail: input that contains no words
// yields an empty result.
package naming

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Product is the host application name used in generated text and directory names.
const Product = "LiteLoaderQQNT"

// SlugSeparator joins slug words.
const SlugSeparator = "_"

// Words splits s into words. A word is a run of letters or digits, further
// split where lower case meets upper case ("myPlugin"), where letters meet
// digits ("v2"), and before the last capital of an acronym that starts a
// new word ("HTTPServer" -> "HTTP", "Server").
func Words(s string) []string {
	runes := []rune(s)
	var words []string
	start := -1
	flush := func(end int) {
		if start >= 0 {
			words = append(words, string(runes[start:end]))
			start = -1
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if isBoundary(runes, i) {
			flush(i)
			start = i
		}
	}
	flush(len(runes))
	return words
}

func isBoundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	switch {
	case unicode.IsDigit(prev) != unicode.IsDigit(cur):
		return true
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
		return true
	}
	return false
}

// Slug returns the lower-case words of s joined with SlugSeparator.
// "MyCoolPlugin" becomes "my_cool_plugin".
func Slug(s string) string {
	lower := cases.Lower(language.Und)
	words := Words(s)
	for i, w := range words {
		words[i] = lower.String(w)
	}
	return strings.Join(words, SlugSeparator)
}

// DisplayName returns the words of s with their first letter upper-cased,
// joined with a single space. "my_cool_plugin" becomes "My Cool Plugin".
func DisplayName(s string) string {
	return strings.Join(titleWords(s), " ")
}

// Description returns the suggested plugin description for a display name.
func Description(displayName string) string {
	if len(Words(displayName)) == 0 {
		return ""
	}
	return fmt.Sprintf("%s, a plugin for %s", strings.TrimSpace(displayName), Product)
}

// DirName returns the project directory name: namespace followed by the
// title-cased words of s, all joined with dashes.
// DirName("LiteLoaderQQNT", "MyCoolPlugin") is "LiteLoaderQQNT-My-Cool-Plugin".
func DirName(namespace, s string) string {
	parts := titleWords(s)
	if namespace != "" {
		parts = append([]string{namespace}, parts...)
	}
	return strings.Join(parts, "-")
}

func titleWords(s string) []string {
	upper := cases.Upper(language.Und)
	words := Words(s)
	for i, w := range words {
		_, size := utf8.DecodeRuneInString(w)
		words[i] = upper.String(w[:size]) + w[size:]
	}
	return words
}
