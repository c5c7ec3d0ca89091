package validate

import (
	"errors"
	"strings"
	"testing"
)

func TestNonEmpty(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{"\u3000", false},
		{"a", true},
		{" a ", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := NonEmpty(tt.in)
			if (err == nil) != tt.valid {
				t.Errorf("NonEmpty(%q) = %v, want valid=%v", tt.in, err, tt.valid)
			}
		})
	}
}

func TestASCIIPrintable(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"MyCoolPlugin", true},
		{"a b~!", true},
		{"", true},
		{"插件", false},
		{"tab\there", false},
		{"del\x7f", false},
		{"café", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := ASCIIPrintable(tt.in)
			if (err == nil) != tt.valid {
				t.Errorf("ASCIIPrintable(%q) = %v, want valid=%v", tt.in, err, tt.valid)
			}
		})
	}
}

func TestNoWhitespace_RejectsEveryWhitespace(t *testing.T) {
	for _, ws := range []string{" ", "\t", "\n", "\r", "\v", "\f", "\u0085", "\u00a0", "\u2003", "\u3000"} {
		for _, in := range []string{ws, "a" + ws, ws + "a", "a" + ws + "b"} {
			if err := NoWhitespace(in); err == nil {
				t.Errorf("NoWhitespace(%q) accepted whitespace", in)
			}
		}
	}
	if err := NoWhitespace("my-plugin_1"); err != nil {
		t.Errorf("NoWhitespace(my-plugin_1) = %v", err)
	}
}

func TestNoReservedChars(t *testing.T) {
	for _, c := range strings.Split(reservedChars, "") {
		if err := NoReservedChars("name" + c); err == nil {
			t.Errorf("NoReservedChars accepted %q", c)
		}
	}
	if err := NoReservedChars("name-with.dots_and^caret"); err != nil {
		t.Errorf("NoReservedChars rejected a legal name: %v", err)
	}
}

func TestSemVer(t *testing.T) {
	valid := []string{
		"0.0.0",
		"1.0.0",
		"10.20.30",
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-0.3.7",
		"1.0.0-x.7.z.92",
		"1.0.0-x-y-z.--",
		"1.0.0-alpha+001",
		"1.0.0+20130313144700",
		"1.0.0-beta+exp.sha.5114f85",
		"1.0.0+21AF26D3----117B344092BD",
		"99999999999999999999999.999999999999999999.99999999999999999",
	}
	for _, v := range valid {
		if err := SemVer(v); err != nil {
			t.Errorf("SemVer(%q) = %v, want valid", v, err)
		}
	}

	invalid := []string{
		"",
		"1",
		"1.0",
		"1.2.",
		"v1.0.0",
		"01.0.0",
		"1.02.0",
		"1.0.00",
		"1.0.0-",
		"1.0.0+",
		"1.0.0-01",
		"1.0.0-alpha..1",
		"1.0.0 ",
		"1.0.0-alpha_beta",
	}
	for _, v := range invalid {
		if err := SemVer(v); err == nil {
			t.Errorf("SemVer(%q) accepted an invalid version", v)
		}
	}
}

func TestSemVer_MissingPatchAlwaysRejected(t *testing.T) {
	for _, v := range []string{"0.0", "1.2", "10.0", "1.2-beta", "1.2+build", "1.2-rc.1+b"} {
		if err := SemVer(v); err == nil {
			t.Errorf("SemVer(%q) accepted a version without PATCH", v)
		}
	}
}

func TestChain_ReturnsFirstRejection(t *testing.T) {
	err := FileName("my plugin")
	if err == nil {
		t.Fatal("FileName accepted whitespace")
	}
	if !strings.Contains(err.Error(), "spaces") {
		t.Errorf("FileName error = %q, want the whitespace message", err)
	}

	err = FileName("   ")
	if err == nil || !strings.Contains(err.Error(), "blank") {
		t.Errorf("FileName(blank) = %v, want the blank message first", err)
	}
}

func TestRejectionsWrapErrInvalid(t *testing.T) {
	for _, err := range []error{NonEmpty(""), ASCIIPrintable("é"), NoWhitespace(" "), NoReservedChars("*"), SemVer("x"), GitHubRepo("x")} {
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%v does not wrap ErrInvalid", err)
		}
	}
}

func TestOptional(t *testing.T) {
	fn := Optional(GitHubRepo)
	if err := fn(""); err != nil {
		t.Errorf("Optional(GitHubRepo)(\"\") = %v", err)
	}
	if err := fn("octocat/hello-world"); err != nil {
		t.Errorf("Optional(GitHubRepo)(octocat/hello-world) = %v", err)
	}
	if err := fn("not a repo"); err == nil {
		t.Error("Optional(GitHubRepo) accepted an invalid repo")
	}
}
