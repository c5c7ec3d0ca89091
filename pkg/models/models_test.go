package models_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/liteloaderqqnt/create-llqqnt-plugin/pkg/models"
)

func TestPluginTypeIsValid(t *testing.T) {
	tests := []struct {
		name  string
		typ   models.PluginType
		valid bool
	}{
		{"extension", models.PluginTypeExtension, true},
		{"theme", models.PluginTypeTheme, true},
		{"framework", models.PluginTypeFramework, true},
		{"empty", models.PluginType(""), false},
		{"uppercase", models.PluginType("Theme"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.IsValid(); got != tt.valid {
				t.Errorf("PluginType(%q).IsValid() = %v, want %v", tt.typ, got, tt.valid)
			}
		})
	}
}

func TestPlatformIsValid(t *testing.T) {
	for _, p := range models.ValidPlatforms() {
		if !p.IsValid() {
			t.Errorf("Platform(%q).IsValid() = false", p)
		}
	}
	if models.Platform("freebsd").IsValid() {
		t.Error("freebsd should not be a valid platform")
	}
}

func TestAnswerSet_WriteOnce(t *testing.T) {
	a := models.NewAnswerSet()
	if err := a.Set(models.KeyProjectName, "MyCoolPlugin"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	err := a.Set(models.KeyProjectName, "Other")
	if !errors.Is(err, models.ErrAnswerExists) {
		t.Fatalf("second Set error = %v, want ErrAnswerExists", err)
	}
	if got := a.String(models.KeyProjectName); got != "MyCoolPlugin" {
		t.Errorf("String() = %q, want first value", got)
	}
}

func TestAnswerSet_TypedGetters(t *testing.T) {
	a := models.NewAnswerSet()
	platforms := []string{"win32", "linux"}
	mustSet(t, a, models.KeyPluginPlatform, platforms)
	mustSet(t, a, models.KeyPluginGit, true)

	platforms[0] = "darwin"
	if got := a.Strings(models.KeyPluginPlatform); !slices.Equal(got, []string{"win32", "linux"}) {
		t.Errorf("Strings() = %v, stored slice must not alias the caller's", got)
	}
	if !a.Bool(models.KeyPluginGit) {
		t.Error("Bool() = false, want true")
	}
	if got := a.String(models.KeyPluginGit); got != "" {
		t.Errorf("String() on bool answer = %q, want empty", got)
	}
	if !slices.Equal(a.Keys(), []string{models.KeyPluginPlatform, models.KeyPluginGit}) {
		t.Errorf("Keys() = %v, want insertion order", a.Keys())
	}
}

func TestAnswerSet_RejectsUnsupportedType(t *testing.T) {
	a := models.NewAnswerSet()
	if err := a.Set("count", 3); err == nil {
		t.Fatal("Set(int) should fail")
	}
	if a.Has("count") {
		t.Error("rejected answer must not be recorded")
	}
}

func mustSet(t *testing.T, a *models.AnswerSet, key string, v any) {
	t.Helper()
	if err := a.Set(key, v); err != nil {
		t.Fatalf("Set(%q): %v", key, err)
	}
}
