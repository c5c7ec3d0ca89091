package manifest

import (
	"bytes"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/liteloaderqqnt/create-llqqnt-plugin/pkg/models"
)

func sampleAnswers(t *testing.T) *models.AnswerSet {
	t.Helper()
	a := models.NewAnswerSet()
	for _, kv := range []struct {
		key string
		val any
	}{
		{models.KeyProjectName, "MyCoolPlugin"},
		{models.KeyPluginSlug, "my_cool_plugin"},
		{models.KeyPluginName, "My Cool Plugin"},
		{models.KeyPluginType, "extension"},
		{models.KeyPluginDescription, "My Cool Plugin, a plugin for LiteLoaderQQNT"},
		{models.KeyPluginPlatform, []string{"win32", "linux"}},
		{models.KeyPluginVersion, "1.0.0"},
		{models.KeyPluginPackageNPM, false},
		{models.KeyPluginGit, true},
	} {
		if err := a.Set(kv.key, kv.val); err != nil {
			t.Fatalf("Set(%s): %v", kv.key, err)
		}
	}
	return a
}

func TestBuild(t *testing.T) {
	m := Build(sampleAnswers(t), "octocat")

	if m.ManifestVersion != 4 {
		t.Errorf("ManifestVersion = %d, want 4", m.ManifestVersion)
	}
	if m.Type != models.PluginTypeExtension {
		t.Errorf("Type = %q, want extension", m.Type)
	}
	if m.Name != "MyCoolPlugin" {
		t.Errorf("Name = %q, want MyCoolPlugin", m.Name)
	}
	if m.Slug != "my_cool_plugin" {
		t.Errorf("Slug = %q, want my_cool_plugin", m.Slug)
	}
	if m.Version != "1.0.0" {
		t.Errorf("Version = %q, want 1.0.0", m.Version)
	}
	wantAuthors := []Author{{Name: "octocat", Link: "https://github.com/octocat"}}
	if !reflect.DeepEqual(m.Authors, wantAuthors) {
		t.Errorf("Authors = %+v, want %+v", m.Authors, wantAuthors)
	}
	if !slices.Equal(m.Platform, []models.Platform{"win32", "linux"}) {
		t.Errorf("Platform = %v, want [win32 linux]", m.Platform)
	}
	wantInjects := Injects{
		Renderer: "./src/renderer.js",
		Main:     "./src/main.js",
		Preload:  "./src/preload.js",
	}
	if m.Injects != wantInjects {
		t.Errorf("Injects = %+v, want %+v", m.Injects, wantInjects)
	}
	if m.Repository != nil || m.Icon != nil || m.Dependencies != nil {
		t.Error("optional fields should be unset by default")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	answers := sampleAnswers(t)
	a := Build(answers, "octocat")
	b := Build(answers, "octocat")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Build is not deterministic:\n%+v\n%+v", a, b)
	}

	ja, err := Marshal(a)
	if err != nil {
		t.Fatal(err)
	}
	jb, err := Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(ja, jb) {
		t.Error("serialized manifests differ")
	}
}

func TestBuild_EmptyPlatformSerializesAsArray(t *testing.T) {
	a := models.NewAnswerSet()
	_ = a.Set(models.KeyPluginPlatform, []string{})
	data, err := Marshal(Build(a, "octocat"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"platform": []`) {
		t.Errorf("empty platform should serialize as [], got:\n%s", data)
	}
}

func TestBuild_Options(t *testing.T) {
	m := Build(sampleAnswers(t), "octocat",
		WithRepository("octocat/LiteLoaderQQNT-My-Cool-Plugin", ""),
		WithDependencies("llapi"),
	)
	want := &Repository{
		Repo:    "octocat/LiteLoaderQQNT-My-Cool-Plugin",
		Branch:  "main",
		Release: Release{Tag: "v1.0.0"},
	}
	if !reflect.DeepEqual(m.Repository, want) {
		t.Errorf("Repository = %+v, want %+v", m.Repository, want)
	}
	if !slices.Equal(m.Dependencies, []string{"llapi"}) {
		t.Errorf("Dependencies = %v", m.Dependencies)
	}

	if m := Build(sampleAnswers(t), "octocat", WithRepository("", "dev")); m.Repository != nil {
		t.Error("empty repo should not produce a repository record")
	}
}

func TestMarshal_FormatAndOrder(t *testing.T) {
	data, err := Marshal(Build(sampleAnswers(t), "octocat"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(data)
	if !strings.HasPrefix(s, "{\n    \"manifest_version\": 4,\n    \"type\": \"extension\",") {
		t.Errorf("unexpected document head:\n%s", s)
	}
	if !strings.HasSuffix(s, "}\n") {
		t.Error("document should end with a newline")
	}
	order := []string{`"name"`, `"slug"`, `"description"`, `"version"`, `"authors"`, `"platform"`, `"injects"`}
	last := -1
	for _, key := range order {
		i := strings.Index(s, key)
		if i <= last {
			t.Errorf("key %s out of order", key)
		}
		last = i
	}
	if strings.Contains(s, "platfrom") {
		t.Error("manifest must use the corrected 'platform' spelling")
	}

	parsed, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed.Slug != "my_cool_plugin" || parsed.Injects.Preload != "./src/preload.js" {
		t.Errorf("Parse round trip lost fields: %+v", parsed)
	}
}

func TestValidate(t *testing.T) {
	t.Run("built_manifest_is_valid", func(t *testing.T) {
		data, err := Marshal(Build(sampleAnswers(t), "octocat", WithRepository("octocat/demo", "")))
		if err != nil {
			t.Fatal(err)
		}
		res, err := Validate(data)
		if err != nil {
			t.Fatalf("Validate error: %v", err)
		}
		if !res.Valid {
			t.Errorf("built manifest should be valid, issues: %v", res.Issues)
		}
	})

	t.Run("missing_slug", func(t *testing.T) {
		data := []byte(`{"manifest_version": 4, "type": "theme", "name": "x", "description": "",
			"version": "1.0.0", "authors": [{"name": "a", "link": "b"}], "platform": ["linux"]}`)
		res, err := Validate(data)
		if err != nil {
			t.Fatalf("Validate error: %v", err)
		}
		if res.Valid {
			t.Fatal("manifest without slug should be invalid")
		}
		found := false
		for _, is := range res.Issues {
			if strings.Contains(is.Message, "slug") {
				found = true
			}
		}
		if !found {
			t.Errorf("issues should mention slug: %v", res.Issues)
		}
	})

	t.Run("wrong_version_and_platform", func(t *testing.T) {
		data := []byte(`{"manifest_version": 3, "type": "extension", "name": "x", "slug": "x",
			"description": "", "version": "1.0.0", "authors": [{"name": "a", "link": "b"}],
			"platform": ["android"]}`)
		res, err := Validate(data)
		if err != nil {
			t.Fatalf("Validate error: %v", err)
		}
		if res.Valid || len(res.Issues) < 2 {
			t.Errorf("expected at least two issues, got %v", res.Issues)
		}
	})

	t.Run("malformed_json", func(t *testing.T) {
		if _, err := Validate([]byte("{")); err == nil {
			t.Error("malformed JSON should return an error")
		}
	})
}

func TestBuildPackage(t *testing.T) {
	p := BuildPackage(sampleAnswers(t), "octocat")
	if p.Name != "my_cool_plugin" || p.Version != "1.0.0" || !p.Private || p.Author != "octocat" {
		t.Errorf("BuildPackage = %+v", p)
	}
	if p.Main != "./src/main.js" {
		t.Errorf("Main = %q", p.Main)
	}
	data, err := MarshalPackage(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"private": true`) {
		t.Errorf("package.json missing private flag:\n%s", data)
	}
}
