package templates

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/imgedit/imgedit/internal/config"
)

func TestBuiltinsPresent(t *testing.T) {
	r := NewWithBuiltins()

	required := []string{
		"remove-bg", "enhance", "upscale", "vintage", "sepia",
		"sharpen", "bw", "blur-bg", "cartoon", "watercolor",
	}
	for _, name := range required {
		if _, ok := r.Lookup(name); !ok {
			t.Errorf("built-in template %q not found", name)
		}
	}
	if got := len(r.All()); got != len(required) {
		t.Errorf("registry has %d templates, want %d", got, len(required))
	}
}

func TestBuiltinNamesAndAliasesUnique(t *testing.T) {
	seen := map[string]string{}
	for _, tmpl := range Builtins {
		for _, token := range append([]string{tmpl.Name}, tmpl.Aliases...) {
			norm := normalize(token)
			if owner, dup := seen[norm]; dup {
				t.Errorf("token %q of %q collides with %q", token, tmpl.Name, owner)
			}
			seen[norm] = tmpl.Name
		}
	}
}

func TestResolveByNameAndAlias(t *testing.T) {
	r := NewWithBuiltins()

	tests := []struct {
		token string
		want  string
	}{
		{"remove-bg", "remove-bg"},
		{"nobg", "remove-bg"},
		{" Remove-BG ", "remove-bg"},
		{"REMOVEBG", "remove-bg"},
		{"Mono", "bw"},
		{"bokeh", "blur-bg"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			res := r.Resolve(tt.token)
			if !res.FromTemplate {
				t.Fatalf("Resolve(%q).FromTemplate = false, want true", tt.token)
			}
			if res.Name != tt.want {
				t.Errorf("Resolve(%q).Name = %q, want %q", tt.token, res.Name, tt.want)
			}
			if res.Prompt == "" {
				t.Errorf("Resolve(%q) returned empty prompt", tt.token)
			}
		})
	}
}

func TestResolvePassthrough(t *testing.T) {
	r := NewWithBuiltins()

	prompt := "make it look like a watercolor of Paris"
	res := r.Resolve(prompt)
	if res.FromTemplate {
		t.Error("free-text prompt flagged as template")
	}
	if res.Prompt != prompt {
		t.Errorf("Resolve passthrough = %q, want the literal prompt", res.Prompt)
	}
}

func TestRegisterOverridesByName(t *testing.T) {
	r := NewWithBuiltins()

	r.Register(Template{
		Name:    "enhance",
		Prompt:  "custom enhance prompt",
		Aliases: []string{"polish"},
	})

	res := r.Resolve("enhance")
	if res.Prompt != "custom enhance prompt" {
		t.Errorf("Resolve(enhance) = %q, want the custom prompt", res.Prompt)
	}
	if res := r.Resolve("polish"); res.Prompt != "custom enhance prompt" {
		t.Errorf("new alias did not resolve: %q", res.Prompt)
	}
	// Replacement is full, not a merge: the old template's aliases are gone.
	if res := r.Resolve("improve"); res.FromTemplate {
		t.Error("alias of the replaced built-in should no longer resolve")
	}
	// The registry still lists ten templates, not eleven.
	if got := len(r.All()); got != 10 {
		t.Errorf("registry has %d templates after override, want 10", got)
	}
}

func TestRegisterAliasCollisionRepointsToken(t *testing.T) {
	r := New()
	r.Register(Template{Name: "first", Prompt: "first prompt", Aliases: []string{"shared"}})
	r.Register(Template{Name: "second", Prompt: "second prompt", Aliases: []string{"shared"}})

	if res := r.Resolve("shared"); res.Name != "second" {
		t.Errorf("Resolve(shared) = %q, want last-loaded %q", res.Name, "second")
	}
	// Only the colliding token moved; "first" itself still resolves.
	if res := r.Resolve("first"); res.Prompt != "first prompt" {
		t.Errorf("Resolve(first) = %q, want its own prompt", res.Prompt)
	}
}

func TestLoadFileMergesCustomTemplates(t *testing.T) {
	r := NewWithBuiltins()
	path := filepath.Join(t.TempDir(), "templates.toml")
	content := `
[[template]]
name = "enhance"
prompt = "my own enhance"

[[template]]
name = "pixel"
prompt = "Convert this image to pixel art."
description = "Pixel art style"
aliases = ["8bit", "pixelate"]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if res := r.Resolve("enhance"); res.Prompt != "my own enhance" {
		t.Errorf("custom template did not override built-in: %q", res.Prompt)
	}
	if res := r.Resolve("8bit"); !res.FromTemplate || res.Name != "pixel" {
		t.Errorf("Resolve(8bit) = %+v, want the pixel template", res)
	}
	if len(r.Warnings()) != 0 {
		t.Errorf("unexpected warnings: %v", r.Warnings())
	}
}

func TestLoadFileSkipsMalformedEntries(t *testing.T) {
	r := NewWithBuiltins()
	path := filepath.Join(t.TempDir(), "templates.toml")
	content := `
[[template]]
name = "no-prompt-here"

[[template]]
prompt = "an entry without a name"

[[template]]
name = "valid"
prompt = "a valid prompt"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := r.LoadFile(path); err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if _, ok := r.Lookup("valid"); !ok {
		t.Error("valid entry was not registered")
	}
	if _, ok := r.Lookup("no-prompt-here"); ok {
		t.Error("entry missing prompt should be skipped")
	}
	warnings := r.Warnings()
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warnings), warnings)
	}
	if !strings.Contains(warnings[0], "no-prompt-here") {
		t.Errorf("warning %q does not name the offending entry", warnings[0])
	}
	// All built-ins survive alongside the valid custom entry.
	if got := len(r.All()); got != 11 {
		t.Errorf("registry has %d templates, want 11", got)
	}
}

func TestLoadFileMissingIsNotError(t *testing.T) {
	r := NewWithBuiltins()
	if err := r.LoadFile(filepath.Join(t.TempDir(), "absent.toml")); err != nil {
		t.Errorf("missing templates file should not error: %v", err)
	}
}

func TestLoadFileCorrupt(t *testing.T) {
	r := NewWithBuiltins()
	path := filepath.Join(t.TempDir(), "templates.toml")
	if err := os.WriteFile(path, []byte("[[template"), 0o600); err != nil {
		t.Fatal(err)
	}

	err := r.LoadFile(path)
	if err == nil {
		t.Fatal("corrupt templates file should fail")
	}
	var corrupt *config.CorruptError
	if !errors.As(err, &corrupt) {
		t.Fatalf("error type = %T, want *config.CorruptError", err)
	}
	if corrupt.Path != path {
		t.Errorf("CorruptError path = %q, want %q", corrupt.Path, path)
	}
}

func TestAllSorted(t *testing.T) {
	r := NewWithBuiltins()
	all := r.All()
	for i := 1; i < len(all); i++ {
		if all[i-1].Name > all[i].Name {
			t.Fatalf("All() not sorted: %q before %q", all[i-1].Name, all[i].Name)
		}
	}
}

func TestLoadUsesConfigDir(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	dir := filepath.Join(tmpDir, "imgedit")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	content := "[[template]]\nname = \"custom\"\nprompt = \"a custom prompt\"\n"
	if err := os.WriteFile(filepath.Join(dir, "templates.toml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	r, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if _, ok := r.Lookup("custom"); !ok {
		t.Error("Load did not pick up the user templates file")
	}
	if _, ok := r.Lookup("remove-bg"); !ok {
		t.Error("Load dropped the built-ins")
	}
}
