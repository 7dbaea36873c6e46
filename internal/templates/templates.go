package templates

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/imgedit/imgedit/internal/config"
)

// Template is a named, reusable prompt with optional aliases.
type Template struct {
	Name        string   `toml:"name"`
	Prompt      string   `toml:"prompt"`
	Description string   `toml:"description"`
	Aliases     []string `toml:"aliases"`
}

// Resolved is the outcome of resolving a user-typed token. FromTemplate is
// informational only; the prompt is sent to the provider either way.
type Resolved struct {
	Prompt       string
	FromTemplate bool
	Name         string
}

// Registry holds the merged template set for one invocation. Templates are
// registered in order; a later template with a colliding name or alias
// replaces the earlier binding (last-loaded wins, full replace).
type Registry struct {
	byName   map[string]*Template
	index    map[string]*Template
	warnings []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		byName: map[string]*Template{},
		index:  map[string]*Template{},
	}
}

// NewWithBuiltins returns a registry preloaded with the built-in templates.
func NewWithBuiltins() *Registry {
	r := New()
	for _, t := range Builtins {
		r.Register(t)
	}
	return r
}

// normalize maps a token to its lookup form: trimmed and lower-cased.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Register adds a template, replacing any earlier template with the same
// canonical name. Replacement is by identity: the old template's aliases
// stop resolving. An alias colliding with another template's name or alias
// repoints that token to the new template.
func (r *Registry) Register(t Template) {
	name := normalize(t.Name)

	if old, ok := r.byName[name]; ok {
		for token, tmpl := range r.index {
			if tmpl == old {
				delete(r.index, token)
			}
		}
	}

	stored := t
	r.byName[name] = &stored
	r.index[name] = &stored
	for _, alias := range t.Aliases {
		r.index[normalize(alias)] = &stored
	}
}

// Lookup finds a template by normalized name or alias.
func (r *Registry) Lookup(token string) (*Template, bool) {
	t, ok := r.index[normalize(token)]
	return t, ok
}

// Resolve maps a token to a literal prompt. A token matching no template is
// returned unchanged as a free-text prompt; resolution is a convenience
// layer, never a validation gate.
func (r *Registry) Resolve(token string) Resolved {
	if t, ok := r.Lookup(token); ok {
		return Resolved{Prompt: t.Prompt, FromTemplate: true, Name: t.Name}
	}
	return Resolved{Prompt: token}
}

// All returns the registered templates sorted by canonical name.
func (r *Registry) All() []Template {
	out := make([]Template, 0, len(r.byName))
	for _, t := range r.byName {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Warnings reports the malformed custom entries skipped during loading.
func (r *Registry) Warnings() []string {
	return r.warnings
}

// userTemplatesFile is the on-disk shape of the custom templates file:
// a sequence of [[template]] tables.
type userTemplatesFile struct {
	Template []Template `toml:"template"`
}

// LoadFile merges custom templates from a TOML file into the registry.
// A missing file is not an error. Entries missing name or prompt are
// skipped with a recorded warning; one malformed entry never blocks the
// rest of the file.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading templates file: %w", err)
	}

	var file userTemplatesFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return &config.CorruptError{Path: path, Err: err}
	}

	for i, t := range file.Template {
		switch {
		case strings.TrimSpace(t.Name) == "":
			r.warnings = append(r.warnings, fmt.Sprintf("skipping template entry %d in %s: missing name", i+1, path))
		case strings.TrimSpace(t.Prompt) == "":
			r.warnings = append(r.warnings, fmt.Sprintf("skipping template %q in %s: missing prompt", t.Name, path))
		default:
			r.Register(t)
		}
	}
	return nil
}

// Load builds the merged registry for one invocation: built-ins first, then
// custom templates from the user templates file.
func Load() (*Registry, error) {
	r := NewWithBuiltins()
	path, err := config.TemplatesPath()
	if err != nil {
		return nil, err
	}
	if err := r.LoadFile(path); err != nil {
		return nil, err
	}
	return r, nil
}
