// Package templates resolves prompt template names and aliases to literal
// prompt strings.
//
// The registry merges ten built-in templates with optional custom templates
// from $XDG_CONFIG_HOME/imgedit/templates.toml. Lookup is case- and
// whitespace-insensitive. A token matching no template is passed through
// unchanged as a free-text prompt.
//
// Collision policy: templates load built-ins first, then custom entries in
// file order; a later entry with a colliding name or alias replaces the
// earlier binding entirely (identity, not merge).
package templates
