// Package config resolves imgedit settings from multiple sources.
//
// Precedence (highest to lowest):
//  1. Environment variables (GEMINI_API_KEY, GEMINI_MODEL, ...)
//  2. Settings file ($XDG_CONFIG_HOME/imgedit/config.toml)
//  3. Built-in defaults
//
// The recognized keys are fixed: api-key, model, default-format, and
// default-quality. Operations on any other key fail with
// [RejectedKeyError]. Use [Load] to obtain the merged [Config] for one
// invocation, and [Set]/[Unset] to mutate the settings file.
package config
