package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// Recognized configuration keys.
const (
	KeyAPIKey         = "api-key"
	KeyModel          = "model"
	KeyDefaultFormat  = "default-format"
	KeyDefaultQuality = "default-quality"
)

// Spec describes one recognized configuration key.
type Spec struct {
	Key         string
	Description string
	EnvVar      string
	Default     string
	Secret      bool
}

// Keys lists the recognized configuration keys in display order.
var Keys = []Spec{
	{
		Key:         KeyAPIKey,
		Description: "Gemini API key for authentication",
		EnvVar:      "GEMINI_API_KEY",
		Secret:      true,
	},
	{
		Key:         KeyModel,
		Description: "Gemini model to use (e.g., gemini-3-pro-image-preview)",
		EnvVar:      "GEMINI_MODEL",
		Default:     "gemini-3-pro-image-preview",
	},
	{
		Key:         KeyDefaultFormat,
		Description: "Default output format (png, jpeg, webp, gif)",
		EnvVar:      "IMGEDIT_DEFAULT_FORMAT",
		Default:     "png",
	},
	{
		Key:         KeyDefaultQuality,
		Description: "Default quality setting (1K, 2K, 4K)",
		EnvVar:      "IMGEDIT_DEFAULT_QUALITY",
		Default:     "1K",
	},
}

// RejectedKeyError reports a configuration key outside the recognized set.
type RejectedKeyError struct {
	Key string
}

func (e *RejectedKeyError) Error() string {
	names := make([]string, len(Keys))
	for i, s := range Keys {
		names[i] = s.Key
	}
	return fmt.Sprintf("unknown configuration key %q (valid keys: %s)", e.Key, strings.Join(names, ", "))
}

// CorruptError reports a settings or templates file that cannot be parsed.
// The path is included so the user can inspect or remove the file.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("cannot parse %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// Lookup returns the Spec for a recognized key.
func Lookup(key string) (Spec, bool) {
	for _, s := range Keys {
		if s.Key == key {
			return s, true
		}
	}
	return Spec{}, false
}

// Dir returns the platform-appropriate config directory for imgedit.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "imgedit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "imgedit"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "imgedit"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "imgedit"), nil
	default:
		return filepath.Join(home, ".config", "imgedit"), nil
	}
}

// Path returns the full path to the settings file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// TemplatesPath returns the full path to the user templates file.
func TemplatesPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "templates.toml"), nil
}

// loadFile reads the settings file into a key-value map. A missing file is
// not an error and yields an empty map.
func loadFile() (map[string]string, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	values := map[string]string{}
	if err := toml.Unmarshal(data, &values); err != nil {
		return nil, &CorruptError{Path: path, Err: err}
	}
	return values, nil
}

// saveFile writes the key-value map back to the settings file. The file is
// user-scoped: 0700 directory, 0600 file.
func saveFile(values map[string]string) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(values); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o600)
}

// Get returns the effective value for a recognized key, applying the
// precedence env > file > default. A key stored in the file is returned
// as-is, even when its value is empty; the default applies only when the
// key is absent from both env and file.
func Get(key string) (string, error) {
	spec, ok := Lookup(key)
	if !ok {
		return "", &RejectedKeyError{Key: key}
	}
	if v := os.Getenv(spec.EnvVar); v != "" {
		return v, nil
	}
	values, err := loadFile()
	if err != nil {
		return "", err
	}
	if v, ok := values[key]; ok {
		return v, nil
	}
	return spec.Default, nil
}

// Set persists a value for a recognized key in the settings file.
func Set(key, value string) error {
	if _, ok := Lookup(key); !ok {
		return &RejectedKeyError{Key: key}
	}
	values, err := loadFile()
	if err != nil {
		return err
	}
	values[key] = value
	return saveFile(values)
}

// Unset removes a key from the settings file. It reports whether the key
// was present; the effective value falls back to env or default afterwards.
func Unset(key string) (bool, error) {
	if _, ok := Lookup(key); !ok {
		return false, &RejectedKeyError{Key: key}
	}
	values, err := loadFile()
	if err != nil {
		return false, err
	}
	if _, present := values[key]; !present {
		return false, nil
	}
	delete(values, key)
	return true, saveFile(values)
}

// Entry is one row of the effective configuration view.
type Entry struct {
	Spec
	Value  string
	Source string // "env", "file", "default", or "unset"
}

// All returns the effective value and provenance for every recognized key,
// in display order.
func All() ([]Entry, error) {
	values, err := loadFile()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(Keys))
	for _, spec := range Keys {
		e := Entry{Spec: spec, Source: "unset"}
		if env := os.Getenv(spec.EnvVar); env != "" {
			e.Value = env
			e.Source = "env"
		} else if v, present := values[spec.Key]; present {
			e.Value = v
			e.Source = "file"
		} else if spec.Default != "" {
			e.Value = spec.Default
			e.Source = "default"
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Config is the effective configuration for one invocation. It is computed
// fresh from env, file, and defaults on every Load and never cached.
type Config struct {
	APIKey         string
	Model          string
	DefaultFormat  string
	DefaultQuality string
}

// Load builds the effective configuration: env > file > defaults.
func Load() (Config, error) {
	entries, err := All()
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	for _, e := range entries {
		switch e.Key {
		case KeyAPIKey:
			cfg.APIKey = e.Value
		case KeyModel:
			cfg.Model = e.Value
		case KeyDefaultFormat:
			cfg.DefaultFormat = e.Value
		case KeyDefaultQuality:
			cfg.DefaultQuality = e.Value
		}
	}
	return cfg, nil
}
