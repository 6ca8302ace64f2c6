package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/kiln/internal/config/loader"
	"github.com/dshills/kiln/internal/vfs"
)

// EnvPrefix is the prefix of kiln's environment variables.
const EnvPrefix = "KILN_"

// LineNumbers selects the gutter mode.
type LineNumbers string

// Line number modes.
const (
	LineNumbersOff      LineNumbers = "off"
	LineNumbersAbsolute LineNumbers = "absolute"
	LineNumbersRelative LineNumbers = "relative"
)

// Options are the resolved editor options.
type Options struct {
	LineNumbers LineNumbers
	SoftWrap    bool
	AutoIndent  bool

	LogLevel string
	LogFile  string
}

// Defaults returns the options used when nothing is configured.
func Defaults() Options {
	return Options{
		LineNumbers: LineNumbersOff,
		LogLevel:    "info",
	}
}

// Config loads Options from a TOML file and the environment.
type Config struct {
	fs   loader.FileSystem
	path string
	env  loader.Loader
}

// Option configures a Config instance.
type Option func(*Config)

// WithPath sets the TOML file to read. An empty path skips the file.
func WithPath(path string) Option {
	return func(c *Config) {
		c.path = path
	}
}

// WithFileSystem sets the file system the TOML file is read from.
func WithFileSystem(fsys loader.FileSystem) Option {
	return func(c *Config) {
		c.fs = fsys
	}
}

// WithEnv replaces the environment loader. Passing nil disables
// environment overrides.
func WithEnv(env loader.Loader) Option {
	return func(c *Config) {
		c.env = env
	}
}

// New creates a Config with the given options.
func New(opts ...Option) *Config {
	c := &Config{
		fs:  vfs.NewOSFS(),
		env: loader.NewEnvLoader(EnvPrefix),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Path returns the TOML file the config reads.
func (c *Config) Path() string {
	return c.path
}

// DefaultPath returns $KILN_CONFIG, or config.toml in the kiln directory
// under the user config directory. It returns "" when neither is
// available.
func DefaultPath() string {
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "kiln", "config.toml")
}

// Load resolves Options from all sources. The returned Options are always
// usable; err joins every problem found along the way.
func (c *Config) Load() (Options, error) {
	var problems []error

	merged := make(map[string]any)
	sources := []loader.Loader{loader.NewTOMLLoader(c.fs, c.path)}
	if c.env != nil {
		sources = append(sources, c.env)
	}
	for _, src := range sources {
		data, err := src.Load()
		if err != nil {
			problems = append(problems, err)
			continue
		}
		merged = loader.DeepMerge(merged, data)
	}

	opts, errs := Resolve(merged)
	problems = append(problems, errs...)
	return opts, errors.Join(problems...)
}

// Resolve converts a merged configuration map into Options. Settings that
// are missing keep their default; settings that are invalid keep their
// default and are reported.
func Resolve(data map[string]any) (Options, []error) {
	opts := Defaults()
	var errs []error

	if v, ok := getPath(data, "editor.lineNumbers"); ok {
		mode, err := parseLineNumbers(v)
		if err != nil {
			errs = append(errs, err)
		} else {
			opts.LineNumbers = mode
		}
	}

	for _, b := range []struct {
		path string
		dst  *bool
	}{
		{"editor.softWrap", &opts.SoftWrap},
		{"editor.autoIndent", &opts.AutoIndent},
	} {
		v, ok := getPath(data, b.path)
		if !ok {
			continue
		}
		val, isBool := v.(bool)
		if !isBool {
			errs = append(errs, &TypeError{Path: b.path, Expected: "bool", Actual: typeName(v)})
			continue
		}
		*b.dst = val
	}

	if v, ok := getPath(data, "log.level"); ok {
		level, err := parseLogLevel(v)
		if err != nil {
			errs = append(errs, err)
		} else {
			opts.LogLevel = level
		}
	}

	if v, ok := getPath(data, "log.file"); ok {
		if s, isString := v.(string); isString {
			opts.LogFile = s
		} else {
			errs = append(errs, &TypeError{Path: "log.file", Expected: "string", Actual: typeName(v)})
		}
	}

	return opts, errs
}

var lineNumberModes = []string{"off", "absolute", "relative"}

// parseLineNumbers accepts a mode name, or a bool as produced by the
// environment loader for "on"/"off".
func parseLineNumbers(v any) (LineNumbers, error) {
	const path = "editor.lineNumbers"

	switch val := v.(type) {
	case bool:
		if val {
			return LineNumbersAbsolute, nil
		}
		return LineNumbersOff, nil
	case string:
		s := strings.ToLower(strings.TrimSpace(val))
		for _, m := range lineNumberModes {
			if s == m {
				return LineNumbers(m), nil
			}
		}
		return "", &ValueError{Path: path, Value: val, Allowed: lineNumberModes}
	default:
		return "", &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
}

var logLevels = []string{"debug", "info", "warn", "error"}

func parseLogLevel(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Path: "log.level", Expected: "string", Actual: typeName(v)}
	}
	s = strings.ToLower(strings.TrimSpace(s))
	for _, l := range logLevels {
		if s == l {
			return s, nil
		}
	}
	return "", &ValueError{Path: "log.level", Value: v, Allowed: logLevels}
}

// getPath retrieves a value from a nested map using a dot-separated path.
func getPath(m map[string]any, path string) (any, bool) {
	current := any(m)
	for _, part := range strings.Split(path, ".") {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = cm[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
