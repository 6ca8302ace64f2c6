// Package config resolves kiln's editor options.
//
// Options come from three layers, lowest priority first:
//
//	1. Built-in defaults
//	2. The TOML config file   ($KILN_CONFIG or <UserConfigDir>/kiln/config.toml)
//	3. Environment variables  (KILN_LINE_NUMBERS, KILN_EDITOR_SOFT_WRAP, ...)
//
// The recognized keys are:
//
//	[editor]
//	lineNumbers = "off" | "absolute" | "relative"
//	softWrap    = true | false
//	autoIndent  = true | false
//
//	[log]
//	level = "debug" | "info" | "warn" | "error"
//	file  = "/path/to/kiln.log"
//
// Unknown keys and tables are ignored. A missing file is not an error,
// and a value of the wrong type or outside its allowed set falls back to
// that option's default. Load always returns usable Options; the
// accompanying error lists every problem so the caller can log them.
//
// # Sub-packages
//
//   - loader: TOML file and environment variable loading
//   - watcher: config file change notification for live reload
//
// # Basic Usage
//
//	cfg := config.New(config.WithPath(config.DefaultPath()))
//	opts, err := cfg.Load()
//	if err != nil {
//		logger.Warn("config: %v", err)
//	}
package config
