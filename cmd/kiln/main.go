// Package main is the entry point for the kiln editor.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/term"

	"github.com/dshills/kiln/internal/app"
	"github.com/dshills/kiln/internal/config"
	"github.com/dshills/kiln/internal/config/watcher"
	"github.com/dshills/kiln/internal/engine/buffer"
	"github.com/dshills/kiln/internal/renderer/backend"
	"github.com/dshills/kiln/internal/vfs"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "Usage: kiln [file]\n")
		return 1
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "Error: standard input is not a terminal\n")
		return 1
	}

	cfg, opts, cfgErr := loadConfig()

	logger, closer, err := app.OpenLogFile(opts.LogFile, app.ParseLogLevel(opts.LogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if closer != nil {
		defer closer.Close()
	}
	if cfgErr != nil {
		// Configuration problems fall back to defaults and are only logged.
		logger.WithComponent("config").Warn("%v", cfgErr)
	}

	fsys := vfs.NewOSFS()
	doc, err := openDocument(fsys, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize terminal: %v\n", err)
		return 1
	}
	// Restore the terminal on every exit path, including panics.
	defer screen.Shutdown()

	editor := app.New(app.Config{
		Backend:  screen,
		FS:       fsys,
		Document: doc,
		Options:  opts,
		Version:  version,
		Logger:   logger,
	})

	stop := watchConfig(cfg, screen, logger.WithComponent("config"))
	defer stop()

	err = editor.Run()
	screen.Shutdown()

	if errors.Is(err, app.ErrQuit) {
		return 0
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}

// loadConfig resolves options from the default config file and the
// environment. The returned Config is kept for reloading.
func loadConfig() (*config.Config, config.Options, error) {
	cfg := config.New(config.WithPath(config.DefaultPath()))
	opts, err := cfg.Load()
	return cfg, opts, err
}

// openDocument loads the file named by args. A missing file starts an
// empty document with that name; no argument starts an unnamed one.
func openDocument(fsys vfs.FS, args []string) (*buffer.Document, error) {
	if len(args) == 0 {
		return buffer.NewDocument(), nil
	}

	path := args[0]
	doc, err := buffer.Load(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		doc = buffer.NewDocument()
		doc.SetFilename(path)
		return doc, nil
	}
	if err != nil {
		return nil, app.NewOperationError("open", path, err)
	}
	return doc, nil
}

// watchConfig reloads the configuration whenever its file changes and
// posts the result into the editor's event stream. The returned function
// stops watching.
func watchConfig(cfg *config.Config, be backend.Backend, logger *app.Logger) func() {
	path := cfg.Path()
	if path == "" {
		return func() {}
	}

	w, err := watcher.New(path, func(ev watcher.Event) {
		opts, err := cfg.Load()
		logger.Debug("%s %s", ev.Op, ev.Path)
		if perr := be.PostEvent(app.ConfigReload{Options: opts, Err: err}); perr != nil {
			logger.Warn("posting reload: %v", perr)
		}
	}, watcher.WithErrorHandler(func(err error) {
		logger.Warn("watch: %v", err)
	}))
	if err != nil {
		logger.Debug("not watching %s: %v", path, err)
		return func() {}
	}

	return func() {
		_ = w.Close()
	}
}
