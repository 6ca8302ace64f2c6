package app

import (
	"fmt"
	"time"

	"github.com/dshills/kiln/internal/config"
	"github.com/dshills/kiln/internal/engine/buffer"
	"github.com/dshills/kiln/internal/engine/syntax"
	"github.com/dshills/kiln/internal/renderer"
	"github.com/dshills/kiln/internal/renderer/backend"
	"github.com/dshills/kiln/internal/vfs"
)

// QuitPresses is how many consecutive quit presses close a modified
// document.
const QuitPresses = 3

// HelpMessage is the status message shown at startup.
const HelpMessage = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"

// Config holds the collaborators of an Editor.
type Config struct {
	// Backend is the terminal surface and event source. Required.
	Backend backend.Backend

	// FS is used to save the document. Defaults to the OS file system.
	FS vfs.FS

	// Document is the document to edit. Defaults to an empty one.
	Document *buffer.Document

	// Options are the resolved display and editing options.
	Options config.Options

	// Version is shown in the welcome banner.
	Version string

	// Logger receives diagnostics. Defaults to a discarding logger.
	Logger *Logger

	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

// ConfigReload is posted into the event stream when the configuration
// file changes. Err carries load problems; Options are usable either way.
type ConfigReload struct {
	Options config.Options
	Err     error
}

// Editor is the editor controller. It owns the document, cursor,
// renderer and all transient state, and is driven one event at a time
// from Run. It is not safe for concurrent use.
type Editor struct {
	backend  backend.Backend
	fs       vfs.FS
	renderer *renderer.Renderer

	doc    *buffer.Document
	cursor buffer.Position

	// syntax is the index of the active profile, -1 when none matches.
	syntax int

	opts    config.Options
	version string

	statusMsg  string
	statusTime time.Time

	quitTimes int
	search    searchState

	log *Logger
	now func() time.Time
}

// New creates an editor from cfg and selects the syntax profile for the
// document's filename.
func New(cfg Config) *Editor {
	if cfg.FS == nil {
		cfg.FS = vfs.NewOSFS()
	}
	if cfg.Document == nil {
		cfg.Document = buffer.NewDocument()
	}
	if cfg.Logger == nil {
		cfg.Logger = NewNullLogger()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	e := &Editor{
		backend:   cfg.Backend,
		fs:        cfg.FS,
		doc:       cfg.Document,
		syntax:    -1,
		opts:      cfg.Options,
		version:   cfg.Version,
		quitTimes: QuitPresses,
		search:    newSearchState(),
		log:       cfg.Logger.WithComponent("editor").WithField("doc", cfg.Document.ID()),
		now:       cfg.Clock,
	}

	e.renderer = renderer.New(cfg.Backend, e.rendererOptions(), renderer.WithClock(cfg.Clock))
	e.selectSyntax(true)
	e.SetStatusMessage(HelpMessage)
	return e
}

// Document returns the edited document.
func (e *Editor) Document() *buffer.Document {
	return e.doc
}

// Cursor returns the cursor position.
func (e *Editor) Cursor() buffer.Position {
	return e.cursor
}

// Renderer returns the renderer.
func (e *Editor) Renderer() *renderer.Renderer {
	return e.renderer
}

// Options returns the active options.
func (e *Editor) Options() config.Options {
	return e.opts
}

// Profile returns the active syntax profile, or nil.
func (e *Editor) Profile() *syntax.Profile {
	return syntax.At(e.syntax)
}

// StatusMessage returns the current status message.
func (e *Editor) StatusMessage() string {
	return e.statusMsg
}

// SetStatusMessage sets the message bar text and restarts its timeout.
func (e *Editor) SetStatusMessage(format string, args ...any) {
	if len(args) > 0 {
		format = fmt.Sprintf(format, args...)
	}
	e.statusMsg = format
	e.statusTime = e.now()
}

// Run renders and processes events until the user quits or the event
// source fails. It returns ErrQuit on a normal quit.
func (e *Editor) Run() error {
	e.log.Info("editing %q (%d lines)", e.doc.Filename(), e.doc.LineCount())

	for {
		e.Refresh()

		ev, err := e.backend.PollEvent()
		if err != nil {
			e.log.Error("event source failed: %v", err)
			return inputError(err)
		}

		if err := e.HandleEvent(ev); err != nil {
			return err
		}
	}
}

// Refresh draws the current state.
func (e *Editor) Refresh() {
	e.renderer.Render(e.frame())
}

func (e *Editor) frame() renderer.Frame {
	return renderer.Frame{
		Doc:         e.doc,
		Cursor:      e.cursor,
		Profile:     e.Profile(),
		Message:     e.statusMsg,
		MessageTime: e.statusTime,
	}
}

// HandleEvent processes one event. Returns ErrQuit when the editor should
// exit, or a fatal error from a prompt's event source.
func (e *Editor) HandleEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventKey:
		return e.processKey(ev)
	case backend.EventMouse:
		e.processMouse(ev)
	default:
		e.handleOutOfBand(ev)
	}
	return nil
}

// handleOutOfBand processes events that do not depend on the editing
// state: resizes and posted configuration reloads.
func (e *Editor) handleOutOfBand(ev backend.Event) {
	switch ev.Type {
	case backend.EventResize:
		e.renderer.Resize(ev.Width, ev.Height)
	case backend.EventInterrupt:
		if reload, ok := ev.Data.(ConfigReload); ok {
			e.applyReload(reload)
		}
	}
}

// selectSyntax looks up the profile for the current filename. When the
// profile changes, or force is set, the whole document is re-highlighted.
func (e *Editor) selectSyntax(force bool) {
	idx := -1
	if name := e.doc.Filename(); name != "" {
		idx = syntax.Lookup(name)
	}
	if idx == e.syntax && !force {
		return
	}
	e.syntax = idx
	e.doc.HighlightAll(e.Profile())
	if p := e.Profile(); p != nil {
		e.log.Debug("syntax profile %s", p.Filetype)
	}
}
