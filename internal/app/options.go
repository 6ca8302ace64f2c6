package app

import (
	"github.com/dshills/kiln/internal/config"
	"github.com/dshills/kiln/internal/renderer"
	"github.com/dshills/kiln/internal/renderer/gutter"
)

// GutterMode converts a configured line number mode.
func GutterMode(ln config.LineNumbers) gutter.Mode {
	switch ln {
	case config.LineNumbersAbsolute:
		return gutter.ModeAbsolute
	case config.LineNumbersRelative:
		return gutter.ModeRelative
	default:
		return gutter.ModeOff
	}
}

func (e *Editor) rendererOptions() renderer.Options {
	return renderer.Options{
		LineNumbers: GutterMode(e.opts.LineNumbers),
		SoftWrap:    e.opts.SoftWrap,
		Version:     e.version,
	}
}

// ApplyOptions switches the editor to new options. Display changes take
// effect on the next render.
func (e *Editor) ApplyOptions(opts config.Options) {
	e.opts = opts
	e.renderer.SetOptions(e.rendererOptions())
	e.log.SetLevel(ParseLogLevel(opts.LogLevel))
}

func (e *Editor) applyReload(reload ConfigReload) {
	e.ApplyOptions(reload.Options)
	if reload.Err != nil {
		e.log.Warn("config reload: %v", reload.Err)
		e.SetStatusMessage("Config reloaded with errors: %v", reload.Err)
		return
	}
	e.log.Info("config reloaded")
	e.SetStatusMessage("Config reloaded")
}
