package renderer

import (
	"github.com/dshills/kiln/internal/engine/syntax"
	"github.com/dshills/kiln/internal/renderer/core"
	"github.com/dshills/kiln/internal/renderer/gutter"
)

// TagColor returns the foreground color for a highlight tag.
func TagColor(t syntax.Tag) core.Color {
	if t.IsComment() {
		return core.ColorCyan
	}
	switch t {
	case syntax.TagNumber:
		return core.ColorRed
	case syntax.TagString:
		return core.ColorMagenta
	case syntax.TagMatch:
		return core.ColorBlue
	case syntax.TagKeyword:
		return core.ColorYellow
	case syntax.TagKeywordType:
		return core.ColorGreen
	default:
		return core.ColorDefault
	}
}

// TagStyle returns the cell style for a highlight tag.
func TagStyle(t syntax.Tag) core.Style {
	return core.NewStyle(TagColor(t))
}

var (
	statusStyle  = core.DefaultStyle().Reverse()
	controlStyle = core.DefaultStyle().Reverse()
	currentStyle = core.DefaultStyle().Bold()
)

// gutterStyle maps gutter cell styles onto the palette.
func gutterStyle(s gutter.CellStyle) core.Style {
	if s == gutter.StyleCurrentLine {
		return currentStyle
	}
	return core.DefaultStyle()
}

// controlGlyph returns the symbol drawn for a control character.
func controlGlyph(r rune) rune {
	if r <= 26 {
		return '@' + r
	}
	return '?'
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}
